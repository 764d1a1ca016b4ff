package steps

import (
	"github.com/aledsdavies/celrt/ast"
	"github.com/aledsdavies/celrt/internal/attribute"
	"github.com/aledsdavies/celrt/internal/execution"
	"github.com/aledsdavies/celrt/value"
)

// JumpStep is an unconditional relative jump (spec §9: "implement
// jumps as explicit step kinds with signed offsets"). Offset is added
// to the program counter in place of the usual +1; negative offsets
// implement loop back-edges.
type JumpStep struct {
	StepID ast.ID
	Offset int
}

func (s *JumpStep) ID() ast.ID { return s.StepID }
func (s *JumpStep) Evaluate(f *execution.Frame) {
	f.JumpRelative(s.Offset)
}

// JumpIfBoolStep peeks the top of the operand stack without popping it.
// If the top is exactly Bool(IfValue), it jumps by Offset; otherwise it
// falls through to the next step with the value still on the stack.
// Used to implement short-circuit evaluation only when short-circuiting
// is enabled in the active Options.
type JumpIfBoolStep struct {
	StepID  ast.ID
	IfValue bool
	Offset  int
}

func (s *JumpIfBoolStep) ID() ast.ID { return s.StepID }
func (s *JumpIfBoolStep) Evaluate(f *execution.Frame) {
	if !f.Options().ShortCircuiting {
		return
	}
	top, _ := f.Peek()
	if top.Kind() == value.KindBool && top.AsBool() == s.IfValue {
		f.JumpRelative(s.Offset)
	}
}

// AndCombineStep pops rhs then lhs and applies `_&&_`'s non-strict
// dominance rule (spec §4.7): a concrete false on either side wins
// outright; otherwise unknown beats error beats true.
type AndCombineStep struct{ StepID ast.ID }

func (s *AndCombineStep) ID() ast.ID { return s.StepID }
func (s *AndCombineStep) Evaluate(f *execution.Frame) {
	rhs, _ := f.Pop()
	lhs, _ := f.Pop()
	f.PushValue(combineLogical(lhs, rhs, false))
}

// OrCombineStep is the dual of AndCombineStep for `_||_`.
type OrCombineStep struct{ StepID ast.ID }

func (s *OrCombineStep) ID() ast.ID { return s.StepID }
func (s *OrCombineStep) Evaluate(f *execution.Frame) {
	rhs, _ := f.Pop()
	lhs, _ := f.Pop()
	f.PushValue(combineLogical(lhs, rhs, true))
}

func combineLogical(lhs, rhs value.Value, dominant bool) value.Value {
	if isConcreteBool(lhs, dominant) || isConcreteBool(rhs, dominant) {
		return value.Bool(dominant)
	}
	if lhs.IsUnknown() || rhs.IsUnknown() {
		if lhs.IsUnknown() && rhs.IsUnknown() {
			return value.UnionUnknown(lhs, rhs)
		}
		if lhs.IsUnknown() {
			return lhs
		}
		return rhs
	}
	if lhs.IsError() {
		return lhs
	}
	if rhs.IsError() {
		return rhs
	}
	if !okBool(lhs) {
		return value.NewError(0, value.ErrNoMatchingOverload, "logical operator applied to non-bool %s", lhs.Kind())
	}
	if !okBool(rhs) {
		return value.NewError(0, value.ErrNoMatchingOverload, "logical operator applied to non-bool %s", rhs.Kind())
	}
	return value.Bool(!dominant)
}

func isConcreteBool(v value.Value, b bool) bool {
	return v.Kind() == value.KindBool && v.AsBool() == b
}

func okBool(v value.Value) bool { return v.Kind() == value.KindBool }

// ConditionalDispatchStep implements `_?_:_` (spec §4.7): the condition
// must be bool, else error/unknown short-circuits to itself. ThenSize
// and ElseSize are the flattened step counts of the then/else branches,
// used to compute the jump past each.
type ConditionalDispatchStep struct {
	StepID   ast.ID
	ThenSize int
	ElseSize int
}

func (s *ConditionalDispatchStep) ID() ast.ID { return s.StepID }
func (s *ConditionalDispatchStep) Evaluate(f *execution.Frame) {
	cond, _ := f.Pop()
	if cond.IsError() || cond.IsUnknown() {
		f.Push(cond, attribute.Empty)
		// Skip both branches and the trailing unconditional jump.
		f.JumpRelative(s.ThenSize + 1 + s.ElseSize + 1)
		return
	}
	if cond.Kind() != value.KindBool {
		f.Push(value.NewError(0, value.ErrNoMatchingOverload, "conditional operand must be bool, got %s", cond.Kind()), attribute.Empty)
		f.JumpRelative(s.ThenSize + 1 + s.ElseSize + 1)
		return
	}
	if !cond.AsBool() {
		// Skip the then-branch and its trailing unconditional jump.
		f.JumpRelative(s.ThenSize + 2)
	}
	// else: fall through into the then-branch.
}
