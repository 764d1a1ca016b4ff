// Package steps implements the concrete Step kinds the planner
// assembles into a program (spec §4.3, §4.7): constants,
// identifiers, field selection, calls, aggregate literals, jumps, and
// the comprehension loop primitives. The call-dispatch shape follows
// the teacher's planner's evalXXX family (runtime/planner/planner.go),
// adapted from a recursive Interpretable.Eval(activation) contract to
// this engine's flat-step-over-an-operand-stack contract.
package steps

import (
	"github.com/aledsdavies/celrt/activation"
	"github.com/aledsdavies/celrt/ast"
	"github.com/aledsdavies/celrt/internal/attribute"
	"github.com/aledsdavies/celrt/internal/execution"
	"github.com/aledsdavies/celrt/value"
)

// ConstStep pushes a compile-time literal.
type ConstStep struct {
	StepID ast.ID
	Value  value.Value
}

func (s *ConstStep) ID() ast.ID { return s.StepID }
func (s *ConstStep) Evaluate(f *execution.Frame) {
	f.PushValue(s.Value)
}

// IdentScope says where an Ident step resolves its name from: the
// activation, or a comprehension's iteration/accumulator variable
// slot. The planner assigns this based on lexical scoping at
// plan time (spec §4.6).
type IdentScope int

const (
	ScopeActivation IdentScope = iota
	ScopeIterVar
	ScopeAccuVar
)

// IdentStep resolves a name (spec §3.4/§6.3's Resolve contract, or a
// comprehension-bound variable read directly from its plan-time-
// assigned slot). Slot is read via the slot array directly rather than
// through the innermost iter-frame, since a nested comprehension's body
// may reference an outer comprehension's iter/accu variable — the slot
// index, not stack position, is what identifies which binding a given
// Ident node resolves to (spec §3.6).
type IdentStep struct {
	StepID ast.ID
	Name   string
	Scope  IdentScope
	Slot   int
}

func (s *IdentStep) ID() ast.ID { return s.StepID }
func (s *IdentStep) Evaluate(f *execution.Frame) {
	switch s.Scope {
	case ScopeIterVar, ScopeAccuVar:
		v, tr, ok := f.GetSlot(s.Slot)
		if !ok {
			f.Push(value.NewError(int64(s.StepID), value.ErrMissingAttribute, "variable %s not bound", s.Name), attribute.Empty)
			return
		}
		f.Push(v, tr)
	default:
		v, res := f.Activation().Resolve(s.Name)
		if res == activation.Resolved || res == activation.IsUnknown {
			f.Push(v, attribute.NewRoot(s.Name))
			return
		}
		f.Push(v, attribute.Empty) // IsMissing: v is already ErrMissingAttribute
	}
}

// SelectStep implements field access (or, if TestOnly, the has() macro's
// presence test) over the value beneath it on the stack (spec §4.8).
type SelectStep struct {
	StepID   ast.ID
	Field    string
	TestOnly bool
}

func (s *SelectStep) ID() ast.ID { return s.StepID }
func (s *SelectStep) Evaluate(f *execution.Frame) {
	operand, trail := f.Pop()
	if operand.IsError() || operand.IsUnknown() {
		f.Push(operand, trail)
		return
	}
	extended := trail.Step(s.Field)
	if f.Options().UnknownProcessing != execution.UnknownOff {
		if pattern, ok := f.Activation().MatchUnknownPattern(extended.String()); ok {
			f.Push(value.NewUnknown(pattern), extended)
			return
		}
	}
	switch operand.Kind() {
	case value.KindStruct:
		if s.TestOnly {
			f.Push(value.Bool(operand.StructHasField(s.Field)), attribute.Empty)
			return
		}
		f.Push(operand.StructField(s.Field), extended)
	case value.KindMap:
		if s.TestOnly {
			f.Push(value.Bool(operand.MapHas(value.String(s.Field))), attribute.Empty)
			return
		}
		v, ok := operand.MapGet(value.String(s.Field))
		if !ok {
			f.Push(value.NewError(int64(s.StepID), value.ErrFieldNotFound, "no such key: %s", s.Field), extended)
			return
		}
		f.Push(v, extended)
	default:
		f.Push(value.NewError(int64(s.StepID), value.ErrNoMatchingOverload, "select on unsupported kind %s", operand.Kind()), attribute.Empty)
	}
}

// IndexStep implements `operand[key]` for lists and maps.
type IndexStep struct {
	StepID ast.ID
}

func (s *IndexStep) ID() ast.ID { return s.StepID }
func (s *IndexStep) Evaluate(f *execution.Frame) {
	key, _ := f.Pop()
	operand, trail := f.Pop()
	if operand.IsError() {
		f.Push(operand, attribute.Empty)
		return
	}
	if key.IsError() {
		f.Push(key, attribute.Empty)
		return
	}
	if operand.IsUnknown() {
		f.Push(operand, trail)
		return
	}
	if key.IsUnknown() {
		f.Push(key, attribute.Empty)
		return
	}

	var extended attribute.Trail
	if key.Kind() == value.KindInt {
		extended = trail.StepIndex(key.AsInt())
	} else {
		extended = trail.Step(key.String())
	}
	if f.Options().UnknownProcessing != execution.UnknownOff {
		if pattern, ok := f.Activation().MatchUnknownPattern(extended.String()); ok {
			f.Push(value.NewUnknown(pattern), extended)
			return
		}
	}

	switch operand.Kind() {
	case value.KindList:
		if key.Kind() != value.KindInt {
			f.Push(value.NewError(int64(s.StepID), value.ErrBadKeyType, "list index must be int, got %s", key.Kind()), attribute.Empty)
			return
		}
		f.Push(operand.ListGet(key.AsInt()), extended)
	case value.KindMap:
		v, ok := operand.MapGet(key)
		if !ok {
			f.Push(value.NewError(int64(s.StepID), value.ErrFieldNotFound, "no such key: %v", key), attribute.Empty)
			return
		}
		f.Push(v, extended)
	default:
		f.Push(value.NewError(int64(s.StepID), value.ErrNoMatchingOverload, "index on unsupported kind %s", operand.Kind()), attribute.Empty)
	}
}
