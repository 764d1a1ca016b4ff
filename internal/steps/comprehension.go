package steps

import (
	"github.com/aledsdavies/celrt/ast"
	"github.com/aledsdavies/celrt/internal/attribute"
	"github.com/aledsdavies/celrt/internal/execution"
	"github.com/aledsdavies/celrt/value"
)

// ComprehensionEnterStep pops the accumulator-init value and the range
// value (pushed in that order by the preceding steps), materializes the
// range's elements (a list's elements, or a map's keys, per spec
// §4.6), and opens a new iter-frame. If the range is an error or
// unknown, it becomes the comprehension's final result immediately and
// ExitOffset skips straight past the loop body and the Result
// subexpression (error/unknown dominance, spec §4.7's last bullet
// extended to comprehensions).
type ComprehensionEnterStep struct {
	StepID                ast.ID
	RangeSlot, IterSlot, AccuSlot int
	// ExitOffset is the step count from this step (exclusive) to the
	// step immediately after the whole comprehension, used only on the
	// range-is-error/unknown path.
	ExitOffset int
}

func (s *ComprehensionEnterStep) ID() ast.ID { return s.StepID }
func (s *ComprehensionEnterStep) Evaluate(f *execution.Frame) {
	accuInit, accuTrail := f.Pop()
	rangeVal, rangeTrail := f.Pop()

	if rangeVal.IsError() || rangeVal.IsUnknown() {
		f.Push(rangeVal, rangeTrail)
		f.JumpRelative(s.ExitOffset)
		return
	}

	var elems []value.Value
	switch rangeVal.Kind() {
	case value.KindList:
		elems = rangeVal.ListElements()
	case value.KindMap:
		elems = rangeVal.MapKeys()
	default:
		f.Push(value.NewError(int64(s.StepID), value.ErrNoMatchingOverload, "cannot iterate over %s", rangeVal.Kind()), attribute.Empty)
		f.JumpRelative(s.ExitOffset)
		return
	}

	f.SetSlot(s.RangeSlot, value.List(elems), attribute.Empty)
	f.PushIterFrame(s.IterSlot, s.AccuSlot)
	f.SetAccuVar(accuInit, accuTrail)
}

// ComprehensionHasNextStep checks whether the innermost iter-frame's
// range still has an unconsumed element; if not, it jumps past the
// remainder of the loop body to the ComprehensionExitStep that
// precedes the Result subexpression.
type ComprehensionHasNextStep struct {
	StepID     ast.ID
	RangeSlot  int
	BreakOffset int
}

func (s *ComprehensionHasNextStep) ID() ast.ID { return s.StepID }
func (s *ComprehensionHasNextStep) Evaluate(f *execution.Frame) {
	rangeList, _, _ := f.GetSlot(s.RangeSlot)
	if f.IterationIndex() >= int64(rangeList.ListLen()) {
		f.JumpRelative(s.BreakOffset)
	}
}

// ComprehensionBreakIfFalseStep pops the just-evaluated loop-condition
// value; per the `@not_strictly_false` convention described in spec
// §4.6, only an exact concrete `false` breaks the loop — an error or
// unknown loop-condition is treated as "keep going" so the loop still
// terminates via range exhaustion and the error/unknown resurfaces
// naturally once it is folded into the accumulator.
type ComprehensionBreakIfFalseStep struct {
	StepID      ast.ID
	BreakOffset int
}

func (s *ComprehensionBreakIfFalseStep) ID() ast.ID { return s.StepID }
func (s *ComprehensionBreakIfFalseStep) Evaluate(f *execution.Frame) {
	cond, _ := f.Pop()
	if cond.Kind() == value.KindBool && !cond.AsBool() {
		f.JumpRelative(s.BreakOffset)
	}
}

// ComprehensionAdvanceStep consumes the next range element into the
// iter-var slot and charges the iteration budget (spec §4.6, §6.5). If
// the budget is exhausted, the budget error becomes the comprehension's
// final result immediately: unlike a normal loop exit, this bypasses
// Exit too (so the step pops the iter-frame itself) and
// ExhaustedOffset must land past the Result subexpression entirely —
// otherwise Result would run again and overwrite the error with a
// stale-accumulator value.
type ComprehensionAdvanceStep struct {
	StepID          ast.ID
	RangeSlot       int
	ExhaustedOffset int
}

func (s *ComprehensionAdvanceStep) ID() ast.ID { return s.StepID }
func (s *ComprehensionAdvanceStep) Evaluate(f *execution.Frame) {
	rangeList, _, _ := f.GetSlot(s.RangeSlot)
	elem := rangeList.ListGet(f.IterationIndex())
	f.SetIterVar(elem, attribute.Empty)

	if errv, exceeded := f.AdvanceIteration(); exceeded {
		f.PopIterFrame()
		f.Push(errv, attribute.Empty)
		f.JumpRelative(s.ExhaustedOffset)
	}
}

// ComprehensionUpdateAccuStep pops the just-evaluated loop-step result
// and stores it as the new accumulator value, then jumps back to the
// loop's condition check (BackOffset is negative).
type ComprehensionUpdateAccuStep struct {
	StepID     ast.ID
	BackOffset int
}

func (s *ComprehensionUpdateAccuStep) ID() ast.ID { return s.StepID }
func (s *ComprehensionUpdateAccuStep) Evaluate(f *execution.Frame) {
	v, tr := f.Pop()
	f.SetAccuVar(v, tr)
	f.JumpRelative(s.BackOffset)
}

// ComprehensionExitStep closes the innermost iter-frame once the loop
// body is done, before the Result subexpression runs.
type ComprehensionExitStep struct{ StepID ast.ID }

func (s *ComprehensionExitStep) ID() ast.ID { return s.StepID }
func (s *ComprehensionExitStep) Evaluate(f *execution.Frame) {
	f.PopIterFrame()
}
