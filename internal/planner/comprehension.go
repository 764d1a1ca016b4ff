package planner

import (
	"github.com/aledsdavies/celrt/ast"
	"github.com/aledsdavies/celrt/internal/program"
	"github.com/aledsdavies/celrt/internal/steps"
)

// compileComprehension lays out a Comprehension node (spec §4.6) as:
//
//	<range-steps>
//	<accu-init-steps>
//	ComprehensionEnterStep                 materializes range, opens iter-frame
//	[loopStart]
//	<loop-cond-steps>
//	ComprehensionBreakIfFalseStep           break -> [exit]
//	ComprehensionHasNextStep                break -> [exit]
//	ComprehensionAdvanceStep                sets iter-var; on budget exhaustion,
//	                                         pops the iter-frame itself and jumps
//	                                         straight past Result to [end]
//	<loop-step-steps>
//	ComprehensionUpdateAccuStep             jumps back to [loopStart]
//	[exit]
//	ComprehensionExitStep                   pops the iter-frame
//	<result-steps>
//	[end]
//
// This mirrors spec §4.6's literal ordering — "evaluate loop-condition
// (false exits loop), advance iteration ..., evaluate loop-step, assign
// to accu-var slot" — rather than checking range-exhaustion first: the
// loop-condition is consulted on every round, including before the
// first advance, which is why short-circuiting comprehensions
// (exists/all/exists_one) are compiled from a loop-condition that reads
// only the accumulator, never the iteration variable (spec §4.6's last
// sentence).
//
// IterVar and AccuVar become visible, as comprehension-scoped slot
// bindings, only while compiling loop-cond, loop-step, and result —
// matching CEL's scoping (they are not visible while compiling range or
// accu-init, since those evaluate in the enclosing scope).
//
// Jump offsets below are all computed as (target index - source index)
// against the positions actually assembled into out, rather than from
// pre-computed size formulas, to avoid the off-by-one errors those
// invite once several nested offsets interact.
func (c *compiler) compileComprehension(e *ast.Expr, scope []binding) []program.Step {
	ce := e.Comprehension

	rangeSlot := c.allocSlot()
	iterSlot := c.allocSlot()
	accuSlot := c.allocSlot()

	rangeSteps := c.compile(ce.Range, scope)
	accuInitSteps := c.compile(ce.AccuInit, scope)

	inner := append(append([]binding{}, scope...),
		binding{name: ce.IterVar, kind: steps.ScopeIterVar, slot: iterSlot},
		binding{name: ce.AccuVar, kind: steps.ScopeAccuVar, slot: accuSlot},
	)

	loopCondSteps := c.compile(ce.LoopCond, inner)
	loopStepSteps := c.compile(ce.LoopStep, inner)
	resultSteps := c.compile(ce.Result, inner)

	var out []program.Step
	out = append(out, rangeSteps...)
	out = append(out, accuInitSteps...)

	enter := &steps.ComprehensionEnterStep{StepID: e.ID, RangeSlot: rangeSlot, IterSlot: iterSlot, AccuSlot: accuSlot}
	enterIdx := len(out)
	out = append(out, enter)

	loopStartIdx := len(out)
	out = append(out, loopCondSteps...)

	brk := &steps.ComprehensionBreakIfFalseStep{StepID: e.ID}
	breakIdx := len(out)
	out = append(out, brk)

	hasNext := &steps.ComprehensionHasNextStep{StepID: e.ID, RangeSlot: rangeSlot}
	hasNextIdx := len(out)
	out = append(out, hasNext)

	advance := &steps.ComprehensionAdvanceStep{StepID: e.ID, RangeSlot: rangeSlot}
	advanceIdx := len(out)
	out = append(out, advance)

	out = append(out, loopStepSteps...)

	update := &steps.ComprehensionUpdateAccuStep{StepID: e.ID}
	updateIdx := len(out)
	out = append(out, update)

	exitIdx := len(out)
	out = append(out, &steps.ComprehensionExitStep{StepID: e.ID})

	out = append(out, resultSteps...)
	endIdx := len(out)

	enter.ExitOffset = endIdx - enterIdx
	brk.BreakOffset = exitIdx - breakIdx
	hasNext.BreakOffset = exitIdx - hasNextIdx
	advance.ExhaustedOffset = endIdx - advanceIdx
	update.BackOffset = loopStartIdx - updateIdx

	return out
}
