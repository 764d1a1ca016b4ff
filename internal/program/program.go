// Package program defines two program shapes (spec §3.3): a flat
// program (an ordered vector of Steps over the frame's operand stack)
// and a direct/recursive step (a tree form that computes its value by
// calling its children directly, bypassing the stack for that subtree).
// The planner emits only flat programs.
package program

import (
	"github.com/aledsdavies/celrt/ast"
	"github.com/aledsdavies/celrt/internal/attribute"
	"github.com/aledsdavies/celrt/internal/execution"
	"github.com/aledsdavies/celrt/value"
)

// Step is one closed unit of a flat program: it mutates the frame's
// operand stack and returns. A Step never returns a Go error for CEL-
// level failures (divide by zero, bad cast, ...) — those are pushed as
// Error values, per spec §4.7's "errors are values" design.
type Step interface {
	ID() ast.ID
	Evaluate(f *execution.Frame)
}

// DirectStep is the recursive/tree alternative: it computes its result
// by calling its children's Evaluate directly and returns the value and
// its attribute trail without touching the frame's operand stack (spec
// §3.3: "an alternate form that computes its value by recursive calls
// to its child direct steps").
type DirectStep interface {
	ID() ast.ID
	Evaluate(f *execution.Frame) (value.Value, attribute.Trail)
}

// FlatProgram is the planner's primary output: a linear sequence of
// Steps that, run in order against a fresh Frame, leaves exactly one
// value on the operand stack (spec §3.3).
type FlatProgram struct {
	Steps     []Step
	SlotCount int
}

// Run drives the program counter across Steps, honoring any jump a step
// requests via Frame.JumpRelative (spec §4.4's Next()/JumpRelative
// contract), and returns the single value left on the operand stack
// once the program counter runs off the end.
func (p *FlatProgram) Run(f *execution.Frame) (value.Value, attribute.Trail) {
	pc := 0
	for pc < len(p.Steps) {
		p.Steps[pc].Evaluate(f)
		if offset, jumped := f.ConsumeJump(); jumped {
			pc += offset
			continue
		}
		pc++
	}
	return f.Pop()
}

// WrappedDirectStep embeds a DirectStep subtree inside a flat program:
// when the flat program reaches it, it invokes the direct step's
// recursive Evaluate and pushes the result, letting a flat program host
// an optimized recursive island (SPEC_FULL.md §C.4, mirroring cel-cpp's
// WrappedDirectStep).
type WrappedDirectStep struct {
	StepID ast.ID
	Inner  DirectStep
}

func (w *WrappedDirectStep) ID() ast.ID { return w.StepID }

func (w *WrappedDirectStep) Evaluate(f *execution.Frame) {
	v, tr := w.Inner.Evaluate(f)
	f.Push(v, tr)
}
