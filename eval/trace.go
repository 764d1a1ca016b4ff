package eval

import (
	"github.com/aledsdavies/celrt/activation"
	"github.com/aledsdavies/celrt/ast"
	"github.com/aledsdavies/celrt/internal/execution"
	"github.com/aledsdavies/celrt/value"
)

// TraceListener observes every value a traced evaluation produces,
// keyed by the originating AST id (spec §6.4's Trace, SPEC_FULL.md
// §C.5's ObservableInterpretable/EvaluationListener pairing). Opaque
// values are never reported (mirroring cel-cpp's OpaqueValue filter in
// AdaptListener): an Opaque is a host-injected handle with no
// meaningful representation for a generic listener to render.
type TraceListener interface {
	OnValue(id ast.ID, v value.Value)
}

// TraceListenerFunc adapts a plain function to TraceListener.
type TraceListenerFunc func(id ast.ID, v value.Value)

func (f TraceListenerFunc) OnValue(id ast.ID, v value.Value) { f(id, v) }

// Trace runs p like Evaluate, but additionally invokes listener once
// for every step whose evaluation pushes a new, non-Opaque value onto
// the operand stack (spec §8's "Trace completeness": one invocation per
// distinct AST id whose step pushes a value). A step is recognized as
// "pushing a value" by comparing Frame.PushCount before and after its
// Evaluate call, not by the net stack length: most value-producing
// steps (Call, Select, Index, the aggregate constructors, the logical
// combine steps) first pop one or more operands and then push exactly
// one result, so the stack's net length typically shrinks even though a
// value was produced. Every step's Evaluate performs at most one Push
// as its final stack mutation, so whenever PushCount advanced, the top
// of the stack right after Evaluate returns is exactly that step's
// pushed value. Purely control-flow steps (jumps, the comprehension
// loop-control steps other than ComprehensionEnter/Advance's
// short-circuit paths) never call Push and so are never reported.
func (e *Evaluator) Trace(p *Program, act activation.Activation, opts execution.Options, listener TraceListener) value.Value {
	f := execution.NewFrame(act, opts, p.flat.SlotCount)
	steps := p.flat.Steps
	pc := 0
	for pc < len(steps) {
		before := f.PushCount()
		step := steps[pc]
		step.Evaluate(f)
		if f.PushCount() > before {
			v, _ := f.Peek()
			if v.Kind() != value.KindOpaque {
				listener.OnValue(step.ID(), v)
			}
		}
		if offset, jumped := f.ConsumeJump(); jumped {
			pc += offset
			continue
		}
		pc++
	}
	v, _ := f.Pop()
	return v
}
