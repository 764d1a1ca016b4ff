package steps

import (
	"github.com/aledsdavies/celrt/ast"
	"github.com/aledsdavies/celrt/functions"
	"github.com/aledsdavies/celrt/internal/attribute"
	"github.com/aledsdavies/celrt/internal/execution"
	"github.com/aledsdavies/celrt/value"
)

// CallStep pops NumArgs operands (plus a receiver, if HasTarget) and
// dispatches them through the frame's function registry (spec §4.2).
// Function calls always reset the attribute trail to empty (spec §4.8).
type CallStep struct {
	StepID    ast.ID
	Function  string
	NumArgs   int
	HasTarget bool
}

func (s *CallStep) ID() ast.ID { return s.StepID }
func (s *CallStep) Evaluate(f *execution.Frame) {
	n := s.NumArgs
	if s.HasTarget {
		n++
	}
	args, _ := f.PopN(n)
	result := f.Activation().Functions().Dispatch(s.Function, args)
	if result.IsError() {
		result = stampID(result, s.StepID)
	}
	f.Push(result, attribute.Empty)
}

func stampID(v value.Value, id ast.ID) value.Value {
	if v.AsError().ID != 0 {
		return v
	}
	return value.NewError(int64(id), v.AsError().Code, "%s", v.AsError().Message)
}

// RegisterCoreOverloads installs the `_==_`/`_!=_` overloads shared by
// every activation's registry. `_&&_`, `_||_` and `_?_:_` get no
// registry overload: the steps in logical.go evaluate them directly.
func RegisterCoreOverloads(r *functions.Registry) {
	r.Register(&functions.Overload{
		ID: "equals", Function: "_==_", Arity: functions.Binary,
		BinaryImpl: func(a, b value.Value) value.Value { return a.Equal(b) },
	})
	r.Register(&functions.Overload{
		ID: "not_equals", Function: "_!=_", Arity: functions.Binary,
		BinaryImpl: func(a, b value.Value) value.Value {
			eq := a.Equal(b)
			if eq.IsError() || eq.IsUnknown() {
				return eq
			}
			return value.Bool(!eq.AsBool())
		},
	})
}
