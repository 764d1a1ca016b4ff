package builtins

import (
	"github.com/aledsdavies/celrt/functions"
	"github.com/aledsdavies/celrt/value"
)

const fnNot = "!_"

func registerLogical(r *functions.Registry) {
	r.Register(&functions.Overload{
		ID: "logical_not", Function: fnNot, Arity: functions.Unary,
		ArgKinds:  []value.Kind{value.KindBool},
		UnaryImpl: func(a value.Value) value.Value { return value.Bool(!a.AsBool()) },
	})
}
