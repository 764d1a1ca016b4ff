package builtins

import (
	"github.com/aledsdavies/celrt/functions"
	"github.com/aledsdavies/celrt/value"
)

const (
	fnInt       = "int"
	fnUint      = "uint"
	fnDouble    = "double"
	fnString    = "string"
	fnBytes     = "bytes"
	fnBool      = "bool"
	fnDyn       = "dyn"
	fnType      = "type"
	fnDuration  = "duration"
	fnTimestamp = "timestamp"
)

// registerConversion installs the global conversion functions as dyn
// unary overloads: each delegates to Value.ConvertTo, which already
// enumerates every (from, to) pairing this engine supports (spec §3.1's
// Value operation list) and reports ErrBadCast/ErrOverflow itself, so
// the overload body only needs to supply the target type token.
func registerConversion(r *functions.Registry) {
	convertTo := func(id, fn string, target value.Value) {
		r.Register(&functions.Overload{
			ID: id, Function: fn, Arity: functions.Unary,
			UnaryImpl: func(a value.Value) value.Value { return a.ConvertTo(target) },
		})
	}
	convertTo("to_int", fnInt, value.TypeInt)
	convertTo("to_uint", fnUint, value.TypeUint)
	convertTo("to_double", fnDouble, value.TypeDouble)
	convertTo("to_string", fnString, value.TypeString)
	convertTo("to_bytes", fnBytes, value.TypeBytes)
	convertTo("to_bool", fnBool, value.TypeBool)
	convertTo("to_duration", fnDuration, value.TypeDuration)
	convertTo("to_timestamp", fnTimestamp, value.TypeTimestamp)

	r.Register(&functions.Overload{
		ID: "identity_dyn", Function: fnDyn, Arity: functions.Unary,
		UnaryImpl: func(a value.Value) value.Value { return a },
	})
	r.Register(&functions.Overload{
		ID: "type_of", Function: fnType, Arity: functions.Unary,
		UnaryImpl: func(a value.Value) value.Value { return a.TypeOf() },
	})
}
