package builtins

import (
	"github.com/aledsdavies/celrt/functions"
	"github.com/aledsdavies/celrt/value"
)

const (
	fnOptionalOf        = "optional.of"
	fnOptionalOfNonZero = "optional.ofNonZeroValue"
	fnOptionalNone      = "optional.none"
	fnOptionalHasValue  = "hasValue"
	fnOptionalValue     = "value"
	fnOptionalOr        = "or"
	fnOptionalOrValue   = "orValue"
)

// registerOptional installs the `optional` package's constructors and
// the receiver-style combinators used against a Value of kind
// KindOptional (spec-adjacent standard library, following cel-go's
// optional-values extension).
func registerOptional(r *functions.Registry) {
	r.Register(&functions.Overload{
		ID: "optional_of", Function: fnOptionalOf, Arity: functions.Unary,
		UnaryImpl: func(a value.Value) value.Value { return value.OptionalOf(a) },
	})
	r.Register(&functions.Overload{
		ID: "optional_of_non_zero_value", Function: fnOptionalOfNonZero, Arity: functions.Unary,
		UnaryImpl: func(a value.Value) value.Value {
			if isZeroValue(a) {
				return value.OptionalNone
			}
			return value.OptionalOf(a)
		},
	})
	r.Register(&functions.Overload{
		ID: "optional_none", Function: fnOptionalNone, Arity: functions.Zero,
		ZeroImpl: func() value.Value { return value.OptionalNone },
	})
	r.Register(&functions.Overload{
		ID: "optional_has_value", Function: fnOptionalHasValue, Arity: functions.Unary,
		ArgKinds:  []value.Kind{value.KindOptional},
		UnaryImpl: func(a value.Value) value.Value { return value.Bool(a.OptionalHasValue()) },
	})
	r.Register(&functions.Overload{
		ID: "optional_value", Function: fnOptionalValue, Arity: functions.Unary,
		ArgKinds:  []value.Kind{value.KindOptional},
		UnaryImpl: func(a value.Value) value.Value { return a.OptionalValue() },
	})
	r.Register(&functions.Overload{
		ID: "optional_or", Function: fnOptionalOr, Arity: functions.Binary,
		ArgKinds:   []value.Kind{value.KindOptional, value.KindOptional},
		BinaryImpl: func(a, b value.Value) value.Value { return a.OptionalOr(b) },
	})
	r.Register(&functions.Overload{
		// ArgKinds is left nil since the second argument is dyn — a
		// non-nil ArgKinds must pin a kind for every position, so a
		// receiver-only constraint is enforced by hand instead.
		ID: "optional_or_value", Function: fnOptionalOrValue, Arity: functions.Binary,
		BinaryImpl: func(a, b value.Value) value.Value {
			if a.Kind() != value.KindOptional {
				return value.NewError(0, value.ErrNoMatchingOverload, "orValue() receiver must be optional, got %s", a.Kind())
			}
			return a.OptionalOrValue(b)
		},
	})
}

func isZeroValue(v value.Value) bool {
	switch v.Kind() {
	case value.KindNull:
		return true
	case value.KindBool:
		return !v.AsBool()
	case value.KindInt:
		return v.AsInt() == 0
	case value.KindUint:
		return v.AsUint() == 0
	case value.KindDouble:
		return v.AsDouble() == 0
	case value.KindString:
		return v.AsString() == ""
	case value.KindBytes:
		return len(v.AsBytes()) == 0
	case value.KindList:
		return v.ListLen() == 0
	case value.KindMap:
		return v.MapLen() == 0
	default:
		return false
	}
}
