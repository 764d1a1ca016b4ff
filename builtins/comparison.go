package builtins

import (
	"github.com/aledsdavies/celrt/functions"
	"github.com/aledsdavies/celrt/value"
)

const (
	fnLess         = "_<_"
	fnLessEqual    = "_<=_"
	fnGreater      = "_>_"
	fnGreaterEqual = "_>=_"
)

// registerComparison installs the four ordering operators as single dyn
// overloads (ArgKinds left nil) since value.Less already implements the
// full cross-kind numeric and same-kind ordering rules spec §4.1
// describes; an unordered pairing (mismatched non-numeric kinds, or a
// kind with no defined order) reports ErrUnsupportedComparison rather
// than silently yielding false.
func registerComparison(r *functions.Registry) {
	r.Register(&functions.Overload{
		ID: "less", Function: fnLess, Arity: functions.Binary,
		BinaryImpl: func(a, b value.Value) value.Value { return order(a, b, func(c int) bool { return c < 0 }) },
	})
	r.Register(&functions.Overload{
		ID: "less_equals", Function: fnLessEqual, Arity: functions.Binary,
		BinaryImpl: func(a, b value.Value) value.Value { return order(a, b, func(c int) bool { return c <= 0 }) },
	})
	r.Register(&functions.Overload{
		ID: "greater", Function: fnGreater, Arity: functions.Binary,
		BinaryImpl: func(a, b value.Value) value.Value { return order(a, b, func(c int) bool { return c > 0 }) },
	})
	r.Register(&functions.Overload{
		ID: "greater_equals", Function: fnGreaterEqual, Arity: functions.Binary,
		BinaryImpl: func(a, b value.Value) value.Value { return order(a, b, func(c int) bool { return c >= 0 }) },
	})
}

// order reports a<b and b<a via two Less calls (CEL defines no direct
// three-way compare), treating "neither" as equal, then applies accept
// to translate that into the specific operator's result.
func order(a, b value.Value, accept func(cmp int) bool) value.Value {
	lt, ok := a.Less(b)
	if !ok {
		return value.NewError(0, value.ErrUnsupportedComparison, "cannot compare %s to %s", a.Kind(), b.Kind())
	}
	if lt {
		return value.Bool(accept(-1))
	}
	gt, _ := b.Less(a)
	if gt {
		return value.Bool(accept(1))
	}
	return value.Bool(accept(0))
}
