package builtins

import (
	"github.com/aledsdavies/celrt/functions"
	"github.com/aledsdavies/celrt/value"
)

const (
	fnIn   = "@in"
	fnSize = "size"
)

// registerCollection installs `in` as a single dyn overload — its left
// operand is any kind and its right operand is a List or Map, a shape
// ArgKinds (matched position-by-position) cannot pin down, so memberOf
// does its own kind switch on the right operand instead.
func registerCollection(r *functions.Registry) {
	r.Register(&functions.Overload{
		ID: "in", Function: fnIn, Arity: functions.Binary,
		BinaryImpl: memberOf,
	})

	r.Register(&functions.Overload{
		ID: "size_string", Function: fnSize, Arity: functions.Unary,
		ArgKinds:  []value.Kind{value.KindString},
		UnaryImpl: func(a value.Value) value.Value { return value.Int(int64(len([]rune(a.AsString())))) },
	})
	r.Register(&functions.Overload{
		ID: "size_bytes", Function: fnSize, Arity: functions.Unary,
		ArgKinds:  []value.Kind{value.KindBytes},
		UnaryImpl: func(a value.Value) value.Value { return value.Int(int64(len(a.AsBytes()))) },
	})
	r.Register(&functions.Overload{
		ID: "size_list", Function: fnSize, Arity: functions.Unary,
		ArgKinds:  []value.Kind{value.KindList},
		UnaryImpl: func(a value.Value) value.Value { return value.Int(int64(a.ListLen())) },
	})
	r.Register(&functions.Overload{
		ID: "size_map", Function: fnSize, Arity: functions.Unary,
		ArgKinds:  []value.Kind{value.KindMap},
		UnaryImpl: func(a value.Value) value.Value { return value.Int(int64(a.MapLen())) },
	})
}

// memberOf implements `a in b` for b a List or Map (spec §4.1's equality
// rules, applied element-wise): a match on any element/key returns true
// immediately, even if a later element would have errored; absent a
// match, an error seen along the way wins over a plain false.
func memberOf(a, b value.Value) value.Value {
	switch b.Kind() {
	case value.KindList:
		var pending value.Value
		for _, elem := range b.ListElements() {
			eq := a.Equal(elem)
			if eq.Kind() == value.KindBool && eq.AsBool() {
				return value.True
			}
			if eq.IsError() && !pending.IsError() {
				pending = eq
			}
		}
		if pending.IsError() {
			return pending
		}
		return value.False
	case value.KindMap:
		return value.Bool(b.MapHas(a))
	default:
		return value.NewError(0, value.ErrNoMatchingOverload, "cannot test membership in %s", b.Kind())
	}
}
