// Package builtins registers the standard library of function
// overloads (spec §4.2's function registry, populated) that a bare
// functions.Registry does not come with on its own: arithmetic,
// ordering, string/collection helpers, type conversions, optional
// combinators, and timestamp/duration accessors. RegisterAll is the
// single entry point eval.NewEvaluator and cmd/celeval wire in.
package builtins

import (
	"math"

	"github.com/aledsdavies/celrt/functions"
	"github.com/aledsdavies/celrt/value"
)

const (
	fnAdd      = "_+_"
	fnSubtract = "_-_"
	fnMultiply = "_*_"
	fnDivide   = "_/_"
	fnModulo   = "_%_"
	fnNegate   = "-_"
)

func registerArithmetic(r *functions.Registry) {
	registerAdd(r)
	registerSubtract(r)
	registerMultiply(r)
	registerDivide(r)
	registerModulo(r)
	registerNegate(r)
}

func registerAdd(r *functions.Registry) {
	r.Register(&functions.Overload{
		ID: "add_int64", Function: fnAdd, Arity: functions.Binary,
		ArgKinds:   []value.Kind{value.KindInt, value.KindInt},
		BinaryImpl: func(a, b value.Value) value.Value { return addInt(a.AsInt(), b.AsInt()) },
	})
	r.Register(&functions.Overload{
		ID: "add_uint64", Function: fnAdd, Arity: functions.Binary,
		ArgKinds:   []value.Kind{value.KindUint, value.KindUint},
		BinaryImpl: func(a, b value.Value) value.Value { return addUint(a.AsUint(), b.AsUint()) },
	})
	r.Register(&functions.Overload{
		ID: "add_double", Function: fnAdd, Arity: functions.Binary,
		ArgKinds:   []value.Kind{value.KindDouble, value.KindDouble},
		BinaryImpl: func(a, b value.Value) value.Value { return value.Double(a.AsDouble() + b.AsDouble()) },
	})
	r.Register(&functions.Overload{
		ID: "add_string", Function: fnAdd, Arity: functions.Binary,
		ArgKinds:   []value.Kind{value.KindString, value.KindString},
		BinaryImpl: func(a, b value.Value) value.Value { return value.String(a.AsString() + b.AsString()) },
	})
	r.Register(&functions.Overload{
		ID: "add_bytes", Function: fnAdd, Arity: functions.Binary,
		ArgKinds: []value.Kind{value.KindBytes, value.KindBytes},
		BinaryImpl: func(a, b value.Value) value.Value {
			out := make([]byte, 0, len(a.AsBytes())+len(b.AsBytes()))
			out = append(out, a.AsBytes()...)
			out = append(out, b.AsBytes()...)
			return value.Bytes(out)
		},
	})
	r.Register(&functions.Overload{
		ID: "add_list", Function: fnAdd, Arity: functions.Binary,
		ArgKinds: []value.Kind{value.KindList, value.KindList},
		BinaryImpl: func(a, b value.Value) value.Value {
			out := make([]value.Value, 0, a.ListLen()+b.ListLen())
			out = append(out, a.ListElements()...)
			out = append(out, b.ListElements()...)
			return value.List(out)
		},
	})
	r.Register(&functions.Overload{
		ID: "add_duration_duration", Function: fnAdd, Arity: functions.Binary,
		ArgKinds: []value.Kind{value.KindDuration, value.KindDuration},
		BinaryImpl: func(a, b value.Value) value.Value {
			return value.Duration(a.AsDuration() + b.AsDuration())
		},
	})
	r.Register(&functions.Overload{
		ID: "add_timestamp_duration", Function: fnAdd, Arity: functions.Binary,
		ArgKinds: []value.Kind{value.KindTimestamp, value.KindDuration},
		BinaryImpl: func(a, b value.Value) value.Value {
			return value.Timestamp(a.AsTimestamp().Add(b.AsDuration()))
		},
	})
	r.Register(&functions.Overload{
		ID: "add_duration_timestamp", Function: fnAdd, Arity: functions.Binary,
		ArgKinds: []value.Kind{value.KindDuration, value.KindTimestamp},
		BinaryImpl: func(a, b value.Value) value.Value {
			return value.Timestamp(b.AsTimestamp().Add(a.AsDuration()))
		},
	})
}

func registerSubtract(r *functions.Registry) {
	r.Register(&functions.Overload{
		ID: "sub_int64", Function: fnSubtract, Arity: functions.Binary,
		ArgKinds:   []value.Kind{value.KindInt, value.KindInt},
		BinaryImpl: func(a, b value.Value) value.Value { return subInt(a.AsInt(), b.AsInt()) },
	})
	r.Register(&functions.Overload{
		ID: "sub_uint64", Function: fnSubtract, Arity: functions.Binary,
		ArgKinds:   []value.Kind{value.KindUint, value.KindUint},
		BinaryImpl: func(a, b value.Value) value.Value { return subUint(a.AsUint(), b.AsUint()) },
	})
	r.Register(&functions.Overload{
		ID: "sub_double", Function: fnSubtract, Arity: functions.Binary,
		ArgKinds:   []value.Kind{value.KindDouble, value.KindDouble},
		BinaryImpl: func(a, b value.Value) value.Value { return value.Double(a.AsDouble() - b.AsDouble()) },
	})
	r.Register(&functions.Overload{
		ID: "sub_timestamp_timestamp", Function: fnSubtract, Arity: functions.Binary,
		ArgKinds: []value.Kind{value.KindTimestamp, value.KindTimestamp},
		BinaryImpl: func(a, b value.Value) value.Value {
			return value.Duration(a.AsTimestamp().Sub(b.AsTimestamp()))
		},
	})
	r.Register(&functions.Overload{
		ID: "sub_timestamp_duration", Function: fnSubtract, Arity: functions.Binary,
		ArgKinds: []value.Kind{value.KindTimestamp, value.KindDuration},
		BinaryImpl: func(a, b value.Value) value.Value {
			return value.Timestamp(a.AsTimestamp().Add(-b.AsDuration()))
		},
	})
	r.Register(&functions.Overload{
		ID: "sub_duration_duration", Function: fnSubtract, Arity: functions.Binary,
		ArgKinds: []value.Kind{value.KindDuration, value.KindDuration},
		BinaryImpl: func(a, b value.Value) value.Value {
			return value.Duration(a.AsDuration() - b.AsDuration())
		},
	})
}

func registerMultiply(r *functions.Registry) {
	r.Register(&functions.Overload{
		ID: "mul_int64", Function: fnMultiply, Arity: functions.Binary,
		ArgKinds:   []value.Kind{value.KindInt, value.KindInt},
		BinaryImpl: func(a, b value.Value) value.Value { return mulInt(a.AsInt(), b.AsInt()) },
	})
	r.Register(&functions.Overload{
		ID: "mul_uint64", Function: fnMultiply, Arity: functions.Binary,
		ArgKinds:   []value.Kind{value.KindUint, value.KindUint},
		BinaryImpl: func(a, b value.Value) value.Value { return mulUint(a.AsUint(), b.AsUint()) },
	})
	r.Register(&functions.Overload{
		ID: "mul_double", Function: fnMultiply, Arity: functions.Binary,
		ArgKinds:   []value.Kind{value.KindDouble, value.KindDouble},
		BinaryImpl: func(a, b value.Value) value.Value { return value.Double(a.AsDouble() * b.AsDouble()) },
	})
}

func registerDivide(r *functions.Registry) {
	r.Register(&functions.Overload{
		ID: "div_int64", Function: fnDivide, Arity: functions.Binary,
		ArgKinds: []value.Kind{value.KindInt, value.KindInt},
		BinaryImpl: func(a, b value.Value) value.Value {
			if b.AsInt() == 0 {
				return value.NewError(0, value.ErrDivideByZero, "divide by zero")
			}
			if a.AsInt() == math.MinInt64 && b.AsInt() == -1 {
				return value.NewError(0, value.ErrOverflow, "int64 division overflow")
			}
			return value.Int(a.AsInt() / b.AsInt())
		},
	})
	r.Register(&functions.Overload{
		ID: "div_uint64", Function: fnDivide, Arity: functions.Binary,
		ArgKinds: []value.Kind{value.KindUint, value.KindUint},
		BinaryImpl: func(a, b value.Value) value.Value {
			if b.AsUint() == 0 {
				return value.NewError(0, value.ErrDivideByZero, "divide by zero")
			}
			return value.Uint(a.AsUint() / b.AsUint())
		},
	})
	r.Register(&functions.Overload{
		ID: "div_double", Function: fnDivide, Arity: functions.Binary,
		ArgKinds: []value.Kind{value.KindDouble, value.KindDouble},
		BinaryImpl: func(a, b value.Value) value.Value {
			// IEEE-754 division: x/0 yields ±Inf or NaN, never an Error.
			return value.Double(a.AsDouble() / b.AsDouble())
		},
	})
}

func registerModulo(r *functions.Registry) {
	r.Register(&functions.Overload{
		ID: "mod_int64", Function: fnModulo, Arity: functions.Binary,
		ArgKinds: []value.Kind{value.KindInt, value.KindInt},
		BinaryImpl: func(a, b value.Value) value.Value {
			if b.AsInt() == 0 {
				return value.NewError(0, value.ErrModuloByZero, "modulus by zero")
			}
			if a.AsInt() == math.MinInt64 && b.AsInt() == -1 {
				return value.NewError(0, value.ErrOverflow, "int64 modulus overflow")
			}
			return value.Int(a.AsInt() % b.AsInt())
		},
	})
	r.Register(&functions.Overload{
		ID: "mod_uint64", Function: fnModulo, Arity: functions.Binary,
		ArgKinds: []value.Kind{value.KindUint, value.KindUint},
		BinaryImpl: func(a, b value.Value) value.Value {
			if b.AsUint() == 0 {
				return value.NewError(0, value.ErrModuloByZero, "modulus by zero")
			}
			return value.Uint(a.AsUint() % b.AsUint())
		},
	})
}

func registerNegate(r *functions.Registry) {
	r.Register(&functions.Overload{
		ID: "negate_int64", Function: fnNegate, Arity: functions.Unary,
		ArgKinds: []value.Kind{value.KindInt},
		UnaryImpl: func(a value.Value) value.Value {
			if a.AsInt() == math.MinInt64 {
				return value.NewError(0, value.ErrOverflow, "negation of int64 minimum overflows")
			}
			return value.Int(-a.AsInt())
		},
	})
	r.Register(&functions.Overload{
		ID: "negate_double", Function: fnNegate, Arity: functions.Unary,
		ArgKinds:  []value.Kind{value.KindDouble},
		UnaryImpl: func(a value.Value) value.Value { return value.Double(-a.AsDouble()) },
	})
}

func addInt(a, b int64) value.Value {
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return value.NewError(0, value.ErrOverflow, "int64 addition overflow: %d + %d", a, b)
	}
	return value.Int(a + b)
}

func subInt(a, b int64) value.Value {
	if (b < 0 && a > math.MaxInt64+b) || (b > 0 && a < math.MinInt64+b) {
		return value.NewError(0, value.ErrOverflow, "int64 subtraction overflow: %d - %d", a, b)
	}
	return value.Int(a - b)
}

func mulInt(a, b int64) value.Value {
	if a == 0 || b == 0 {
		return value.Int(0)
	}
	p := a * b
	if p/b != a || (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return value.NewError(0, value.ErrOverflow, "int64 multiplication overflow: %d * %d", a, b)
	}
	return value.Int(p)
}

func addUint(a, b uint64) value.Value {
	if a > math.MaxUint64-b {
		return value.NewError(0, value.ErrOverflow, "uint64 addition overflow: %d + %d", a, b)
	}
	return value.Uint(a + b)
}

func subUint(a, b uint64) value.Value {
	if b > a {
		return value.NewError(0, value.ErrOverflow, "uint64 subtraction overflow: %d - %d", a, b)
	}
	return value.Uint(a - b)
}

func mulUint(a, b uint64) value.Value {
	if a == 0 || b == 0 {
		return value.Uint(0)
	}
	p := a * b
	if p/b != a {
		return value.NewError(0, value.ErrOverflow, "uint64 multiplication overflow: %d * %d", a, b)
	}
	return value.Uint(p)
}
