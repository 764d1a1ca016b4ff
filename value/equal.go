package value

import (
	"bytes"
	"math"
)

// Equal implements spec §4.1's equality rules. The return is always a
// Bool, Error, or Unknown value — equality is defined to never panic on
// mismatched kinds, instead reporting ErrUnsupportedComparison.
func (a Value) Equal(b Value) Value {
	if a.IsError() {
		return a
	}
	if b.IsError() {
		return b
	}
	if a.IsUnknown() && b.IsUnknown() {
		return UnionUnknown(a, b)
	}
	if a.IsUnknown() {
		return a
	}
	if b.IsUnknown() {
		return b
	}

	if isNumericKind(a.kind) && isNumericKind(b.kind) {
		cmp, ok := numericCompare(a, b)
		if !ok {
			return False
		}
		return Bool(cmp == 0)
	}

	if a.kind != b.kind {
		return NewError(0, ErrUnsupportedComparison, "cannot compare %s to %s", a.kind, b.kind)
	}

	switch a.kind {
	case KindNull:
		return True
	case KindBool:
		return Bool(a.b == b.b)
	case KindString:
		return Bool(a.s == b.s)
	case KindBytes:
		return Bool(bytes.Equal(a.raw, b.raw))
	case KindDuration:
		return Bool(a.dur == b.dur)
	case KindTimestamp:
		return Bool(a.ts.Equal(b.ts))
	case KindList:
		return equalList(a, b)
	case KindMap:
		return equalMap(a, b)
	case KindType:
		return Bool(a.EqualsType(b))
	case KindOptional:
		return equalOptional(a, b)
	case KindStruct:
		return equalStruct(a, b)
	default:
		return NewError(0, ErrUnsupportedComparison, "cannot compare values of kind %s", a.kind)
	}
}

func equalList(a, b Value) Value {
	ae, be := a.list.elems, b.list.elems
	if len(ae) != len(be) {
		return False
	}
	for i := range ae {
		r := ae[i].Equal(be[i])
		if r.IsError() || r.IsUnknown() {
			return r
		}
		if !r.AsBool() {
			return False
		}
	}
	return True
}

func equalMap(a, b Value) Value {
	if len(a.mp.entries) != len(b.mp.entries) {
		return False
	}
	for _, e := range a.mp.entries {
		bv, ok := b.MapGet(e.Key)
		if !ok {
			return False
		}
		r := e.Value.Equal(bv)
		if r.IsError() || r.IsUnknown() {
			return r
		}
		if !r.AsBool() {
			return False
		}
	}
	return True
}

func equalOptional(a, b Value) Value {
	if a.opt.present != b.opt.present {
		return False
	}
	if !a.opt.present {
		return True
	}
	return a.opt.value.Equal(b.opt.value)
}

func equalStruct(a, b Value) Value {
	if a.st.desc.TypeName != b.st.desc.TypeName {
		return False
	}
	for _, name := range a.st.desc.FieldOrder {
		r := a.StructField(name).Equal(b.StructField(name))
		if r.IsError() || r.IsUnknown() {
			return r
		}
		if !r.AsBool() {
			return False
		}
	}
	return True
}

func isNumericKind(k Kind) bool {
	return k == KindInt || k == KindUint || k == KindDouble
}

// numericCompare compares two numeric-kind Values per spec §4.1's
// cross-kind rule: Int/Uint compare by mathematical value; Int/Uint vs
// Double compares by value when the double is integral and within the
// integer's representable range, otherwise by the double's value, with
// NaN never equal to anything (ok=false). See DESIGN.md for the
// resolution of spec §9 open question (a).
func numericCompare(a, b Value) (cmp int, ok bool) {
	switch {
	case a.kind == KindInt && b.kind == KindInt:
		return cmpInt64(a.i, b.i), true
	case a.kind == KindUint && b.kind == KindUint:
		return cmpUint64(a.u, b.u), true
	case a.kind == KindDouble && b.kind == KindDouble:
		return cmpFloat64(a.d, b.d)
	case a.kind == KindInt && b.kind == KindUint:
		if a.i < 0 {
			return -1, true
		}
		return cmpUint64(uint64(a.i), b.u), true
	case a.kind == KindUint && b.kind == KindInt:
		if b.i < 0 {
			return 1, true
		}
		return cmpUint64(a.u, uint64(b.i)), true
	case a.kind == KindInt && b.kind == KindDouble:
		return compareIntDouble(a.i, b.d)
	case a.kind == KindDouble && b.kind == KindInt:
		c, ok := compareIntDouble(b.i, a.d)
		return -c, ok
	case a.kind == KindUint && b.kind == KindDouble:
		return compareUintDouble(a.u, b.d)
	case a.kind == KindDouble && b.kind == KindUint:
		c, ok := compareUintDouble(b.u, a.d)
		return -c, ok
	default:
		return 0, false
	}
}

func cmpInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func cmpUint64(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func cmpFloat64(a, b float64) (int, bool) {
	if math.IsNaN(a) || math.IsNaN(b) {
		return 0, false
	}
	switch {
	case a < b:
		return -1, true
	case a > b:
		return 1, true
	default:
		return 0, true
	}
}

const (
	minInt64AsFloat = -9223372036854775808.0
	maxInt64AsFloat = 9223372036854775808.0 // one past math.MaxInt64, exclusive bound
)

func compareIntDouble(i int64, d float64) (int, bool) {
	if math.IsNaN(d) {
		return 0, false
	}
	if d >= minInt64AsFloat && d < maxInt64AsFloat {
		id := int64(d)
		if float64(id) == d {
			return cmpInt64(i, id), true
		}
	}
	return cmpFloat64(float64(i), d)
}

func compareUintDouble(u uint64, d float64) (int, bool) {
	if math.IsNaN(d) {
		return 0, false
	}
	if d >= 0 && d < maxInt64AsFloat*2 {
		ud := uint64(d)
		if float64(ud) == d {
			return cmpUint64(u, ud), true
		}
	}
	return cmpFloat64(float64(u), d)
}
