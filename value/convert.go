package value

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// ConvertTo implements the convert_to(type) -> Value operation named by
// spec §3.1's Value operation list — the runtime counterpart of CEL's
// int(), uint(), double(), string(), bytes(), timestamp(), and
// duration() conversion functions. target must be a Kind == KindType
// value; an unsupported (from, to) pairing yields ErrBadCast and an
// out-of-range numeric conversion yields ErrOverflow.
func (v Value) ConvertTo(target Value) Value {
	if v.IsError() {
		return v
	}
	if v.IsUnknown() {
		return v
	}
	mustKind(target, KindType)
	switch target.typ.name {
	case "int":
		return v.convertToInt()
	case "uint":
		return v.convertToUint()
	case "double":
		return v.convertToDouble()
	case "string":
		return v.convertToString()
	case "bytes":
		return v.convertToBytes()
	case "bool":
		return v.convertToBool()
	case "google.protobuf.Duration":
		return v.convertToDuration()
	case "google.protobuf.Timestamp":
		return v.convertToTimestamp()
	case "dyn":
		return v
	default:
		return NewError(0, ErrBadCast, "cannot convert %s to %s", v.kind, target.typ.name)
	}
}

func (v Value) convertToInt() Value {
	switch v.kind {
	case KindInt:
		return v
	case KindUint:
		if v.u > uint64(math.MaxInt64) {
			return NewError(0, ErrOverflow, "uint %d overflows int", v.u)
		}
		return Int(int64(v.u))
	case KindDouble:
		if math.IsNaN(v.d) || v.d < minInt64AsFloat || v.d >= maxInt64AsFloat {
			return NewError(0, ErrOverflow, "double %v overflows int", v.d)
		}
		return Int(int64(v.d))
	case KindString:
		i, err := strconv.ParseInt(v.s, 10, 64)
		if err != nil {
			return NewError(0, ErrBadCast, "cannot convert string %q to int", v.s)
		}
		return Int(i)
	case KindTimestamp:
		return Int(v.ts.Unix())
	case KindDuration:
		return Int(int64(v.dur))
	default:
		return NewError(0, ErrBadCast, "cannot convert %s to int", v.kind)
	}
}

func (v Value) convertToUint() Value {
	switch v.kind {
	case KindUint:
		return v
	case KindInt:
		if v.i < 0 {
			return NewError(0, ErrOverflow, "int %d overflows uint", v.i)
		}
		return Uint(uint64(v.i))
	case KindDouble:
		if math.IsNaN(v.d) || v.d < 0 || v.d >= maxInt64AsFloat*2 {
			return NewError(0, ErrOverflow, "double %v overflows uint", v.d)
		}
		return Uint(uint64(v.d))
	case KindString:
		u, err := strconv.ParseUint(v.s, 10, 64)
		if err != nil {
			return NewError(0, ErrBadCast, "cannot convert string %q to uint", v.s)
		}
		return Uint(u)
	default:
		return NewError(0, ErrBadCast, "cannot convert %s to uint", v.kind)
	}
}

func (v Value) convertToDouble() Value {
	switch v.kind {
	case KindDouble:
		return v
	case KindInt:
		return Double(float64(v.i))
	case KindUint:
		return Double(float64(v.u))
	case KindString:
		d, err := strconv.ParseFloat(v.s, 64)
		if err != nil {
			return NewError(0, ErrBadCast, "cannot convert string %q to double", v.s)
		}
		return Double(d)
	default:
		return NewError(0, ErrBadCast, "cannot convert %s to double", v.kind)
	}
}

func (v Value) convertToString() Value {
	switch v.kind {
	case KindString:
		return v
	case KindInt:
		return String(strconv.FormatInt(v.i, 10))
	case KindUint:
		return String(strconv.FormatUint(v.u, 10))
	case KindDouble:
		return String(strconv.FormatFloat(v.d, 'g', -1, 64))
	case KindBool:
		return String(strconv.FormatBool(v.b))
	case KindBytes:
		return String(string(v.raw))
	case KindTimestamp:
		return String(v.ts.UTC().Format(time.RFC3339Nano))
	case KindDuration:
		return String(v.dur.String())
	default:
		return NewError(0, ErrBadCast, "cannot convert %s to string", v.kind)
	}
}

func (v Value) convertToBytes() Value {
	switch v.kind {
	case KindBytes:
		return v
	case KindString:
		return Bytes([]byte(v.s))
	default:
		return NewError(0, ErrBadCast, "cannot convert %s to bytes", v.kind)
	}
}

func (v Value) convertToBool() Value {
	switch v.kind {
	case KindBool:
		return v
	case KindString:
		b, err := strconv.ParseBool(v.s)
		if err != nil {
			return NewError(0, ErrBadCast, "cannot convert string %q to bool", v.s)
		}
		return Bool(b)
	default:
		return NewError(0, ErrBadCast, "cannot convert %s to bool", v.kind)
	}
}

func (v Value) convertToDuration() Value {
	switch v.kind {
	case KindDuration:
		return v
	case KindString:
		d, err := time.ParseDuration(v.s)
		if err != nil {
			return NewError(0, ErrBadCast, "cannot convert string %q to duration: %v", v.s, err)
		}
		return Duration(d)
	case KindInt:
		return Duration(time.Duration(v.i))
	default:
		return NewError(0, ErrBadCast, "cannot convert %s to duration", v.kind)
	}
}

func (v Value) convertToTimestamp() Value {
	switch v.kind {
	case KindTimestamp:
		return v
	case KindString:
		t, err := time.Parse(time.RFC3339Nano, v.s)
		if err != nil {
			return NewError(0, ErrBadCast, "cannot convert string %q to timestamp: %v", v.s, err)
		}
		return Timestamp(t)
	case KindInt:
		return Timestamp(time.Unix(v.i, 0).UTC())
	default:
		return NewError(0, ErrBadCast, "cannot convert %s to timestamp", v.kind)
	}
}

// String renders v for diagnostics and %v formatting. It is not used for
// the string() conversion function — see convertToString.
func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindUint:
		return strconv.FormatUint(v.u, 10) + "u"
	case KindDouble:
		return strconv.FormatFloat(v.d, 'g', -1, 64)
	case KindString:
		return strconv.Quote(v.s)
	case KindBytes:
		return fmt.Sprintf("bytes[%d]", len(v.raw))
	case KindDuration:
		return v.dur.String()
	case KindTimestamp:
		return v.ts.Format(time.RFC3339Nano)
	case KindList:
		return v.listString()
	case KindMap:
		return fmt.Sprintf("map[%d entries]", len(v.mp.entries))
	case KindStruct:
		return fmt.Sprintf("%s{...}", v.st.desc.TypeName)
	case KindType:
		return v.typ.name
	case KindOptional:
		if v.opt.present {
			return "optional(" + v.opt.value.String() + ")"
		}
		return "optional.none()"
	case KindUnknown:
		return fmt.Sprintf("unknown%v", v.unk.ids)
	case KindError:
		return "error: " + v.errv.Error()
	case KindOpaque:
		return fmt.Sprintf("opaque<%s>", v.opq.tag)
	default:
		return "<invalid>"
	}
}
