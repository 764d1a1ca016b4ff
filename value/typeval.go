package value

type typePayload struct {
	name string
}

// TypeValue constructs a Kind == KindType value reifying the named
// type, enabling expressions like `type(x) == int` (spec §3.1).
func TypeValue(name string) Value {
	return Value{kind: KindType, typ: &typePayload{name: name}}
}

func (v Value) TypeName() string {
	mustKind(v, KindType)
	return v.typ.name
}

// Well-known type singletons (spec §4.9: "Global singletons for ...
// builtin type tokens").
var (
	TypeNull      = TypeValue("null_type")
	TypeBool      = TypeValue("bool")
	TypeInt       = TypeValue("int")
	TypeUint      = TypeValue("uint")
	TypeDouble    = TypeValue("double")
	TypeString    = TypeValue("string")
	TypeBytes     = TypeValue("bytes")
	TypeDuration  = TypeValue("google.protobuf.Duration")
	TypeTimestamp = TypeValue("google.protobuf.Timestamp")
	TypeList      = TypeValue("list")
	TypeMap       = TypeValue("map")
	TypeType      = TypeValue("type")
	TypeOptional  = TypeValue("optional_type")
	// TypeDyn is the "dyn" pseudo-type: per this engine's resolution of
	// spec §9 Open Question (b), `type(x) == dyn` is defined (never an
	// error) and evaluates to true for any non-error, non-unknown x, as
	// `dyn` denotes "any concrete CEL type" rather than a distinct
	// runtime kind. See DESIGN.md for the rationale.
	TypeDyn = TypeValue("dyn")
)

// TypeOf reifies v's runtime kind as a Type value. For Error and
// Unknown values, TypeOf returns the value itself unchanged (errors and
// unknowns propagate through type() like any other unary call, per
// spec §4.7's "all other operators" rule).
func (v Value) TypeOf() Value {
	if v.IsError() || v.IsUnknown() {
		return v
	}
	switch v.kind {
	case KindNull:
		return TypeNull
	case KindBool:
		return TypeBool
	case KindInt:
		return TypeInt
	case KindUint:
		return TypeUint
	case KindDouble:
		return TypeDouble
	case KindString:
		return TypeString
	case KindBytes:
		return TypeBytes
	case KindDuration:
		return TypeDuration
	case KindTimestamp:
		return TypeTimestamp
	case KindList:
		return TypeList
	case KindMap:
		return TypeMap
	case KindStruct:
		return TypeValue(v.st.desc.TypeName)
	case KindType:
		return TypeType
	case KindOptional:
		return TypeOptional
	default:
		return NewError(0, ErrBadCast, "type() undefined for kind %s", v.kind)
	}
}

// EqualsType compares this Type against other, honoring the dyn
// special case: dyn equals every other concrete type token.
func (v Value) EqualsType(other Value) bool {
	mustKind(v, KindType)
	mustKind(other, KindType)
	if v.typ.name == "dyn" || other.typ.name == "dyn" {
		return true
	}
	return v.typ.name == other.typ.name
}
