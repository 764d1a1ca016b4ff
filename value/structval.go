package value

// Descriptor describes a struct/message type's defined fields. The full
// protobuf descriptor/reflection subsystem is out of scope for this
// engine (spec §1: "the protobuf descriptor/reflection subsystem" is an
// external collaborator specified only by interface); Descriptor is the
// minimal shape the evaluator needs to construct and inspect Struct
// values without depending on a particular message library.
type Descriptor struct {
	TypeName string
	// FieldOrder lists field names in declaration order; FieldNumbers
	// maps name to its field number for by-number access.
	FieldOrder   []string
	FieldNumbers map[string]int32
}

// FieldIndex returns the declaration-order index of name, or -1.
func (d *Descriptor) FieldIndex(name string) int {
	for i, n := range d.FieldOrder {
		if n == name {
			return i
		}
	}
	return -1
}

type structPayload struct {
	desc   *Descriptor
	fields map[string]Value
}

// Struct constructs a Kind == KindStruct value. Only fields present in
// desc.FieldOrder are legal; passing a field name not in the descriptor
// is an Error.
func Struct(desc *Descriptor, fields map[string]Value) Value {
	for name := range fields {
		if desc.FieldIndex(name) < 0 {
			return NewError(0, ErrFieldNotFound, "no such field %q on %s", name, desc.TypeName)
		}
	}
	cp := make(map[string]Value, len(fields))
	for k, v := range fields {
		cp[k] = v
	}
	return Value{kind: KindStruct, st: &structPayload{desc: desc, fields: cp}}
}

func (v Value) StructDescriptor() *Descriptor {
	mustKind(v, KindStruct)
	return v.st.desc
}

// StructField returns the named field's value, or an Error of kind
// ErrFieldNotFound. An unset field (present in the descriptor but not
// supplied) reads as that field kind's default; this implementation
// returns Null for unset fields, matching the common "unset proto
// message field reads as default" convention without requiring a full
// type-specific default table.
func (v Value) StructField(name string) Value {
	mustKind(v, KindStruct)
	if v.st.desc.FieldIndex(name) < 0 {
		return NewError(0, ErrFieldNotFound, "no such field %q on %s", name, v.st.desc.TypeName)
	}
	if val, ok := v.st.fields[name]; ok {
		return val
	}
	return Null
}

// StructFieldByNumber looks up a field by its declared field number.
func (v Value) StructFieldByNumber(number int32) Value {
	mustKind(v, KindStruct)
	for name, n := range v.st.desc.FieldNumbers {
		if n == number {
			return v.StructField(name)
		}
	}
	return NewError(0, ErrFieldNotFound, "no field with number %d on %s", number, v.st.desc.TypeName)
}

// StructHasField reports whether name was explicitly supplied at
// construction (used by the has() macro's presence test, spec §4.3:
// "True if the object field has a non-default value").
func (v Value) StructHasField(name string) bool {
	mustKind(v, KindStruct)
	val, ok := v.st.fields[name]
	if !ok {
		return false
	}
	return !isDefaultValue(val)
}

func isDefaultValue(v Value) bool {
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return !v.b
	case KindInt:
		return v.i == 0
	case KindUint:
		return v.u == 0
	case KindDouble:
		return v.d == 0
	case KindString:
		return v.s == ""
	case KindBytes:
		return len(v.raw) == 0
	case KindList:
		return len(v.list.elems) == 0
	case KindMap:
		return len(v.mp.entries) == 0
	default:
		return false
	}
}
