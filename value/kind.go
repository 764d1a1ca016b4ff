// Package value implements the CEL value and type universe: the tagged
// sum of value kinds described in spec §3.1/§4.1, along with equality,
// ordering, hashing of map keys, and conversion rules.
package value

// Kind identifies which variant of the tagged Value sum a given Value
// holds. Exactly one of Value's kind-specific payload fields is
// meaningful for a given Kind.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindUint
	KindDouble
	KindString
	KindBytes
	KindDuration
	KindTimestamp
	KindList
	KindMap
	KindStruct
	KindType
	KindOptional
	KindError
	KindUnknown
	KindOpaque
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null_type"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindUint:
		return "uint"
	case KindDouble:
		return "double"
	case KindString:
		return "string"
	case KindBytes:
		return "bytes"
	case KindDuration:
		return "google.protobuf.Duration"
	case KindTimestamp:
		return "google.protobuf.Timestamp"
	case KindList:
		return "list"
	case KindMap:
		return "map"
	case KindStruct:
		return "struct"
	case KindType:
		return "type"
	case KindOptional:
		return "optional_type"
	case KindError:
		return "error"
	case KindUnknown:
		return "unknown"
	case KindOpaque:
		return "opaque"
	default:
		return "unknown_kind"
	}
}

// Comparable reports whether values of this kind can ever be compared
// with Less; Error and Unknown short-circuit comparisons before Less is
// reached, and structs/opaques have no defined order.
func (k Kind) Comparable() bool {
	switch k {
	case KindInt, KindUint, KindDouble, KindString, KindBytes,
		KindDuration, KindTimestamp:
		return true
	default:
		return false
	}
}
