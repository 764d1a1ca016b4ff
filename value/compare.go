package value

import "bytes"

// Less implements the ordering used by the <, <=, >, >= operators (spec
// §4.1). It is defined only for numeric kinds, String, Bytes, Duration,
// and Timestamp; any other kind pairing — or a NaN operand — yields
// ok=false with no error, matching IEEE-754 "unordered" semantics rather
// than raising ErrUnsupportedComparison, since the caller (a builtin
// overload) is responsible for turning "not ok" into the appropriate
// CEL error.
func (a Value) Less(b Value) (result bool, ok bool) {
	if isNumericKind(a.kind) && isNumericKind(b.kind) {
		cmp, ok := numericCompare(a, b)
		return ok && cmp < 0, ok
	}
	if a.kind != b.kind {
		return false, false
	}
	switch a.kind {
	case KindString:
		return a.s < b.s, true
	case KindBytes:
		return bytes.Compare(a.raw, b.raw) < 0, true
	case KindDuration:
		return a.dur < b.dur, true
	case KindTimestamp:
		return a.ts.Before(b.ts), true
	default:
		return false, false
	}
}
