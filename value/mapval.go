package value

import "strconv"

// MapEntry is one key/value pair supplied to Map. Key must be a Bool,
// Int, Uint, or String Value (spec §3.1: "keys must be bool/int/uint/
// string").
type MapEntry struct {
	Key   Value
	Value Value
}

type mapPayload struct {
	entries []MapEntry
	index   map[string]int // canonical key -> index into entries
}

// canonicalMapKey returns a string that collapses CEL-equal map keys
// (e.g. Int(5) and Uint(5)) to the same bucket, and reports whether k
// is a valid map key kind at all.
func canonicalMapKey(k Value) (string, bool) {
	switch k.kind {
	case KindBool:
		if k.b {
			return "b:1", true
		}
		return "b:0", true
	case KindString:
		return "s:" + k.s, true
	case KindInt:
		if k.i >= 0 {
			return "n:" + strconv.FormatUint(uint64(k.i), 10), true
		}
		return "i:" + strconv.FormatInt(k.i, 10), true
	case KindUint:
		return "n:" + strconv.FormatUint(k.u, 10), true
	default:
		return "", false
	}
}

// Map constructs a Kind == KindMap value, preserving the insertion order
// of entries. A key of an unsupported kind, or a key that collides
// (under CEL equality) with an earlier key, yields an Error value
// instead of a Map — CEL map literals require unique keys (spec §3.1
// invariant: "map keys are unique under CEL equality").
func Map(entries []MapEntry) Value {
	payload := &mapPayload{
		entries: make([]MapEntry, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
	}
	for _, e := range entries {
		canon, ok := canonicalMapKey(e.Key)
		if !ok {
			return NewError(0, ErrBadKeyType, "unsupported map key type: %s", e.Key.Kind())
		}
		if _, exists := payload.index[canon]; exists {
			return NewError(0, ErrDuplicateKey, "duplicate map key: %v", e.Key)
		}
		payload.index[canon] = len(payload.entries)
		payload.entries = append(payload.entries, e)
	}
	return Value{kind: KindMap, mp: payload}
}

// EmptyMap is the process-wide immutable empty map singleton.
var EmptyMap = Value{kind: KindMap, mp: &mapPayload{index: map[string]int{}}}

func (v Value) MapLen() int {
	mustKind(v, KindMap)
	return len(v.mp.entries)
}

// MapGet looks up key under CEL map-key equality. The second return
// value is false if the key is absent (including the case where key is
// not a legal key kind at all).
func (v Value) MapGet(key Value) (Value, bool) {
	mustKind(v, KindMap)
	canon, ok := canonicalMapKey(key)
	if !ok {
		return Value{}, false
	}
	idx, found := v.mp.index[canon]
	if !found {
		return Value{}, false
	}
	return v.mp.entries[idx].Value, true
}

// MapHas reports key presence without fetching the value; used by the
// `in` operator and by has()-macro presence tests over dynamic maps.
func (v Value) MapHas(key Value) bool {
	_, ok := v.MapGet(key)
	return ok
}

// MapEntries returns the map's entries in insertion order. Callers must
// not mutate the returned slice.
func (v Value) MapEntries() []MapEntry {
	mustKind(v, KindMap)
	return v.mp.entries
}

// MapKeys returns the map's keys in insertion order; used by the
// comprehension engine when a comprehension ranges over a map (spec
// §4.6: "Range may be ... a map (iterates keys)").
func (v Value) MapKeys() []Value {
	mustKind(v, KindMap)
	keys := make([]Value, len(v.mp.entries))
	for i, e := range v.mp.entries {
		keys[i] = e.Key
	}
	return keys
}
