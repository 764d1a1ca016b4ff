package value

import "sort"

type unknownPayload struct {
	ids []string // sorted, deduplicated attribute path strings
}

// NewUnknown constructs a Kind == KindUnknown value carrying the given
// set of attribute paths (spec §3.1: "Unknown | set of attribute paths").
func NewUnknown(ids ...string) Value {
	return Value{kind: KindUnknown, unk: &unknownPayload{ids: sortedUnique(ids)}}
}

func sortedUnique(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// UnknownAttributes returns the sorted, deduplicated attribute paths
// this Unknown carries.
func (v Value) UnknownAttributes() []string {
	mustKind(v, KindUnknown)
	return v.unk.ids
}

// UnionUnknown merges two Unknown values into the union of their
// attribute sets (spec §4.1: "both unknown yields the union of their
// attribute sets").
func UnionUnknown(a, b Value) Value {
	mustKind(a, KindUnknown)
	mustKind(b, KindUnknown)
	merged := make([]string, 0, len(a.unk.ids)+len(b.unk.ids))
	merged = append(merged, a.unk.ids...)
	merged = append(merged, b.unk.ids...)
	return NewUnknown(merged...)
}
