// Package attribute implements the attribute trail described in spec
// §3.5/§4.8: a qualified path (`root.f1[42].f2`) threaded alongside
// every operand-stack value so the evaluator can report which input
// attribute an Unknown or a missing-attribute error traces back to.
package attribute

import (
	"fmt"
	"strconv"
	"strings"
)

// Qualifier is one path segment: either a field name or an index.
type Qualifier struct {
	Field    string
	Index    int64
	HasIndex bool
}

// Trail is immutable once constructed; Step/StepIndex return a new
// Trail rather than mutating the receiver, since the same Trail value
// is shared across stack-slot copies.
type Trail struct {
	root  string // empty root means this is the empty trail
	quals []Qualifier
}

// Empty is the zero Trail: carries no attribute information.
var Empty = Trail{}

// NewRoot starts a trail at a named input variable.
func NewRoot(name string) Trail {
	return Trail{root: name}
}

// IsEmpty reports whether this trail carries no attribute path.
func (t Trail) IsEmpty() bool { return t.root == "" }

// Step extends the trail with a field qualifier. Per
// attribute_trail_test.cc's AttributeTrailEmptyStep: stepping an empty
// trail returns the empty trail unchanged (spec §4.8, SPEC_FULL.md §C.7).
func (t Trail) Step(field string) Trail {
	if t.IsEmpty() {
		return t
	}
	return Trail{root: t.root, quals: append(append([]Qualifier(nil), t.quals...), Qualifier{Field: field})}
}

// StepIndex extends the trail with an index qualifier.
func (t Trail) StepIndex(i int64) Trail {
	if t.IsEmpty() {
		return t
	}
	return Trail{root: t.root, quals: append(append([]Qualifier(nil), t.quals...), Qualifier{Index: i, HasIndex: true})}
}

// String renders the trail in `root.field[idx].field2` form, or "" for
// the empty trail.
func (t Trail) String() string {
	if t.IsEmpty() {
		return ""
	}
	var b strings.Builder
	b.WriteString(t.root)
	for _, q := range t.quals {
		if q.HasIndex {
			b.WriteByte('[')
			b.WriteString(strconv.FormatInt(q.Index, 10))
			b.WriteByte(']')
		} else {
			b.WriteByte('.')
			b.WriteString(q.Field)
		}
	}
	return b.String()
}

func (t Trail) GoString() string {
	return fmt.Sprintf("attribute.Trail(%q)", t.String())
}
