package steps

import (
	"github.com/aledsdavies/celrt/ast"
	"github.com/aledsdavies/celrt/internal/attribute"
	"github.com/aledsdavies/celrt/internal/execution"
	"github.com/aledsdavies/celrt/value"
)

// CreateListStep pops NumElems operands (pushed in source order) and
// assembles a list literal (spec §3.2's CreateList node). OptionalFlags
// marks which positions were written with the `?`-expansion syntax: a
// present Optional at such a position is unwrapped and inserted, an
// absent one is omitted from the result list entirely, and a non-
// Optional value at such a position is an error.
type CreateListStep struct {
	StepID        ast.ID
	NumElems      int
	OptionalFlags map[int]bool
}

func (s *CreateListStep) ID() ast.ID { return s.StepID }
func (s *CreateListStep) Evaluate(f *execution.Frame) {
	vals, _ := f.PopN(s.NumElems)
	for _, v := range vals {
		if v.IsError() || v.IsUnknown() {
			f.Push(v, attribute.Empty)
			return
		}
	}

	elems := make([]value.Value, 0, len(vals))
	for i, v := range vals {
		if !s.OptionalFlags[i] {
			elems = append(elems, v)
			continue
		}
		if v.Kind() != value.KindOptional {
			f.Push(value.NewError(int64(s.StepID), value.ErrNoMatchingOverload,
				"'?' list element must be optional, got %s", v.Kind()), attribute.Empty)
			return
		}
		if v.OptionalHasValue() {
			elems = append(elems, v.OptionalValue())
		}
	}
	f.PushValue(value.List(elems))
}

// CreateMapStep pops 2*NumEntries operands (key, value interleaved, in
// source order) and assembles a map literal (spec §3.2's CreateMap
// node). OptionalFlags works like CreateListStep's but applies to the
// entry's value: an absent Optional value drops the whole entry.
type CreateMapStep struct {
	StepID        ast.ID
	NumEntries    int
	OptionalFlags map[int]bool
}

func (s *CreateMapStep) ID() ast.ID { return s.StepID }
func (s *CreateMapStep) Evaluate(f *execution.Frame) {
	vals, _ := f.PopN(2 * s.NumEntries)
	for _, v := range vals {
		if v.IsError() || v.IsUnknown() {
			f.Push(v, attribute.Empty)
			return
		}
	}

	entries := make([]value.MapEntry, 0, s.NumEntries)
	for i := 0; i < s.NumEntries; i++ {
		k, v := vals[2*i], vals[2*i+1]
		if !s.OptionalFlags[i] {
			entries = append(entries, value.MapEntry{Key: k, Value: v})
			continue
		}
		if v.Kind() != value.KindOptional {
			f.Push(value.NewError(int64(s.StepID), value.ErrNoMatchingOverload,
				"'?' map entry value must be optional, got %s", v.Kind()), attribute.Empty)
			return
		}
		if v.OptionalHasValue() {
			entries = append(entries, value.MapEntry{Key: k, Value: v.OptionalValue()})
		}
	}
	f.PushValue(value.Map(entries))
}

// CreateStructStep pops len(FieldNames) operands (field values, in
// declaration order) and assembles a typed struct/message literal (spec
// §3.2's CreateStruct node). Desc is resolved once, at plan time, from
// TypeName against the active type registry — the step itself never
// consults a registry at evaluation time. OptionalFlags mirrors
// CreateMapStep's: an absent Optional field is simply omitted, leaving
// the field at its descriptor default.
type CreateStructStep struct {
	StepID        ast.ID
	Desc          *value.Descriptor
	FieldNames    []string
	OptionalFlags map[int]bool
}

func (s *CreateStructStep) ID() ast.ID { return s.StepID }
func (s *CreateStructStep) Evaluate(f *execution.Frame) {
	vals, _ := f.PopN(len(s.FieldNames))
	for _, v := range vals {
		if v.IsError() || v.IsUnknown() {
			f.Push(v, attribute.Empty)
			return
		}
	}

	fields := make(map[string]value.Value, len(vals))
	for i, v := range vals {
		name := s.FieldNames[i]
		if !s.OptionalFlags[i] {
			fields[name] = v
			continue
		}
		if v.Kind() != value.KindOptional {
			f.Push(value.NewError(int64(s.StepID), value.ErrNoMatchingOverload,
				"'?' field %s must be optional, got %s", name, v.Kind()), attribute.Empty)
			return
		}
		if v.OptionalHasValue() {
			fields[name] = v.OptionalValue()
		}
	}
	f.PushValue(value.Struct(s.Desc, fields))
}
