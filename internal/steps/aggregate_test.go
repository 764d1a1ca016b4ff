package steps

import (
	"testing"

	"github.com/aledsdavies/celrt/activation"
	"github.com/aledsdavies/celrt/functions"
	"github.com/aledsdavies/celrt/internal/execution"
	"github.com/aledsdavies/celrt/value"
)

func newAggregateFrame() *execution.Frame {
	act := activation.NewMap(nil, functions.NewRegistry())
	return execution.NewFrame(act, execution.DefaultOptions(), 0)
}

func TestCreateListStepBasic(t *testing.T) {
	f := newAggregateFrame()
	f.PushValue(value.Int(1))
	f.PushValue(value.Int(2))
	f.PushValue(value.Int(3))
	(&CreateListStep{StepID: 1, NumElems: 3}).Evaluate(f)

	v, _ := f.Pop()
	if v.Kind() != value.KindList || v.ListLen() != 3 {
		t.Fatalf("CreateListStep result = %v, want a 3-element list", v)
	}
}

func TestCreateListStepOptionalPresentExpands(t *testing.T) {
	f := newAggregateFrame()
	f.PushValue(value.Int(1))
	f.PushValue(value.OptionalOf(value.Int(2)))
	(&CreateListStep{StepID: 1, NumElems: 2, OptionalFlags: map[int]bool{1: true}}).Evaluate(f)

	v, _ := f.Pop()
	if v.ListLen() != 2 || v.ListGet(1).AsInt() != 2 {
		t.Fatalf("CreateListStep with present optional = %v, want [1, 2]", v)
	}
}

func TestCreateListStepOptionalAbsentOmits(t *testing.T) {
	f := newAggregateFrame()
	f.PushValue(value.Int(1))
	f.PushValue(value.OptionalNone)
	(&CreateListStep{StepID: 1, NumElems: 2, OptionalFlags: map[int]bool{1: true}}).Evaluate(f)

	v, _ := f.Pop()
	if v.ListLen() != 1 || v.ListGet(0).AsInt() != 1 {
		t.Fatalf("CreateListStep with absent optional = %v, want [1]", v)
	}
}

func TestCreateListStepErrorPropagates(t *testing.T) {
	f := newAggregateFrame()
	f.PushValue(value.NewError(1, value.ErrDivideByZero, "boom"))
	f.PushValue(value.Int(2))
	(&CreateListStep{StepID: 1, NumElems: 2}).Evaluate(f)

	v, _ := f.Pop()
	if !v.IsError() {
		t.Fatalf("CreateListStep = %v, want the operand's error", v)
	}
}

func TestCreateMapStepBasic(t *testing.T) {
	f := newAggregateFrame()
	f.PushValue(value.String("a"))
	f.PushValue(value.Int(1))
	f.PushValue(value.String("b"))
	f.PushValue(value.Int(2))
	(&CreateMapStep{StepID: 1, NumEntries: 2}).Evaluate(f)

	v, _ := f.Pop()
	got, ok := v.MapGet(value.String("b"))
	if !ok || got.AsInt() != 2 {
		t.Fatalf("CreateMapStep result = %v, missing b:2", v)
	}
}

func TestCreateMapStepOptionalAbsentDropsEntry(t *testing.T) {
	f := newAggregateFrame()
	f.PushValue(value.String("a"))
	f.PushValue(value.OptionalNone)
	(&CreateMapStep{StepID: 1, NumEntries: 1, OptionalFlags: map[int]bool{0: true}}).Evaluate(f)

	v, _ := f.Pop()
	if v.MapLen() != 0 {
		t.Fatalf("CreateMapStep with absent optional value = %v, want empty map", v)
	}
}

func TestCreateStructStepBasic(t *testing.T) {
	desc := &value.Descriptor{
		TypeName:     "demo.Msg",
		FieldOrder:   []string{"name", "count"},
		FieldNumbers: map[string]int32{"name": 1, "count": 2},
	}
	f := newAggregateFrame()
	f.PushValue(value.String("x"))
	f.PushValue(value.Int(5))
	(&CreateStructStep{StepID: 1, Desc: desc, FieldNames: []string{"name", "count"}}).Evaluate(f)

	v, _ := f.Pop()
	if v.Kind() != value.KindStruct || v.StructField("count").AsInt() != 5 {
		t.Fatalf("CreateStructStep result = %v, want count=5", v)
	}
}

func TestCreateStructStepOptionalAbsentLeavesFieldUnset(t *testing.T) {
	desc := &value.Descriptor{
		TypeName:     "demo.Msg",
		FieldOrder:   []string{"name"},
		FieldNumbers: map[string]int32{"name": 1},
	}
	f := newAggregateFrame()
	f.PushValue(value.OptionalNone)
	(&CreateStructStep{StepID: 1, Desc: desc, FieldNames: []string{"name"}, OptionalFlags: map[int]bool{0: true}}).Evaluate(f)

	v, _ := f.Pop()
	if v.StructHasField("name") {
		t.Fatalf("CreateStructStep with absent optional field should leave it unset, got has-field=true")
	}
}
