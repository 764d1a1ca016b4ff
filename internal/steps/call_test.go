package steps

import (
	"testing"

	"github.com/aledsdavies/celrt/activation"
	"github.com/aledsdavies/celrt/functions"
	"github.com/aledsdavies/celrt/internal/execution"
	"github.com/aledsdavies/celrt/value"
)

func newCallFrame(reg *functions.Registry) *execution.Frame {
	act := activation.NewMap(nil, reg)
	return execution.NewFrame(act, execution.DefaultOptions(), 0)
}

func TestRegisterCoreOverloadsEquals(t *testing.T) {
	reg := functions.NewRegistry()
	RegisterCoreOverloads(reg)

	f := newCallFrame(reg)
	f.PushValue(value.Int(1))
	f.PushValue(value.Int(1))
	(&CallStep{StepID: 1, Function: "_==_", NumArgs: 2}).Evaluate(f)

	v, tr := f.Pop()
	if v.Kind() != value.KindBool || !v.AsBool() {
		t.Fatalf("1 == 1 = %v, want true", v)
	}
	if !tr.IsEmpty() {
		t.Errorf("call result should reset attribute trail, got %v", tr)
	}
}

func TestRegisterCoreOverloadsNotEquals(t *testing.T) {
	reg := functions.NewRegistry()
	RegisterCoreOverloads(reg)

	f := newCallFrame(reg)
	f.PushValue(value.Int(1))
	f.PushValue(value.Int(2))
	(&CallStep{StepID: 1, Function: "_!=_", NumArgs: 2}).Evaluate(f)

	v, _ := f.Pop()
	if v.Kind() != value.KindBool || !v.AsBool() {
		t.Fatalf("1 != 2 = %v, want true", v)
	}
}

func TestCallStepStampsErrorID(t *testing.T) {
	reg := functions.NewRegistry()
	// Deliberately no overload registered for "missing_fn".
	f := newCallFrame(reg)
	f.PushValue(value.Int(1))
	(&CallStep{StepID: 42, Function: "missing_fn", NumArgs: 1}).Evaluate(f)

	v, _ := f.Pop()
	if !v.IsError() {
		t.Fatalf("expected error for unresolved function, got %v", v)
	}
	if v.AsError().ID != 42 {
		t.Errorf("AsError().ID = %d, want 42", v.AsError().ID)
	}
}

func TestCallStepWithTargetPopsReceiver(t *testing.T) {
	reg := functions.NewRegistry()
	reg.Register(&functions.Overload{
		ID: "size_string", Function: "size", Arity: functions.Unary,
		ArgKinds: []value.Kind{value.KindString},
		UnaryImpl: func(a value.Value) value.Value { return value.Int(int64(len(a.AsString()))) },
	})
	f := newCallFrame(reg)
	f.PushValue(value.String("abcd"))
	(&CallStep{StepID: 1, Function: "size", NumArgs: 0, HasTarget: true}).Evaluate(f)

	v, _ := f.Pop()
	if v.AsInt() != 4 {
		t.Fatalf("size(\"abcd\") = %v, want 4", v)
	}
}
