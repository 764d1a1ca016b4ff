package execution

import (
	"testing"

	"github.com/aledsdavies/celrt/activation"
	"github.com/aledsdavies/celrt/functions"
	"github.com/aledsdavies/celrt/internal/attribute"
	"github.com/aledsdavies/celrt/value"
)

func newTestFrame(slots int) *Frame {
	act := activation.NewMap(nil, functions.NewRegistry())
	return NewFrame(act, DefaultOptions(), slots)
}

func TestPushPopRoundTrip(t *testing.T) {
	f := newTestFrame(0)
	f.Push(value.Int(1), attribute.NewRoot("x"))
	v, tr := f.Pop()
	if v.AsInt() != 1 || tr.String() != "x" {
		t.Errorf("Pop() = (%v, %q), want (1, x)", v, tr)
	}
}

func TestPopUnderflowPanics(t *testing.T) {
	f := newTestFrame(0)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic popping an empty stack")
		}
	}()
	f.Pop()
}

func TestPopN(t *testing.T) {
	f := newTestFrame(0)
	f.PushValue(value.Int(1))
	f.PushValue(value.Int(2))
	f.PushValue(value.Int(3))
	vals, _ := f.PopN(2)
	if len(vals) != 2 || vals[0].AsInt() != 2 || vals[1].AsInt() != 3 {
		t.Errorf("PopN(2) = %v, want [2 3]", vals)
	}
	if f.Len() != 1 {
		t.Errorf("Len() = %d, want 1", f.Len())
	}
}

func TestIterFrameLifecycle(t *testing.T) {
	f := newTestFrame(2)
	f.PushIterFrame(0, 1)
	f.SetAccuVar(value.Bool(false), attribute.Empty)

	if _, _, ok := f.GetIterVar(); ok {
		t.Error("GetIterVar() before SetIterVar should report ok=false")
	}

	f.SetIterVar(value.Int(5), attribute.Empty)
	v, _, ok := f.GetIterVar()
	if !ok || v.AsInt() != 5 {
		t.Fatalf("GetIterVar() = (%v, %v), want (5, true)", v, ok)
	}

	f.ClearIterVar()
	if _, _, ok := f.GetIterVar(); ok {
		t.Error("GetIterVar() after ClearIterVar should report ok=false")
	}

	accu, _, ok := f.GetAccuVar()
	if !ok || accu.AsBool() != false {
		t.Errorf("GetAccuVar() = (%v, %v), want (false, true)", accu, ok)
	}

	f.PopIterFrame()
}

func TestPopIterFrameUnderflowPanics(t *testing.T) {
	f := newTestFrame(0)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic popping an empty iter-frame stack")
		}
	}()
	f.PopIterFrame()
}

func TestSetIterVarWithoutPushPanics(t *testing.T) {
	f := newTestFrame(1)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic calling SetIterVar before PushIterFrame")
		}
	}()
	f.SetIterVar(value.Int(1), attribute.Empty)
}

func TestAdvanceIterationBudget(t *testing.T) {
	opts := DefaultOptions()
	opts.ComprehensionIterationLimit = 2
	f := NewFrame(activation.NewMap(nil, functions.NewRegistry()), opts, 1)
	f.PushIterFrame(0, 0)

	if _, exceeded := f.AdvanceIteration(); exceeded {
		t.Fatal("first iteration should not exceed budget of 2")
	}
	if _, exceeded := f.AdvanceIteration(); exceeded {
		t.Fatal("second iteration should not exceed budget of 2")
	}
	errv, exceeded := f.AdvanceIteration()
	if !exceeded || !errv.Is(value.ErrIterationBudgetExceeded) {
		t.Fatalf("third iteration should exceed budget, got (%v, %v)", errv, exceeded)
	}
}
