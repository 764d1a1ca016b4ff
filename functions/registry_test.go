package functions

import (
	"strings"
	"testing"

	"github.com/aledsdavies/celrt/value"
)

func addIntOverload() *Overload {
	return &Overload{
		ID: "add_int_int", Function: "_+_", Arity: Binary,
		ArgKinds:       []value.Kind{value.KindInt, value.KindInt},
		AllowPromotion: true,
		BinaryImpl: func(a, b value.Value) value.Value {
			return value.Int(a.AsInt() + b.AsInt())
		},
	}
}

func addUintOverload() *Overload {
	return &Overload{
		ID: "add_uint_uint", Function: "_+_", Arity: Binary,
		ArgKinds:       []value.Kind{value.KindUint, value.KindUint},
		AllowPromotion: true,
		BinaryImpl: func(a, b value.Value) value.Value {
			return value.Uint(a.AsUint() + b.AsUint())
		},
	}
}

func TestDispatchExactMatch(t *testing.T) {
	r := NewRegistry()
	r.Register(addIntOverload())
	got := r.Dispatch("_+_", []value.Value{value.Int(2), value.Int(3)})
	if got.Kind() != value.KindInt || got.AsInt() != 5 {
		t.Fatalf("Dispatch(2, 3) = %v, want Int(5)", got)
	}
}

func TestDispatchIntUintPromotion(t *testing.T) {
	r := NewRegistry()
	r.Register(addIntOverload())
	got := r.Dispatch("_+_", []value.Value{value.Int(2), value.Uint(3)})
	if got.IsError() {
		t.Fatalf("Dispatch(2, 3u) errored: %v", got)
	}
	if got.AsInt() != 5 {
		t.Errorf("Dispatch(2, 3u) = %v, want 5", got)
	}
}

func TestDispatchPromotionRequiresOptIn(t *testing.T) {
	r := NewRegistry()
	r.Register(&Overload{
		ID: "add_int_int_strict", Function: "_+_", Arity: Binary,
		ArgKinds: []value.Kind{value.KindInt, value.KindInt}, // AllowPromotion left false
		BinaryImpl: func(a, b value.Value) value.Value {
			return value.Int(a.AsInt() + b.AsInt())
		},
	})
	got := r.Dispatch("_+_", []value.Value{value.Int(2), value.Uint(3)})
	if !got.Is(value.ErrNoMatchingOverload) {
		t.Fatalf("expected ErrNoMatchingOverload for a strict-kind overload given mixed int/uint args, got %v", got)
	}
}

func TestDispatchStableTieBreak(t *testing.T) {
	r := NewRegistry()
	r.Register(addIntOverload())
	r.Register(addUintOverload())
	got := r.Dispatch("_+_", []value.Value{value.Int(2), value.Int(3)})
	if got.Kind() != value.KindInt {
		t.Errorf("expected the int overload (registered first) to win, got %s", got.Kind())
	}
}

func TestDispatchNoMatchingOverload(t *testing.T) {
	r := NewRegistry()
	r.Register(addIntOverload())
	got := r.Dispatch("_+_", []value.Value{value.String("a"), value.String("b")})
	if !got.Is(value.ErrNoMatchingOverload) {
		t.Fatalf("expected ErrNoMatchingOverload, got %v", got)
	}
}

func TestDispatchErrorPropagatesBeforeUnknown(t *testing.T) {
	r := NewRegistry()
	r.Register(addIntOverload())
	errv := value.NewError(1, value.ErrDivideByZero, "boom")
	unk := value.NewUnknown("x")
	got := r.Dispatch("_+_", []value.Value{errv, unk})
	if !got.IsError() {
		t.Fatalf("expected error to win over unknown, got %v", got)
	}
}

func TestDispatchUnknownPropagates(t *testing.T) {
	r := NewRegistry()
	r.Register(addIntOverload())
	unk := value.NewUnknown("x")
	got := r.Dispatch("_+_", []value.Value{value.Int(1), unk})
	if !got.IsUnknown() {
		t.Fatalf("expected unknown to propagate, got %v", got)
	}
}

func TestDispatchUnknownFunctionSuggestsClosestName(t *testing.T) {
	r := NewRegistry()
	r.Register(&Overload{
		ID: "size_string", Function: "size", Arity: Unary,
		ArgKinds:  []value.Kind{value.KindString},
		UnaryImpl: func(v value.Value) value.Value { return value.Int(int64(len(v.AsString()))) },
	})
	got := r.Dispatch("siz", []value.Value{value.String("x")})
	if !got.Is(value.ErrNoMatchingOverload) {
		t.Fatalf("expected ErrNoMatchingOverload, got %v", got)
	}
	if msg := got.AsError().Message; !strings.Contains(msg, `did you mean "size"`) {
		t.Errorf("error message %q does not suggest \"size\"", msg)
	}
}
