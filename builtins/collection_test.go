package builtins

import (
	"testing"

	"github.com/aledsdavies/celrt/value"
)

func TestInListFindsMatch(t *testing.T) {
	reg := newRegistry()
	list := value.List([]value.Value{value.Int(1), value.Int(2), value.Int(3)})
	v := reg.Dispatch("@in", []value.Value{value.Int(2), list})
	if v.Kind() != value.KindBool || !v.AsBool() {
		t.Fatalf("2 in [1,2,3] = %v, want true", v)
	}
}

func TestInListNoMatch(t *testing.T) {
	reg := newRegistry()
	list := value.List([]value.Value{value.Int(1), value.Int(2)})
	v := reg.Dispatch("@in", []value.Value{value.Int(9), list})
	if v.Kind() != value.KindBool || v.AsBool() {
		t.Fatalf("9 in [1,2] = %v, want false", v)
	}
}

func TestInMapChecksKeys(t *testing.T) {
	reg := newRegistry()
	m := value.Map([]value.MapEntry{{Key: value.String("a"), Value: value.Int(1)}})
	v := reg.Dispatch("@in", []value.Value{value.String("a"), m})
	if v.Kind() != value.KindBool || !v.AsBool() {
		t.Fatalf(`"a" in {"a": 1} = %v, want true`, v)
	}
}

func TestSizeOfString(t *testing.T) {
	reg := newRegistry()
	v := reg.Dispatch("size", []value.Value{value.String("hello")})
	if v.AsInt() != 5 {
		t.Fatalf("size('hello') = %v, want 5", v)
	}
}

func TestSizeOfList(t *testing.T) {
	reg := newRegistry()
	list := value.List([]value.Value{value.Int(1), value.Int(2), value.Int(3)})
	v := reg.Dispatch("size", []value.Value{list})
	if v.AsInt() != 3 {
		t.Fatalf("size([1,2,3]) = %v, want 3", v)
	}
}
