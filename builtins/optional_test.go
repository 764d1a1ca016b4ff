package builtins

import (
	"testing"

	"github.com/aledsdavies/celrt/value"
)

func TestOptionalOfHasValue(t *testing.T) {
	reg := newRegistry()
	opt := reg.Dispatch("optional.of", []value.Value{value.Int(5)})
	v := reg.Dispatch("hasValue", []value.Value{opt})
	if v.Kind() != value.KindBool || !v.AsBool() {
		t.Fatalf("optional.of(5).hasValue() = %v, want true", v)
	}
}

func TestOptionalOfNonZeroValueOmitsZero(t *testing.T) {
	reg := newRegistry()
	opt := reg.Dispatch("optional.ofNonZeroValue", []value.Value{value.Int(0)})
	if opt.Kind() != value.KindOptional || opt.OptionalHasValue() {
		t.Fatalf("optional.ofNonZeroValue(0) = %v, want none", opt)
	}
}

func TestOptionalNoneOrValueFallsBack(t *testing.T) {
	reg := newRegistry()
	none := reg.Dispatch("optional.none", nil)
	other := reg.Dispatch("optional.of", []value.Value{value.Int(9)})
	combined := reg.Dispatch("or", []value.Value{none, other})
	if !combined.OptionalHasValue() || combined.OptionalValue().AsInt() != 9 {
		t.Fatalf("optional.none().or(optional.of(9)) = %v, want optional(9)", combined)
	}
}

func TestOptionalOrValueUsesDefault(t *testing.T) {
	reg := newRegistry()
	none := reg.Dispatch("optional.none", nil)
	v := reg.Dispatch("orValue", []value.Value{none, value.Int(42)})
	if v.AsInt() != 42 {
		t.Fatalf("optional.none().orValue(42) = %v, want 42", v)
	}
}
