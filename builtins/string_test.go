package builtins

import (
	"testing"

	"github.com/aledsdavies/celrt/value"
)

func TestContains(t *testing.T) {
	reg := newRegistry()
	v := reg.Dispatch("contains", []value.Value{value.String("hello world"), value.String("wor")})
	if v.Kind() != value.KindBool || !v.AsBool() {
		t.Fatalf(`"hello world".contains("wor") = %v, want true`, v)
	}
}

func TestStartsWith(t *testing.T) {
	reg := newRegistry()
	v := reg.Dispatch("startsWith", []value.Value{value.String("hello"), value.String("he")})
	if v.Kind() != value.KindBool || !v.AsBool() {
		t.Fatalf(`"hello".startsWith("he") = %v, want true`, v)
	}
}

func TestMatchesValid(t *testing.T) {
	reg := newRegistry()
	v := reg.Dispatch("matches", []value.Value{value.String("abc123"), value.String(`^[a-z]+\d+$`)})
	if v.Kind() != value.KindBool || !v.AsBool() {
		t.Fatalf(`"abc123".matches("^[a-z]+\\d+$") = %v, want true`, v)
	}
}

func TestMatchesInvalidPattern(t *testing.T) {
	reg := newRegistry()
	v := reg.Dispatch("matches", []value.Value{value.String("abc"), value.String("(")})
	if !v.IsError() || !v.Is(value.ErrRegexCompile) {
		t.Fatalf(`"abc".matches("(") = %v, want ErrRegexCompile`, v)
	}
}
