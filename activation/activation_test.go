package activation

import (
	"testing"

	"github.com/aledsdavies/celrt/functions"
	"github.com/aledsdavies/celrt/value"
)

func TestMapResolveBound(t *testing.T) {
	m := NewMap(map[string]value.Value{"x": value.Int(1)}, functions.NewRegistry())
	v, res := m.Resolve("x")
	if res != Resolved || v.AsInt() != 1 {
		t.Fatalf("Resolve(x) = (%v, %v), want (1, Resolved)", v, res)
	}
}

func TestMapResolveMissing(t *testing.T) {
	m := NewMap(nil, functions.NewRegistry())
	v, res := m.Resolve("x")
	if res != IsMissing {
		t.Fatalf("Resolve(x) res = %v, want IsMissing", res)
	}
	if !v.Is(value.ErrMissingAttribute) {
		t.Errorf("expected ErrMissingAttribute, got %v", v)
	}
}

func TestMapResolveUnknownPattern(t *testing.T) {
	m := NewMap(map[string]value.Value{"a": value.Int(1)}, functions.NewRegistry()).
		WithUnknownPatterns("a")
	v, res := m.Resolve("a")
	if res != IsUnknown {
		t.Fatalf("Resolve(a) res = %v, want IsUnknown", res)
	}
	if v.UnknownAttributes()[0] != "a" {
		t.Errorf("UnknownAttributes() = %v", v.UnknownAttributes())
	}
}

func TestMapResolveUnknownSubPath(t *testing.T) {
	m := NewMap(nil, functions.NewRegistry()).WithUnknownPatterns("request.auth")
	_, res := m.Resolve("request.auth.claims")
	if res != IsUnknown {
		t.Fatalf("Resolve(request.auth.claims) res = %v, want IsUnknown", res)
	}
}
