package ast

import (
	"testing"

	"github.com/aledsdavies/celrt/value"
)

func TestWalkVisitsAllDescendants(t *testing.T) {
	// (1 + x).size()
	one := Const(1, value.Int(1))
	x := Ident(2, "x")
	sum := Call(3, nil, "_+_", []*Expr{one, x})
	sizeCall := Call(4, sum, "size", nil)

	var visited []ID
	Walk(sizeCall, func(e *Expr) { visited = append(visited, e.ID) })

	want := []ID{4, 3, 1, 2}
	if len(visited) != len(want) {
		t.Fatalf("visited %v, want %v", visited, want)
	}
	for i, id := range want {
		if visited[i] != id {
			t.Errorf("visited[%d] = %d, want %d", i, visited[i], id)
		}
	}
}

func TestWalkComprehension(t *testing.T) {
	rng := Ident(1, "items")
	accuInit := Const(2, value.Bool(false))
	loopCond := Ident(3, "@not_strictly_false")
	loopStep := Ident(4, "step")
	result := Ident(5, "__result__")
	comp := Comprehension(6, "x", "__result__", rng, accuInit, loopCond, loopStep, result)

	count := 0
	Walk(comp, func(*Expr) { count++ })
	if count != 6 {
		t.Errorf("visited %d nodes, want 6", count)
	}
}

func TestConstructorsSetKindAndPayload(t *testing.T) {
	sel := Select(1, Ident(2, "msg"), "field", true)
	if sel.Kind != KindSelect {
		t.Fatalf("Kind = %v, want KindSelect", sel.Kind)
	}
	if sel.Select.Field != "field" || !sel.Select.TestOnly {
		t.Errorf("Select payload = %+v", sel.Select)
	}
}
