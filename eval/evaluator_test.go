package eval

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/aledsdavies/celrt/activation"
	"github.com/aledsdavies/celrt/ast"
	"github.com/aledsdavies/celrt/builtins"
	"github.com/aledsdavies/celrt/functions"
	"github.com/aledsdavies/celrt/internal/execution"
	"github.com/aledsdavies/celrt/value"
)

func regWithBuiltins() *functions.Registry {
	reg := functions.NewRegistry()
	builtins.RegisterAll(reg)
	return reg
}

func TestEvaluatorPlanAndEvaluate(t *testing.T) {
	// 1 + 2 * 3 -> 7
	e := ast.Call(3, nil, "_+_", []*ast.Expr{
		ast.Const(1, value.Int(1)),
		ast.Call(4, nil, "_*_", []*ast.Expr{ast.Const(2, value.Int(2)), ast.Const(5, value.Int(3))}),
	})
	ev := NewEvaluator(nil)
	p := ev.Plan(e, execution.DefaultOptions())
	act := activation.NewMap(nil, regWithBuiltins())
	v := ev.Evaluate(p, act, execution.DefaultOptions())
	if v.AsInt() != 7 {
		t.Fatalf("Evaluate(1 + 2*3) = %v, want 7", v)
	}
}

func TestEvaluatorTraceReportsEveryPushedValue(t *testing.T) {
	e := ast.Call(3, nil, "_+_", []*ast.Expr{
		ast.Const(1, value.Int(1)),
		ast.Const(2, value.Int(2)),
	})
	ev := NewEvaluator(nil)
	p := ev.Plan(e, execution.DefaultOptions())
	act := activation.NewMap(nil, regWithBuiltins())

	var seen []ast.ID
	listener := TraceListenerFunc(func(id ast.ID, v value.Value) { seen = append(seen, id) })
	v := ev.Trace(p, act, execution.DefaultOptions(), listener)

	if v.AsInt() != 3 {
		t.Fatalf("Trace(1+2) = %v, want 3", v)
	}
	if len(seen) != 3 {
		t.Fatalf("Trace invoked listener %d times, want 3 (two consts + one call)", len(seen))
	}
}

func TestEvaluatorWithLoggerEmitsPlanDiagnostics(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	e := ast.Const(1, value.Int(5))
	ev := NewEvaluator(nil).WithLogger(logger)
	p := ev.Plan(e, execution.DefaultOptions())
	act := activation.NewMap(nil, regWithBuiltins())
	v := ev.Evaluate(p, act, execution.DefaultOptions())

	if v.AsInt() != 5 {
		t.Fatalf("Evaluate(const 5) = %v, want 5", v)
	}
	if !strings.Contains(buf.String(), "planning expression") {
		t.Fatalf("expected attached logger to observe plan diagnostics, got: %s", buf.String())
	}
}

func TestEvaluatorTraceShortCircuitSkipsRHS(t *testing.T) {
	// false && unbound: unbound must never be resolved (no listener call for id 2).
	e := ast.Call(3, nil, "_&&_", []*ast.Expr{
		ast.Const(1, value.False),
		ast.Ident(2, "unbound"),
	})
	ev := NewEvaluator(nil)
	p := ev.Plan(e, execution.DefaultOptions())
	act := activation.NewMap(nil, regWithBuiltins())

	var seen []ast.ID
	listener := TraceListenerFunc(func(id ast.ID, v value.Value) { seen = append(seen, id) })
	v := ev.Trace(p, act, execution.DefaultOptions(), listener)

	if v.Kind() != value.KindBool || v.AsBool() {
		t.Fatalf("Trace(false && unbound) = %v, want false", v)
	}
	for _, id := range seen {
		if id == 2 {
			t.Fatalf("listener saw id 2 (the rhs), but short-circuiting must skip it: %v", seen)
		}
	}
}
