package cmd

import (
	"fmt"

	"github.com/aledsdavies/celrt/activation"
	"github.com/aledsdavies/celrt/ast"
	"github.com/aledsdavies/celrt/builtins"
	"github.com/aledsdavies/celrt/functions"
	"github.com/aledsdavies/celrt/internal/execution"
	"github.com/aledsdavies/celrt/internal/fixture"
)

// newRegistry builds a function registry carrying the full standard
// library (builtins.RegisterAll); every subcommand that evaluates an
// expression needs one.
func newRegistry() *functions.Registry {
	r := functions.NewRegistry()
	builtins.RegisterAll(r)
	return r
}

// loadExpr loads and builds the checked expression fixture at path.
func loadExpr(path string) (*ast.Expr, error) {
	ey, err := fixture.LoadExpr(path)
	if err != nil {
		return nil, err
	}
	e, err := ey.Build()
	if err != nil {
		return nil, fmt.Errorf("building expression from %s: %w", path, err)
	}
	return e, nil
}

// loadActivation loads the activation fixture at path, or an empty
// activation over the standard library if path is empty.
func loadActivation(path string) (activation.Activation, error) {
	reg := newRegistry()
	if path == "" {
		return activation.NewMap(nil, reg), nil
	}
	ay, err := fixture.LoadActivation(path)
	if err != nil {
		return nil, err
	}
	act, err := ay.Build(reg)
	if err != nil {
		return nil, fmt.Errorf("building activation from %s: %w", path, err)
	}
	return act, nil
}

// optionsFromFlags assembles execution.Options from the shared flag
// set every evaluating subcommand registers (see init in each file).
func optionsFromFlags(iterationLimit int64, shortCircuit bool) execution.Options {
	opts := execution.DefaultOptions()
	opts.ShortCircuiting = shortCircuit
	opts.ComprehensionIterationLimit = iterationLimit
	return opts
}
