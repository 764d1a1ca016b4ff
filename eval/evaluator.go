package eval

import (
	"log/slog"

	"github.com/aledsdavies/celrt/activation"
	"github.com/aledsdavies/celrt/ast"
	"github.com/aledsdavies/celrt/internal/execution"
	"github.com/aledsdavies/celrt/internal/planner"
	"github.com/aledsdavies/celrt/internal/program"
	"github.com/aledsdavies/celrt/value"
)

// Program is the planner's output, ready to run against any number of
// Activations (spec §6.4: "Plan(checked_ast, options) -> Program"). This
// engine's planner only ever emits flat programs — SPEC_FULL.md §C.8's
// recursive/direct-step tree mode is a data shape (program.DirectStep,
// program.WrappedDirectStep) this engine carries for a WrappedDirectStep
// root to embed, but the planner itself never decides to emit a
// top-level DirectStep; see DESIGN.md's planner entry for why that
// decision was scoped out.
type Program struct {
	flat *program.FlatProgram
}

// Evaluator is the host-facing entry point (spec §6.4). types resolves
// a CreateStruct node's type_name during planning.
type Evaluator struct {
	types  map[string]*value.Descriptor
	logger *slog.Logger
}

// NewEvaluator constructs an Evaluator. types may be nil if the checked
// expressions it will plan never construct struct literals. Debug-level
// plan-construction logging is discarded until WithLogger attaches a
// logger; this is separate from the language-level Trace listener
// (spec §4.5/§6.4), which reports evaluated values regardless of
// logger configuration.
func NewEvaluator(types map[string]*value.Descriptor) *Evaluator {
	return &Evaluator{types: types, logger: slog.New(slog.DiscardHandler)}
}

// WithLogger attaches l for debug-level plan-construction diagnostics
// (subexpression shape, slot allocation) and returns e for chaining.
func (e *Evaluator) WithLogger(l *slog.Logger) *Evaluator {
	e.logger = l
	return e
}

// Plan compiles a checked expression into a Program (spec §6.4).
func (e *Evaluator) Plan(checked *ast.Expr, opts execution.Options) *Program {
	e.logger.Debug("planning expression",
		"root_kind", checked.Kind.String(),
		"constant_folding", opts.ConstantFolding,
		"short_circuiting", opts.ShortCircuiting,
	)
	p := planner.Plan(checked, opts, e.types)
	e.logger.Debug("plan complete", "steps", len(p.Steps), "slots", p.SlotCount)
	return &Program{flat: p}
}

// Evaluate runs p against act and returns the resulting value (spec
// §6.4). The arena parameter named in spec §6.4 has no counterpart here:
// this engine never performs protobuf/message-arena allocations (that
// subsystem is out of scope per spec §1), so there is nothing for an
// arena argument to thread through — see DESIGN.md's eval entry.
func (e *Evaluator) Evaluate(p *Program, act activation.Activation, opts execution.Options) value.Value {
	f := execution.NewFrame(act, opts, p.flat.SlotCount)
	v, _ := p.flat.Run(f)
	return v
}
