package builtins

import (
	"github.com/aledsdavies/celrt/functions"
	"github.com/aledsdavies/celrt/internal/steps"
)

// RegisterAll populates r with the full standard library this engine
// ships: steps.RegisterCoreOverloads' `_==_`/`_!=_` pair (defined in
// internal/steps), plus arithmetic, ordering, logical negation, collection,
// string, conversion, optional, and time-accessor overloads. This is
// the one call eval.NewEvaluator and cmd/celeval make to get a
// fully-populated functions.Registry.
func RegisterAll(r *functions.Registry) {
	steps.RegisterCoreOverloads(r)
	registerArithmetic(r)
	registerComparison(r)
	registerLogical(r)
	registerCollection(r)
	registerString(r)
	registerConversion(r)
	registerOptional(r)
	registerTime(r)
}
