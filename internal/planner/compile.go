// Package planner turns a checked ast.Expr into a program.FlatProgram
// (spec §4.3): a recursive-descent walk that emits program.Step values
// in place, computing jump offsets from the sizes of the step slices it
// has already produced rather than a separate subexpression tree. This
// is a deliberately simplified rendition of the teacher's (and cel-
// cpp's) builder: the teacher's planner (runtime/planner/planner.go)
// assembles an IR tree first and emits bytecode from it in a later
// pass; here, since every node of this engine's checked AST compiles to
// a self-contained, contiguous step run, the two passes collapse into
// one recursive function, with CalculateOffset's role played directly
// by len() on the slices being assembled (see DESIGN.md's planner
// entry for the scope reduction this represents relative to cel-cpp's
// incremental Subexpression/ProgramBuilder machinery).
package planner

import (
	"github.com/aledsdavies/celrt/ast"
	"github.com/aledsdavies/celrt/internal/execution"
	"github.com/aledsdavies/celrt/internal/program"
	"github.com/aledsdavies/celrt/internal/steps"
	"github.com/aledsdavies/celrt/value"
)

// binding records one comprehension-bound name visible while compiling
// its loop-condition, loop-step, and result subexpressions.
type binding struct {
	name string
	kind steps.IdentScope
	slot int
}

type compiler struct {
	nextSlot int
	types    map[string]*value.Descriptor
}

// Plan compiles a checked expression tree into a flat program (spec
// §4.3, §4.5's "Flat mode"). opts is not consulted during compilation
// (e.g. ShortCircuiting's jump steps are always emitted;
// JumpIfBoolStep itself consults Options at evaluation time to decide
// whether to act on them, so the same plan runs correctly whether or
// not short-circuiting is enabled for a given Frame). types resolves a
// CreateStruct node's type_name to the Descriptor its fields are
// validated against; a type_name absent from this map gets a
// Descriptor carrying only that name and no fields.
func Plan(checked *ast.Expr, opts execution.Options, types map[string]*value.Descriptor) *program.FlatProgram {
	c := &compiler{types: types}
	body := c.compile(checked, nil)
	return &program.FlatProgram{Steps: body, SlotCount: c.nextSlot}
}

func (c *compiler) descriptorFor(typeName string) *value.Descriptor {
	if d, ok := c.types[typeName]; ok {
		return d
	}
	return &value.Descriptor{TypeName: typeName}
}

func (c *compiler) allocSlot() int {
	s := c.nextSlot
	c.nextSlot++
	return s
}

func (c *compiler) compile(e *ast.Expr, scope []binding) []program.Step {
	switch e.Kind {
	case ast.KindConst:
		return []program.Step{&steps.ConstStep{StepID: e.ID, Value: e.Const.Value}}

	case ast.KindIdent:
		return c.compileIdent(e, scope)

	case ast.KindSelect:
		return c.compileSelect(e, scope)

	case ast.KindCall:
		return c.compileCall(e, scope)

	case ast.KindCreateList:
		return c.compileCreateList(e, scope)

	case ast.KindCreateMap:
		return c.compileCreateMap(e, scope)

	case ast.KindCreateStruct:
		return c.compileCreateStruct(e, scope)

	case ast.KindComprehension:
		return c.compileComprehension(e, scope)

	default:
		panic("planner: unhandled expression kind " + e.Kind.String())
	}
}

func lookup(scope []binding, name string) (binding, bool) {
	for i := len(scope) - 1; i >= 0; i-- {
		if scope[i].name == name {
			return scope[i], true
		}
	}
	return binding{}, false
}

func (c *compiler) compileIdent(e *ast.Expr, scope []binding) []program.Step {
	name := e.Ident.Name
	if b, ok := lookup(scope, name); ok {
		return []program.Step{&steps.IdentStep{StepID: e.ID, Name: name, Scope: b.kind, Slot: b.slot}}
	}
	return []program.Step{&steps.IdentStep{StepID: e.ID, Name: name, Scope: steps.ScopeActivation}}
}

func (c *compiler) compileSelect(e *ast.Expr, scope []binding) []program.Step {
	out := c.compile(e.Select.Operand, scope)
	out = append(out, &steps.SelectStep{StepID: e.ID, Field: e.Select.Field, TestOnly: e.Select.TestOnly})
	return out
}
