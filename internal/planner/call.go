package planner

import (
	"github.com/aledsdavies/celrt/ast"
	"github.com/aledsdavies/celrt/internal/program"
	"github.com/aledsdavies/celrt/internal/steps"
)

// index, and, or, ternary are CEL's operator names as they appear in a
// checked Call node's Function field — spec §3.2 models `a && b`,
// `a[b]`, and `a ? b : c` as ordinary Call nodes rather than dedicated
// AST kinds, matching cel-go/cel-cpp's checked-expression convention.
const (
	fnIndex    = "_[_]"
	fnAnd      = "_&&_"
	fnOr       = "_||_"
	fnTernary  = "_?_:_"
	fnNotEqual = "_!=_"
	fnEqual    = "_==_"
)

func (c *compiler) compileCall(e *ast.Expr, scope []binding) []program.Step {
	switch e.Call.Function {
	case fnIndex:
		return c.compileIndex(e, scope)
	case fnAnd:
		return c.compileAnd(e, scope)
	case fnOr:
		return c.compileOr(e, scope)
	case fnTernary:
		return c.compileTernary(e, scope)
	default:
		return c.compilePlainCall(e, scope)
	}
}

func (c *compiler) compileIndex(e *ast.Expr, scope []binding) []program.Step {
	operand, key := e.Call.Args[0], e.Call.Args[1]
	out := c.compile(operand, scope)
	out = append(out, c.compile(key, scope)...)
	out = append(out, &steps.IndexStep{StepID: e.ID})
	return out
}

func (c *compiler) compilePlainCall(e *ast.Expr, scope []binding) []program.Step {
	var out []program.Step
	hasTarget := e.Call.Target != nil
	if hasTarget {
		out = append(out, c.compile(e.Call.Target, scope)...)
	}
	for _, arg := range e.Call.Args {
		out = append(out, c.compile(arg, scope)...)
	}
	out = append(out, &steps.CallStep{
		StepID:    e.ID,
		Function:  e.Call.Function,
		NumArgs:   len(e.Call.Args),
		HasTarget: hasTarget,
	})
	return out
}

// compileAnd lays out `a && b` as:
//
//	<a-steps>                          (A steps)
//	JumpIfBoolStep{false, offset=B+2}   short-circuits past b and the combine
//	<b-steps>                          (B steps)
//	AndCombineStep
//
// Landing past the combine step on short circuit leaves a's own value
// (already `false`) as the sole result, matching spec §4.7's "if either
// is false, result is false".
func (c *compiler) compileAnd(e *ast.Expr, scope []binding) []program.Step {
	lhs := c.compile(e.Call.Args[0], scope)
	rhs := c.compile(e.Call.Args[1], scope)

	out := make([]program.Step, 0, len(lhs)+1+len(rhs)+1)
	out = append(out, lhs...)
	out = append(out, &steps.JumpIfBoolStep{StepID: e.ID, IfValue: false, Offset: len(rhs) + 2})
	out = append(out, rhs...)
	out = append(out, &steps.AndCombineStep{StepID: e.ID})
	return out
}

func (c *compiler) compileOr(e *ast.Expr, scope []binding) []program.Step {
	lhs := c.compile(e.Call.Args[0], scope)
	rhs := c.compile(e.Call.Args[1], scope)

	out := make([]program.Step, 0, len(lhs)+1+len(rhs)+1)
	out = append(out, lhs...)
	out = append(out, &steps.JumpIfBoolStep{StepID: e.ID, IfValue: true, Offset: len(rhs) + 2})
	out = append(out, rhs...)
	out = append(out, &steps.OrCombineStep{StepID: e.ID})
	return out
}

// compileTernary lays out `c ? t : e` as:
//
//	<cond-steps>
//	ConditionalDispatchStep{ThenSize, ElseSize}
//	<then-steps>                        (ThenSize steps)
//	JumpStep{offset=ElseSize+1}          unconditionally skip else
//	<else-steps>                        (ElseSize steps)
func (c *compiler) compileTernary(e *ast.Expr, scope []binding) []program.Step {
	cond := c.compile(e.Call.Args[0], scope)
	then := c.compile(e.Call.Args[1], scope)
	els := c.compile(e.Call.Args[2], scope)

	out := make([]program.Step, 0, len(cond)+1+len(then)+1+len(els))
	out = append(out, cond...)
	out = append(out, &steps.ConditionalDispatchStep{StepID: e.ID, ThenSize: len(then), ElseSize: len(els)})
	out = append(out, then...)
	out = append(out, &steps.JumpStep{StepID: e.ID, Offset: len(els) + 1})
	out = append(out, els...)
	return out
}
