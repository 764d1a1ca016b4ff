package fixture

import (
	"fmt"

	"github.com/aledsdavies/celrt/ast"
)

// ExprYAML is the YAML/JSON shape of one ast.Expr node. Node ids are
// not part of the fixture format — Build assigns them itself, in
// depth-first traversal order, so a fixture author never has to keep
// ids unique and consistent by hand.
type ExprYAML struct {
	Const         *ValueYAML          `yaml:"const,omitempty"`
	Ident         *string             `yaml:"ident,omitempty"`
	Select        *SelectYAML         `yaml:"select,omitempty"`
	Call          *CallYAML           `yaml:"call,omitempty"`
	List          []ExprYAML          `yaml:"list,omitempty"`
	Map           []MapEntryExprYAML  `yaml:"map,omitempty"`
	Struct        *StructYAML         `yaml:"struct,omitempty"`
	Comprehension *ComprehensionYAML  `yaml:"comprehension,omitempty"`
}

type SelectYAML struct {
	Operand  ExprYAML `yaml:"operand"`
	Field    string   `yaml:"field"`
	TestOnly bool     `yaml:"testOnly,omitempty"`
}

type CallYAML struct {
	Target   *ExprYAML  `yaml:"target,omitempty"`
	Function string     `yaml:"function"`
	Args     []ExprYAML `yaml:"args,omitempty"`
}

type MapEntryExprYAML struct {
	Key      ExprYAML `yaml:"key"`
	Value    ExprYAML `yaml:"value"`
	Optional bool     `yaml:"optional,omitempty"`
}

type StructYAML struct {
	TypeName string            `yaml:"typeName"`
	Fields   []StructFieldYAML `yaml:"fields"`
}

type StructFieldYAML struct {
	Field    string   `yaml:"field"`
	Value    ExprYAML `yaml:"value"`
	Optional bool     `yaml:"optional,omitempty"`
}

type ComprehensionYAML struct {
	IterVar  string   `yaml:"iterVar"`
	AccuVar  string   `yaml:"accuVar"`
	Range    ExprYAML `yaml:"range"`
	AccuInit ExprYAML `yaml:"accuInit"`
	LoopCond ExprYAML `yaml:"loopCond"`
	LoopStep ExprYAML `yaml:"loopStep"`
	Result   ExprYAML `yaml:"result"`
}

// idSource hands out sequential, per-tree-unique ast.ID values as Build
// walks a fixture, mirroring how a real parser assigns ids while
// producing its AST.
type idSource struct{ next ast.ID }

func (s *idSource) take() ast.ID {
	s.next++
	return s.next
}

// Build converts e into a checked ast.Expr tree ready for planner.Plan.
func (e ExprYAML) Build() (*ast.Expr, error) {
	ids := &idSource{}
	return e.build(ids)
}

func (e ExprYAML) build(ids *idSource) (*ast.Expr, error) {
	switch {
	case e.Const != nil:
		v, err := e.Const.Build()
		if err != nil {
			return nil, fmt.Errorf("const: %w", err)
		}
		return ast.Const(ids.take(), v), nil

	case e.Ident != nil:
		return ast.Ident(ids.take(), *e.Ident), nil

	case e.Select != nil:
		operand, err := e.Select.Operand.build(ids)
		if err != nil {
			return nil, fmt.Errorf("select.operand: %w", err)
		}
		return ast.Select(ids.take(), operand, e.Select.Field, e.Select.TestOnly), nil

	case e.Call != nil:
		var target *ast.Expr
		if e.Call.Target != nil {
			t, err := e.Call.Target.build(ids)
			if err != nil {
				return nil, fmt.Errorf("call.target: %w", err)
			}
			target = t
		}
		args := make([]*ast.Expr, len(e.Call.Args))
		for i, a := range e.Call.Args {
			ae, err := a.build(ids)
			if err != nil {
				return nil, fmt.Errorf("call.args[%d]: %w", i, err)
			}
			args[i] = ae
		}
		return ast.Call(ids.take(), target, e.Call.Function, args), nil

	case e.List != nil:
		elems := make([]*ast.Expr, len(e.List))
		for i, el := range e.List {
			ee, err := el.build(ids)
			if err != nil {
				return nil, fmt.Errorf("list[%d]: %w", i, err)
			}
			elems[i] = ee
		}
		return ast.CreateList(ids.take(), elems, nil), nil

	case e.Map != nil:
		entries := make([]ast.MapEntryExpr, len(e.Map))
		for i, me := range e.Map {
			k, err := me.Key.build(ids)
			if err != nil {
				return nil, fmt.Errorf("map[%d].key: %w", i, err)
			}
			v, err := me.Value.build(ids)
			if err != nil {
				return nil, fmt.Errorf("map[%d].value: %w", i, err)
			}
			entries[i] = ast.MapEntryExpr{Key: k, Value: v, Optional: me.Optional}
		}
		return ast.CreateMap(ids.take(), entries), nil

	case e.Struct != nil:
		entries := make([]ast.StructEntryExpr, len(e.Struct.Fields))
		for i, f := range e.Struct.Fields {
			v, err := f.Value.build(ids)
			if err != nil {
				return nil, fmt.Errorf("struct.fields[%d]: %w", i, err)
			}
			entries[i] = ast.StructEntryExpr{Field: f.Field, Value: v, Optional: f.Optional}
		}
		return ast.CreateStruct(ids.take(), e.Struct.TypeName, entries), nil

	case e.Comprehension != nil:
		c := e.Comprehension
		rangeExpr, err := c.Range.build(ids)
		if err != nil {
			return nil, fmt.Errorf("comprehension.range: %w", err)
		}
		accuInit, err := c.AccuInit.build(ids)
		if err != nil {
			return nil, fmt.Errorf("comprehension.accuInit: %w", err)
		}
		loopCond, err := c.LoopCond.build(ids)
		if err != nil {
			return nil, fmt.Errorf("comprehension.loopCond: %w", err)
		}
		loopStep, err := c.LoopStep.build(ids)
		if err != nil {
			return nil, fmt.Errorf("comprehension.loopStep: %w", err)
		}
		result, err := c.Result.build(ids)
		if err != nil {
			return nil, fmt.Errorf("comprehension.result: %w", err)
		}
		return ast.Comprehension(ids.take(), c.IterVar, c.AccuVar, rangeExpr, accuInit, loopCond, loopStep, result), nil

	default:
		return nil, fmt.Errorf("empty expression fixture names no variant")
	}
}
