package planner

import (
	"github.com/aledsdavies/celrt/ast"
	"github.com/aledsdavies/celrt/internal/program"
	"github.com/aledsdavies/celrt/internal/steps"
)

func (c *compiler) compileCreateList(e *ast.Expr, scope []binding) []program.Step {
	var out []program.Step
	for _, elem := range e.CreateList.Elems {
		out = append(out, c.compile(elem, scope)...)
	}
	out = append(out, &steps.CreateListStep{
		StepID:        e.ID,
		NumElems:      len(e.CreateList.Elems),
		OptionalFlags: e.CreateList.OptionalIndices,
	})
	return out
}

func (c *compiler) compileCreateMap(e *ast.Expr, scope []binding) []program.Step {
	var out []program.Step
	optFlags := make(map[int]bool, len(e.CreateMap.Entries))
	for i, entry := range e.CreateMap.Entries {
		out = append(out, c.compile(entry.Key, scope)...)
		out = append(out, c.compile(entry.Value, scope)...)
		if entry.Optional {
			optFlags[i] = true
		}
	}
	out = append(out, &steps.CreateMapStep{
		StepID:        e.ID,
		NumEntries:    len(e.CreateMap.Entries),
		OptionalFlags: optFlags,
	})
	return out
}

func (c *compiler) compileCreateStruct(e *ast.Expr, scope []binding) []program.Step {
	var out []program.Step
	names := make([]string, len(e.CreateStruct.Entries))
	optFlags := make(map[int]bool, len(e.CreateStruct.Entries))
	for i, entry := range e.CreateStruct.Entries {
		names[i] = entry.Field
		out = append(out, c.compile(entry.Value, scope)...)
		if entry.Optional {
			optFlags[i] = true
		}
	}
	out = append(out, &steps.CreateStructStep{
		StepID:        e.ID,
		Desc:          c.descriptorFor(e.CreateStruct.TypeName),
		FieldNames:    names,
		OptionalFlags: optFlags,
	})
	return out
}
