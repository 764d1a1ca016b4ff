package program

import (
	"testing"

	"github.com/aledsdavies/celrt/activation"
	"github.com/aledsdavies/celrt/ast"
	"github.com/aledsdavies/celrt/functions"
	"github.com/aledsdavies/celrt/internal/attribute"
	"github.com/aledsdavies/celrt/internal/execution"
	"github.com/aledsdavies/celrt/value"
)

type pushConstStep struct {
	id ast.ID
	v  value.Value
}

func (s *pushConstStep) ID() ast.ID { return s.id }
func (s *pushConstStep) Evaluate(f *execution.Frame) {
	f.PushValue(s.v)
}

type addStep struct{ id ast.ID }

func (s *addStep) ID() ast.ID { return s.id }
func (s *addStep) Evaluate(f *execution.Frame) {
	vals, _ := f.PopN(2)
	f.PushValue(value.Int(vals[0].AsInt() + vals[1].AsInt()))
}

func newFrame() *execution.Frame {
	return execution.NewFrame(activation.NewMap(nil, functions.NewRegistry()), execution.DefaultOptions(), 0)
}

func TestFlatProgramRun(t *testing.T) {
	p := &FlatProgram{Steps: []Step{
		&pushConstStep{id: 1, v: value.Int(2)},
		&pushConstStep{id: 2, v: value.Int(3)},
		&addStep{id: 3},
	}}
	v, _ := p.Run(newFrame())
	if v.AsInt() != 5 {
		t.Errorf("Run() = %v, want 5", v)
	}
}

type constDirectStep struct {
	id ast.ID
	v  value.Value
}

func (s *constDirectStep) ID() ast.ID { return s.id }
func (s *constDirectStep) Evaluate(f *execution.Frame) (value.Value, attribute.Trail) {
	return s.v, attribute.Empty
}

func TestWrappedDirectStepPushesResult(t *testing.T) {
	w := &WrappedDirectStep{StepID: 1, Inner: &constDirectStep{id: 1, v: value.Int(42)}}
	f := newFrame()
	w.Evaluate(f)
	v, _ := f.Pop()
	if v.AsInt() != 42 {
		t.Errorf("WrappedDirectStep pushed %v, want 42", v)
	}
}
