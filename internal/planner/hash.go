package planner

import (
	"crypto/sha256"
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/aledsdavies/celrt/internal/program"
	"github.com/aledsdavies/celrt/internal/steps"
)

// canonicalStep is the serializable shadow of one program.Step, used
// only for hashing (spec §8's plan-idempotence testable property): "two plans compiled from the same checked AST with the
// same options produce the same hash." StepID is deliberately omitted
// — it is the AST id the step originated from, not part of the step's
// runtime behavior, and including it would make the hash sensitive to
// an upstream id-assignment detail that carries no semantic weight.
// This mirrors the teacher's CanonicalPlan using placeholders instead
// of DisplayIDs to avoid a circular dependency between id generation
// and the hash that, in the teacher's case, feeds id generation.
type canonicalStep struct {
	Kind string

	// ConstStep
	ConstHash []byte `cbor:",omitempty"`

	// IdentStep
	Name  string `cbor:",omitempty"`
	Scope int    `cbor:",omitempty"`
	Slot  int    `cbor:",omitempty"`

	// SelectStep
	Field    string `cbor:",omitempty"`
	TestOnly bool   `cbor:",omitempty"`

	// CallStep
	Function  string `cbor:",omitempty"`
	NumArgs   int    `cbor:",omitempty"`
	HasTarget bool   `cbor:",omitempty"`

	// CreateListStep / CreateMapStep / CreateStructStep
	NumElems      int            `cbor:",omitempty"`
	NumEntries    int            `cbor:",omitempty"`
	TypeName      string         `cbor:",omitempty"`
	FieldNames    []string       `cbor:",omitempty"`
	OptionalFlags map[int]bool   `cbor:",omitempty"`

	// JumpStep / JumpIfBoolStep
	Offset  int  `cbor:",omitempty"`
	IfValue bool `cbor:",omitempty"`

	// ConditionalDispatchStep
	ThenSize int `cbor:",omitempty"`
	ElseSize int `cbor:",omitempty"`

	// Comprehension steps
	RangeSlot   int `cbor:",omitempty"`
	IterSlot    int `cbor:",omitempty"`
	AccuSlot    int `cbor:",omitempty"`
	ExitOffset  int `cbor:",omitempty"`
	BreakOffset int `cbor:",omitempty"`
	ExhaustedOffset int `cbor:",omitempty"`
	BackOffset  int `cbor:",omitempty"`
}

// canonicalize converts one flattened program into its hashable shadow
// form. An unrecognized step type is a programming error (every step
// kind this engine's planner can emit is listed below), not a runtime
// condition to report gracefully — it panics via fmt, matching this
// package's style of treating "the planner emitted something its own
// hasher doesn't know about" as a bug to fix, not data to tolerate.
func canonicalize(p *program.FlatProgram) []canonicalStep {
	out := make([]canonicalStep, len(p.Steps))
	for i, st := range p.Steps {
		out[i] = canonicalizeStep(st)
	}
	return out
}

func canonicalizeStep(st program.Step) canonicalStep {
	switch s := st.(type) {
	case *steps.ConstStep:
		h := s.Value.ContentHash()
		return canonicalStep{Kind: "const", ConstHash: h[:]}
	case *steps.IdentStep:
		return canonicalStep{Kind: "ident", Name: s.Name, Scope: int(s.Scope), Slot: s.Slot}
	case *steps.SelectStep:
		return canonicalStep{Kind: "select", Field: s.Field, TestOnly: s.TestOnly}
	case *steps.IndexStep:
		return canonicalStep{Kind: "index"}
	case *steps.CallStep:
		return canonicalStep{Kind: "call", Function: s.Function, NumArgs: s.NumArgs, HasTarget: s.HasTarget}
	case *steps.CreateListStep:
		return canonicalStep{Kind: "create_list", NumElems: s.NumElems, OptionalFlags: s.OptionalFlags}
	case *steps.CreateMapStep:
		return canonicalStep{Kind: "create_map", NumEntries: s.NumEntries, OptionalFlags: s.OptionalFlags}
	case *steps.CreateStructStep:
		typeName := ""
		if s.Desc != nil {
			typeName = s.Desc.TypeName
		}
		return canonicalStep{Kind: "create_struct", TypeName: typeName, FieldNames: s.FieldNames, OptionalFlags: s.OptionalFlags}
	case *steps.JumpStep:
		return canonicalStep{Kind: "jump", Offset: s.Offset}
	case *steps.JumpIfBoolStep:
		return canonicalStep{Kind: "jump_if_bool", IfValue: s.IfValue, Offset: s.Offset}
	case *steps.AndCombineStep:
		return canonicalStep{Kind: "and_combine"}
	case *steps.OrCombineStep:
		return canonicalStep{Kind: "or_combine"}
	case *steps.ConditionalDispatchStep:
		return canonicalStep{Kind: "conditional_dispatch", ThenSize: s.ThenSize, ElseSize: s.ElseSize}
	case *steps.ComprehensionEnterStep:
		return canonicalStep{Kind: "comprehension_enter", RangeSlot: s.RangeSlot, IterSlot: s.IterSlot, AccuSlot: s.AccuSlot, ExitOffset: s.ExitOffset}
	case *steps.ComprehensionHasNextStep:
		return canonicalStep{Kind: "comprehension_has_next", RangeSlot: s.RangeSlot, BreakOffset: s.BreakOffset}
	case *steps.ComprehensionBreakIfFalseStep:
		return canonicalStep{Kind: "comprehension_break_if_false", BreakOffset: s.BreakOffset}
	case *steps.ComprehensionAdvanceStep:
		return canonicalStep{Kind: "comprehension_advance", RangeSlot: s.RangeSlot, ExhaustedOffset: s.ExhaustedOffset}
	case *steps.ComprehensionUpdateAccuStep:
		return canonicalStep{Kind: "comprehension_update_accu", BackOffset: s.BackOffset}
	case *steps.ComprehensionExitStep:
		return canonicalStep{Kind: "comprehension_exit"}
	default:
		panic(fmt.Sprintf("planner: canonicalize: unrecognized step type %T", st))
	}
}

// Hash computes a deterministic digest of p's structure and slot
// count, stable across repeated Plan calls over the same checked AST
// and options (spec §8). It deliberately ignores StepID (see
// canonicalStep). A ConstStep contributes only its value's ContentHash,
// which hashes CEL-equal int, uint and double values alike, so two plans
// whose constants differ only in numeric kind hash equal. SlotCount is
// folded in directly since two programs
// with identical steps but different comprehension-slot allocations
// are not interchangeable.
func Hash(p *program.FlatProgram) ([32]byte, error) {
	steps := canonicalize(p)
	encMode, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		return [32]byte{}, fmt.Errorf("planner: cbor encoder: %w", err)
	}

	payload := struct {
		SlotCount int
		Steps     []canonicalStep
	}{SlotCount: p.SlotCount, Steps: steps}

	data, err := encMode.Marshal(payload)
	if err != nil {
		return [32]byte{}, fmt.Errorf("planner: cbor marshal: %w", err)
	}
	return sha256.Sum256(data), nil
}
