// Package fixture loads the human-editable YAML forms cmd/celeval
// reads from disk — a checked-expression tree and an activation's
// variable bindings — into this engine's native ast.Expr and
// value.Value trees. Real hosts hand the evaluator an already-checked
// AST (spec §6.6: "consumes a checked-AST ... form"); since no parser
// or type checker ships with this engine (spec §6.1/§6.2 are consumed
// interfaces only), the CLI's input format stands in for that checked
// form directly rather than accepting CEL surface syntax.
package fixture

import (
	"fmt"

	"github.com/aledsdavies/celrt/value"
)

// ValueYAML is the YAML/JSON shape of one value.Value, with exactly one
// field populated per variant — the same "tag selects payload" shape
// ast.Expr and value.Value themselves use, so a fixture author's mental
// model carries straight over from the Go types.
type ValueYAML struct {
	Null   bool        `yaml:"null,omitempty"`
	Bool   *bool       `yaml:"bool,omitempty"`
	Int    *int64      `yaml:"int,omitempty"`
	Uint   *uint64     `yaml:"uint,omitempty"`
	Double *float64    `yaml:"double,omitempty"`
	String *string     `yaml:"string,omitempty"`
	Bytes  []byte      `yaml:"bytes,omitempty"`
	List   []ValueYAML `yaml:"list,omitempty"`
	Map    []MapEntry  `yaml:"map,omitempty"`
}

// MapEntry is one key/value pair of a ValueYAML map literal.
type MapEntry struct {
	Key   ValueYAML `yaml:"key"`
	Value ValueYAML `yaml:"value"`
}

// Build converts v into a value.Value, or an error if v names no
// variant (an empty ValueYAML) or names a kind Build does not know how
// to construct (a map entry whose key is itself a list or map, say).
func (v ValueYAML) Build() (value.Value, error) {
	switch {
	case v.Bool != nil:
		return value.Bool(*v.Bool), nil
	case v.Int != nil:
		return value.Int(*v.Int), nil
	case v.Uint != nil:
		return value.Uint(*v.Uint), nil
	case v.Double != nil:
		return value.Double(*v.Double), nil
	case v.String != nil:
		return value.String(*v.String), nil
	case v.Bytes != nil:
		return value.Bytes(v.Bytes), nil
	case v.List != nil:
		elems := make([]value.Value, len(v.List))
		for i, e := range v.List {
			ev, err := e.Build()
			if err != nil {
				return value.Value{}, fmt.Errorf("list[%d]: %w", i, err)
			}
			elems[i] = ev
		}
		return value.List(elems), nil
	case v.Map != nil:
		entries := make([]value.MapEntry, len(v.Map))
		for i, e := range v.Map {
			k, err := e.Key.Build()
			if err != nil {
				return value.Value{}, fmt.Errorf("map[%d].key: %w", i, err)
			}
			val, err := e.Value.Build()
			if err != nil {
				return value.Value{}, fmt.Errorf("map[%d].value: %w", i, err)
			}
			entries[i] = value.MapEntry{Key: k, Value: val}
		}
		m := value.Map(entries)
		if m.Is(value.ErrBadKeyType) {
			return value.Value{}, fmt.Errorf("map: %s", m.AsError().Message)
		}
		return m, nil
	case v.Null:
		return value.Null, nil
	default:
		return value.Value{}, fmt.Errorf("empty value fixture names no variant")
	}
}
