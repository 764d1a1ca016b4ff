package activation

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"golang.org/x/mod/semver"

	"github.com/aledsdavies/celrt/value"
)

// Schema describes the shape an activation's variable bindings must
// satisfy before evaluation: a JSON Schema over the object `{name:
// jsonValue, ...}` built from the activation's variable map, plus an
// optional `$celDialect` extension field naming the minimum engine
// dialect version the schema was authored against.
type Schema struct {
	raw      json.RawMessage
	compiled *jsonschema.Schema
	dialect  string // e.g. "v1.2.0"; empty if the schema didn't declare one
}

// MinDialect is the dialect version this engine implements. A schema
// whose $celDialect exceeds it is rejected at compile time rather than
// failing confusingly mid-evaluation.
const MinDialect = "v1.0.0"

type schemaEnvelope struct {
	CelDialect string `json:"$celDialect"`
}

// CompileSchema parses and compiles a JSON Schema document describing
// the expected activation shape (spec §6.3's activation is otherwise
// untyped; this is an optional hardening layer, not a spec requirement
// — see SPEC_FULL.md §B).
func CompileSchema(doc []byte) (*Schema, error) {
	var env schemaEnvelope
	if err := json.Unmarshal(doc, &env); err != nil {
		return nil, fmt.Errorf("activation schema: invalid JSON: %w", err)
	}
	dialect := env.CelDialect
	if dialect != "" {
		if !semver.IsValid(dialect) {
			return nil, fmt.Errorf("activation schema: $celDialect %q is not valid semver", dialect)
		}
		if semver.Compare(dialect, MinDialect) > 0 {
			return nil, fmt.Errorf("activation schema: requires dialect %s, engine implements %s", dialect, MinDialect)
		}
	}

	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	const resourceName = "activation.json"
	if err := compiler.AddResource(resourceName, strings.NewReader(string(doc))); err != nil {
		return nil, fmt.Errorf("activation schema: %w", err)
	}
	compiled, err := compiler.Compile(resourceName)
	if err != nil {
		return nil, fmt.Errorf("activation schema: compile: %w", err)
	}
	return &Schema{raw: doc, compiled: compiled, dialect: dialect}, nil
}

// Validate checks the activation's bound variables against the schema.
// Bindings are selected by value kind alone (unknown patterns are not
// consulted): null, bool, int, uint, double, string, list, and
// string-keyed map values participate; every other kind, and any list
// or map holding one, is skipped since it has no canonical JSON shape.
func (s *Schema) Validate(m *Map) error {
	instance := make(map[string]interface{}, len(m.vars))
	for name, v := range m.vars {
		jv, ok := toJSON(v)
		if !ok {
			continue
		}
		instance[name] = jv
	}
	if err := s.compiled.Validate(instance); err != nil {
		return fmt.Errorf("activation does not satisfy schema: %w", err)
	}
	return nil
}

func toJSON(v value.Value) (interface{}, bool) {
	switch v.Kind() {
	case value.KindNull:
		return nil, true
	case value.KindBool:
		return v.AsBool(), true
	case value.KindInt:
		return float64(v.AsInt()), true
	case value.KindUint:
		return float64(v.AsUint()), true
	case value.KindDouble:
		return v.AsDouble(), true
	case value.KindString:
		return v.AsString(), true
	case value.KindList:
		out := make([]interface{}, 0, v.ListLen())
		for _, e := range v.ListElements() {
			jv, ok := toJSON(e)
			if !ok {
				return nil, false
			}
			out = append(out, jv)
		}
		return out, true
	case value.KindMap:
		out := make(map[string]interface{}, v.MapLen())
		for _, e := range v.MapEntries() {
			if e.Key.Kind() != value.KindString {
				return nil, false
			}
			jv, ok := toJSON(e.Value)
			if !ok {
				return nil, false
			}
			out[e.Key.AsString()] = jv
		}
		return out, true
	default:
		return nil, false
	}
}
