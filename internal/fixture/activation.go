package fixture

import (
	"fmt"

	"github.com/aledsdavies/celrt/activation"
	"github.com/aledsdavies/celrt/functions"
	"github.com/aledsdavies/celrt/value"
)

// ActivationYAML is the on-disk shape of an evaluation's inputs: a flat
// set of variable bindings plus the unknown/required attribute sets
// spec §6.3 says an activation carries alongside them.
type ActivationYAML struct {
	Vars     map[string]ValueYAML `yaml:"vars"`
	Unknown  []string             `yaml:"unknown,omitempty"`
	Required []string             `yaml:"required,omitempty"`
}

// Build resolves vars into a value.Value set and wraps it in an
// activation.Map over registry.
func (a ActivationYAML) Build(registry *functions.Registry) (*activation.Map, error) {
	vars := make(map[string]value.Value, len(a.Vars))
	for name, v := range a.Vars {
		built, err := v.Build()
		if err != nil {
			return nil, fmt.Errorf("vars[%s]: %w", name, err)
		}
		vars[name] = built
	}

	m := activation.NewMap(vars, registry)
	if len(a.Unknown) > 0 {
		m = m.WithUnknownPatterns(a.Unknown...)
	}
	if len(a.Required) > 0 {
		m = m.WithRequired(a.Required...)
	}
	return m, nil
}
