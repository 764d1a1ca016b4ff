package fixture

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadExpr reads path as an ExprYAML document; the caller builds the
// ast.Expr from it with ExprYAML.Build.
func LoadExpr(path string) (ExprYAML, error) {
	var e ExprYAML
	data, err := os.ReadFile(path)
	if err != nil {
		return e, fmt.Errorf("fixture: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &e); err != nil {
		return e, fmt.Errorf("fixture: parse %s: %w", path, err)
	}
	return e, nil
}

// LoadActivation reads path as an ActivationYAML document.
func LoadActivation(path string) (ActivationYAML, error) {
	var a ActivationYAML
	data, err := os.ReadFile(path)
	if err != nil {
		return a, fmt.Errorf("fixture: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &a); err != nil {
		return a, fmt.Errorf("fixture: parse %s: %w", path, err)
	}
	return a, nil
}
