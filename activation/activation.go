// Package activation implements the name-resolution side of the
// evaluator's external interface (spec §3.4, §6.3): a mapping from
// variable names to lazily-resolvable inputs, a reference to the
// function registry, and the unknown-pattern / missing-attribute sets
// that let partial evaluation surface Unknown and Missing results
// instead of failing outright.
package activation

import (
	"strings"

	"github.com/aledsdavies/celrt/functions"
	"github.com/aledsdavies/celrt/value"
)

// Resolution classifies the outcome of resolving a name (spec §6.3:
// "Resolve(name) -> Value | Unknown | Missing").
type Resolution int

const (
	Resolved Resolution = iota
	IsUnknown
	IsMissing
)

// Activation is the evaluator's view of its inputs.
type Activation interface {
	// Resolve looks up name, reporting which of the three outcomes
	// applies. For IsUnknown and IsMissing the returned Value is the
	// ready-to-propagate Unknown or Error value.
	Resolve(name string) (value.Value, Resolution)
	// Functions returns the registry consulted for FindOverloads.
	Functions() *functions.Registry
	// MatchUnknownPattern reports whether path (an attribute-trail
	// string such as "request.auth.claims", produced by extending a
	// trail through a chain of Select/Index steps) is covered by one of
	// this activation's configured unknown patterns, and if so returns
	// the matched pattern — the payload a Select/Index step pushes as
	// the resulting Unknown value (spec §4.8(b)).
	MatchUnknownPattern(path string) (string, bool)
}

// Map is a map-backed Activation (spec §6.3's simplest implementation):
// a fixed variable binding, an unknown-attribute-pattern set, and a
// required-but-absent set.
type Map struct {
	vars     map[string]value.Value
	registry *functions.Registry
	unknowns []string // attribute path prefixes treated as unknown
	required map[string]bool
}

// NewMap constructs a Map activation over the given variable bindings
// and function registry.
func NewMap(vars map[string]value.Value, registry *functions.Registry) *Map {
	cp := make(map[string]value.Value, len(vars))
	for k, v := range vars {
		cp[k] = v
	}
	return &Map{vars: cp, registry: registry, required: map[string]bool{}}
}

// WithUnknownPatterns marks the given attribute-path prefixes as
// unknown: resolving a name matching one of these prefixes (or a
// sub-path of one) yields an Unknown value instead of the bound value,
// or instead of ErrMissingAttribute if the name is also unbound.
func (m *Map) WithUnknownPatterns(patterns ...string) *Map {
	m.unknowns = append(m.unknowns, patterns...)
	return m
}

// WithRequired records names as required (spec §6.5:
// "enable_missing_attribute_errors"). The set is bookkeeping only:
// Resolve does not read it, and reports IsMissing with
// ErrMissingAttribute for every unbound name, required or not.
func (m *Map) WithRequired(names ...string) *Map {
	for _, n := range names {
		m.required[n] = true
	}
	return m
}

func (m *Map) Functions() *functions.Registry { return m.registry }

func (m *Map) Resolve(name string) (value.Value, Resolution) {
	if pattern, ok := m.MatchUnknownPattern(name); ok {
		return value.NewUnknown(pattern), IsUnknown
	}
	if v, ok := m.vars[name]; ok {
		return v, Resolved
	}
	return value.NewError(0, value.ErrMissingAttribute, "no such attribute: %s", name), IsMissing
}

// MatchUnknownPattern reports whether path is covered by an unknown
// pattern: an exact match, or path is a dotted/indexed sub-path of a
// registered prefix (`a.b` covers `a.b.c` and `a.b[0]`). Resolve calls
// this with a bare root name; Select/Index steps call it with a fully
// extended attribute-trail string (spec §4.8(b)).
func (m *Map) MatchUnknownPattern(path string) (string, bool) {
	for _, p := range m.unknowns {
		if path == p || strings.HasPrefix(path, p+".") || strings.HasPrefix(path, p+"[") {
			return p, true
		}
	}
	return "", false
}
