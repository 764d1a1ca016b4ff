// Package functions implements the function registry and overload
// dispatch described in spec §4.2: function name to overload-set
// lookup, Int/Uint promotion, and a stable first-registered-wins
// tie-break.
package functions

import (
	"sort"
	"sync"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/aledsdavies/celrt/value"
)

// Arity identifies how many operands an Overload accepts.
type Arity int

const (
	Zero Arity = iota
	Unary
	Binary
	VarArgs
)

// Overload is one registered implementation of a function name. ArgKinds
// constrains which argument kinds this overload accepts; a nil ArgKinds
// (for Unary/Binary) matches any kind, acting as the function's dyn
// fallback. Exactly one of the Impl funcs is set, matching Arity.
type Overload struct {
	ID             string
	Function       string
	Arity          Arity
	ArgKinds       []value.Kind
	AllowPromotion bool // spec §4.2: "only where the overload explicitly declares it"

	ZeroImpl    func() value.Value
	UnaryImpl   func(value.Value) value.Value
	BinaryImpl  func(value.Value, value.Value) value.Value
	VarArgsImpl func([]value.Value) value.Value
}

func (o *Overload) matchesKinds(args []value.Value) bool {
	if o.ArgKinds == nil {
		return true
	}
	if len(o.ArgKinds) != len(args) {
		return false
	}
	for i, k := range o.ArgKinds {
		if args[i].Kind() != k {
			return false
		}
	}
	return true
}

// Registry holds the set of overloads available to the evaluator,
// keyed by function name. Overloads registered earlier win ties during
// dispatch (spec §4.2: "stable first-registered-wins tie-break").
type Registry struct {
	mu        sync.RWMutex
	overloads map[string][]*Overload
	names     []string // registration order of distinct function names, for suggestions
}

// NewRegistry constructs an empty Registry.
func NewRegistry() *Registry {
	return &Registry{overloads: make(map[string][]*Overload)}
}

// Register adds an overload under its Function name.
func (r *Registry) Register(o *Overload) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.overloads[o.Function]; !ok {
		r.names = append(r.names, o.Function)
	}
	r.overloads[o.Function] = append(r.overloads[o.Function], o)
}

// FindOverload returns the overload with the given id, if registered.
func (r *Registry) FindOverload(id string) (*Overload, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, list := range r.overloads {
		for _, o := range list {
			if o.ID == id {
				return o, true
			}
		}
	}
	return nil, false
}

// HasFunction reports whether any overload is registered under name.
func (r *Registry) HasFunction(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.overloads[name]
	return ok
}

// Dispatch evaluates the call per spec §4.2 and §4.7: arguments are
// scanned left to right for an Error (returned immediately) or, absent
// any Error, an Unknown (whose attribute sets are unioned and
// returned); otherwise the best-matching overload is invoked. When no
// registered overload's ArgKinds match the supplied argument kinds
// directly, Dispatch retries with every combination of Int<->Uint
// promotion substituted for Int/Uint-kinded arguments, but only against
// overloads that set AllowPromotion — an overload that doesn't declare
// it never acquires cross-kind dispatch it didn't ask for (spec §4.2:
// "promoting Uint<->Int only where the overload explicitly declares
// it"). The first AllowPromotion overload (in registration order) that
// matches a promoted tuple wins.
func (r *Registry) Dispatch(name string, args []value.Value) value.Value {
	if v, ok := shortCircuitErrorOrUnknown(args); ok {
		return v
	}

	r.mu.RLock()
	overloads := r.overloads[name]
	names := r.names
	r.mu.RUnlock()

	if overloads == nil {
		return r.noMatchError(name, names)
	}

	arity := arityOf(len(args))
	for _, o := range overloads {
		if o.Arity != arity {
			continue
		}
		if o.matchesKinds(args) {
			return invoke(o, args)
		}
	}

	for _, promoted := range promotions(args) {
		for _, o := range overloads {
			if o.Arity != arity || !o.AllowPromotion {
				continue
			}
			if o.matchesKinds(promoted) {
				return invoke(o, promoted)
			}
		}
	}

	return value.NewError(0, value.ErrNoMatchingOverload, "no matching overload for %s(%s)", name, kindList(args))
}

func shortCircuitErrorOrUnknown(args []value.Value) (value.Value, bool) {
	for _, a := range args {
		if a.IsError() {
			return a, true
		}
	}
	var unk value.Value
	found := false
	for _, a := range args {
		if a.IsUnknown() {
			if !found {
				unk = a
				found = true
			} else {
				unk = value.UnionUnknown(unk, a)
			}
		}
	}
	return unk, found
}

func arityOf(n int) Arity {
	switch n {
	case 0:
		return Zero
	case 1:
		return Unary
	case 2:
		return Binary
	default:
		return VarArgs
	}
}

func invoke(o *Overload, args []value.Value) value.Value {
	switch o.Arity {
	case Zero:
		return o.ZeroImpl()
	case Unary:
		return o.UnaryImpl(args[0])
	case Binary:
		return o.BinaryImpl(args[0], args[1])
	default:
		return o.VarArgsImpl(args)
	}
}

// promotions enumerates every argument tuple reachable by converting a
// subset of the Int/Uint-kinded args to the other kind, skipping the
// identity (already-tried) combination.
func promotions(args []value.Value) [][]value.Value {
	var flexible []int
	for i, a := range args {
		if a.Kind() == value.KindInt || a.Kind() == value.KindUint {
			flexible = append(flexible, i)
		}
	}
	if len(flexible) == 0 {
		return nil
	}
	var out [][]value.Value
	combos := 1 << len(flexible)
	for mask := 1; mask < combos; mask++ {
		candidate := make([]value.Value, len(args))
		copy(candidate, args)
		for bit, idx := range flexible {
			if mask&(1<<bit) == 0 {
				continue
			}
			switch candidate[idx].Kind() {
			case value.KindInt:
				candidate[idx] = candidate[idx].ConvertTo(value.TypeUint)
			case value.KindUint:
				candidate[idx] = candidate[idx].ConvertTo(value.TypeInt)
			}
		}
		if anyErr(candidate) {
			continue
		}
		out = append(out, candidate)
	}
	return out
}

func anyErr(vs []value.Value) bool {
	for _, v := range vs {
		if v.IsError() {
			return true
		}
	}
	return false
}

func kindList(args []value.Value) string {
	out := ""
	for i, a := range args {
		if i > 0 {
			out += ", "
		}
		out += a.Kind().String()
	}
	return out
}

// noMatchError reports ErrNoMatchingOverload, suggesting the closest
// known function name via fuzzy matching when one diverges only by a
// typo (spec-adjacent diagnostics quality-of-life, not a spec
// requirement). The suggestion is carried only in the returned Error
// value's message.
func (r *Registry) noMatchError(name string, candidates []string) value.Value {
	sorted := append([]string(nil), candidates...)
	sort.Strings(sorted)
	ranks := fuzzy.RankFindFold(name, sorted)
	if len(ranks) > 0 {
		sort.Sort(ranks)
		return value.NewError(0, value.ErrNoMatchingOverload,
			"unknown function %q (did you mean %q?)", name, ranks[0].Target)
	}
	return value.NewError(0, value.ErrNoMatchingOverload, "unknown function %q", name)
}
