package builtins

import (
	"regexp"
	"strings"
	"sync"

	"github.com/aledsdavies/celrt/functions"
	"github.com/aledsdavies/celrt/value"
)

const (
	fnContains   = "contains"
	fnStartsWith = "startsWith"
	fnEndsWith   = "endsWith"
	fnMatches    = "matches"
)

// registerString installs the four string member functions, called as
// `x.contains(y)` etc. — a CallStep with HasTarget true, so each
// overload's first argument is the receiver. regexp's RE2 engine is
// used directly from the standard library rather than a third-party
// regex package: CEL's matches() is specified against RE2 syntax, and
// Go's regexp package already *is* an RE2 implementation, so reaching
// for an external engine here would trade the right semantics for the
// wrong ones.
func registerString(r *functions.Registry) {
	r.Register(&functions.Overload{
		ID: "contains_string", Function: fnContains, Arity: functions.Binary,
		ArgKinds:   []value.Kind{value.KindString, value.KindString},
		BinaryImpl: func(recv, arg value.Value) value.Value { return value.Bool(strings.Contains(recv.AsString(), arg.AsString())) },
	})
	r.Register(&functions.Overload{
		ID: "starts_with_string", Function: fnStartsWith, Arity: functions.Binary,
		ArgKinds:   []value.Kind{value.KindString, value.KindString},
		BinaryImpl: func(recv, arg value.Value) value.Value { return value.Bool(strings.HasPrefix(recv.AsString(), arg.AsString())) },
	})
	r.Register(&functions.Overload{
		ID: "ends_with_string", Function: fnEndsWith, Arity: functions.Binary,
		ArgKinds:   []value.Kind{value.KindString, value.KindString},
		BinaryImpl: func(recv, arg value.Value) value.Value { return value.Bool(strings.HasSuffix(recv.AsString(), arg.AsString())) },
	})
	r.Register(&functions.Overload{
		ID: "matches_string", Function: fnMatches, Arity: functions.Binary,
		ArgKinds: []value.Kind{value.KindString, value.KindString},
		BinaryImpl: func(recv, pattern value.Value) value.Value {
			re, err := compileCached(pattern.AsString())
			if err != nil {
				return value.NewError(0, value.ErrRegexCompile, "invalid regex %q: %v", pattern.AsString(), err)
			}
			return value.Bool(re.MatchString(recv.AsString()))
		},
	})
}

var (
	regexCacheMu sync.Mutex
	regexCache   = map[string]*regexp.Regexp{}
)

// compileCached memoizes regexp.Compile per pattern string: matches() is
// typically evaluated once per element of a comprehension range over the
// same literal pattern, so recompiling every call would be wasteful.
func compileCached(pattern string) (*regexp.Regexp, error) {
	regexCacheMu.Lock()
	defer regexCacheMu.Unlock()
	if re, ok := regexCache[pattern]; ok {
		return re, nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	regexCache[pattern] = re
	return re, nil
}
