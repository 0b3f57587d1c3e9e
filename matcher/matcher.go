// Package matcher provides key predicates for the store's linear-scan
// lookups (GetByMatcher, GetAllByMatcher, KeysByMatcher).
//
// A matcher sees only the key, never the entry. Every matcher here is
// stateless and deterministic; user-defined matchers must be too, because
// the store evaluates them once per candidate key in the middle of a scan.
package matcher

import (
	"cmp"
	"strings"
)

// Matcher decides whether a key is selected by a scan.
type Matcher[K any] interface {
	Matches(key K) bool
}

// Func adapts an arbitrary predicate to Matcher.
type Func[K any] func(key K) bool

func (f Func[K]) Matches(key K) bool { return f(key) }

type exact[K comparable] struct{ target K }

func (m exact[K]) Matches(key K) bool { return key == m.target }

// Exact selects the one key equal to target.
func Exact[K comparable](target K) Matcher[K] {
	return exact[K]{target: target}
}

type prefix string

func (p prefix) Matches(key string) bool { return strings.HasPrefix(key, string(p)) }

// Prefix selects keys starting with p. An empty prefix selects everything.
func Prefix(p string) Matcher[string] { return prefix(p) }

type suffix string

func (s suffix) Matches(key string) bool { return strings.HasSuffix(key, string(s)) }

// Suffix selects keys ending with s.
func Suffix(s string) Matcher[string] { return suffix(s) }

type contains string

func (c contains) Matches(key string) bool { return strings.Contains(key, string(c)) }

// Contains selects keys containing sub anywhere.
func Contains(sub string) Matcher[string] { return contains(sub) }

type rangeMatcher[K cmp.Ordered] struct {
	min, max  K
	inclusive bool
}

func (r rangeMatcher[K]) Matches(key K) bool {
	if r.inclusive {
		return key >= r.min && key <= r.max
	}
	return key > r.min && key < r.max
}

// Range selects keys in [min, max].
func Range[K cmp.Ordered](min, max K) Matcher[K] {
	return rangeMatcher[K]{min: min, max: max, inclusive: true}
}

// RangeExclusive selects keys in (min, max).
func RangeExclusive[K cmp.Ordered](min, max K) Matcher[K] {
	return rangeMatcher[K]{min: min, max: max}
}

// All selects keys matched by every m. With no matchers it selects everything.
func All[K any](ms ...Matcher[K]) Matcher[K] {
	return Func[K](func(key K) bool {
		for _, m := range ms {
			if !m.Matches(key) {
				return false
			}
		}
		return true
	})
}

// Any selects keys matched by at least one m. With no matchers it selects nothing.
func Any[K any](ms ...Matcher[K]) Matcher[K] {
	return Func[K](func(key K) bool {
		for _, m := range ms {
			if m.Matches(key) {
				return true
			}
		}
		return false
	})
}

func Not[K any](m Matcher[K]) Matcher[K] {
	return Func[K](func(key K) bool { return !m.Matches(key) })
}
