package matcher

import (
	"fmt"
	"regexp"
)

type regexpMatcher struct{ re *regexp.Regexp }

func (m regexpMatcher) Matches(key string) bool { return m.re.MatchString(key) }

// Regexp selects string keys matching pattern (RE2 syntax). The pattern is
// compiled once, here, not per key.
func Regexp(pattern string) (Matcher[string], error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("matcher: compile %q: %w", pattern, err)
	}
	return regexpMatcher{re: re}, nil
}

// MustRegexp is like Regexp but panics on a bad pattern. Use it for
// patterns fixed at build time.
func MustRegexp(pattern string) Matcher[string] {
	m, err := Regexp(pattern)
	if err != nil {
		panic(err)
	}
	return m
}
