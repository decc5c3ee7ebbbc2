package matcher

import (
	"strings"

	"github.com/dlclark/regexp2"

	"ttskit/internal/domain"
)

// Build compiles a set of literal strings into a single alternation matcher.
// Each literal is escaped so it matches literally, passed through template to
// produce one alternative group, and the groups are joined with "|".
func Build(literals []string, template func(string) string, ignoreCase bool) (*Matcher, error) {
	if len(literals) == 0 {
		return nil, &domain.ConfigurationError{
			Component: "matcher",
			Reason:    "no literals to compile",
		}
	}

	alts := make([]string, 0, len(literals))
	for _, lit := range literals {
		alts = append(alts, template(regexp2.Escape(lit)))
	}

	return Compile(strings.Join(alts, "|"), ignoreCase)
}

// MustBuild is like Build but panics on failure. Reserved for literal sets
// and templates fixed at build time.
func MustBuild(literals []string, template func(string) string, ignoreCase bool) *Matcher {
	m, err := Build(literals, template, ignoreCase)
	if err != nil {
		panic(err)
	}
	return m
}

// Literal is the identity template: the escaped literal itself is the group.
func Literal(s string) string {
	return s
}

// Runes expands a string into one single-rune literal per character, for
// building per-character alternations.
func Runes(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}
