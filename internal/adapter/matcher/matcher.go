package matcher

import (
	"github.com/dlclark/regexp2"
)

// Matcher is an immutable compiled pattern. It owns no mutable state after
// construction and is safe for concurrent use.
type Matcher struct {
	re *regexp2.Regexp
}

// Compile compiles pattern into a Matcher.
func Compile(pattern string, ignoreCase bool) (*Matcher, error) {
	opts := regexp2.None
	if ignoreCase {
		opts |= regexp2.IgnoreCase
	}
	re, err := regexp2.Compile(pattern, opts)
	if err != nil {
		return nil, err
	}
	return &Matcher{re: re}, nil
}

// MustCompile is like Compile but panics on an invalid pattern. Reserved for
// patterns fixed at build time.
func MustCompile(pattern string, ignoreCase bool) *Matcher {
	m, err := Compile(pattern, ignoreCase)
	if err != nil {
		panic(err)
	}
	return m
}

// Pattern returns the source pattern string.
func (m *Matcher) Pattern() string {
	return m.re.String()
}

// Match reports whether text contains a match.
func (m *Matcher) Match(text string) bool {
	ok, err := m.re.MatchString(text)
	return err == nil && ok
}

// ReplaceAll replaces every match in text with repl. repl uses the engine's
// replacement syntax, so a literal "$" must be written "$$".
func (m *Matcher) ReplaceAll(text, repl string) (string, error) {
	return m.re.Replace(text, repl, -1, -1)
}

// Split cuts text at every match, discarding the matched delimiter text, and
// returns the ordered in-between pieces. Empty pieces are kept; callers
// filter them. Match positions are unioned over the whole input before
// cutting, so the result order is left to right regardless of which
// alternative matched.
func (m *Matcher) Split(text string) []string {
	runes := []rune(text)
	parts := make([]string, 0, 4)
	prev := 0

	mt, err := m.re.FindRunesMatch(runes)
	for err == nil && mt != nil {
		parts = append(parts, string(runes[prev:mt.Index]))
		prev = mt.Index + mt.Length
		mt, err = m.re.FindNextMatch(mt)
	}

	parts = append(parts, string(runes[prev:]))
	return parts
}
