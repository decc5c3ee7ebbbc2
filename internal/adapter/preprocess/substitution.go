package preprocess

import (
	"fmt"

	"ttskit/internal/adapter/matcher"
	"ttskit/internal/domain"
)

// Substitution applies an ordered list of search patterns, each as a global
// find-and-replace with a common replacement. Rules run sequentially over the
// current text state, so a later rule can match text introduced by an earlier
// replacement.
type Substitution struct {
	matchers []*matcher.Matcher
	repl     string
}

// NewSubstitution builds one matcher per search term via template, applied in
// the order given. Replacement validity is checked here so Run cannot fail.
func NewSubstitution(searches []string, template func(string) string, repl string, ignoreCase bool) (*Substitution, error) {
	if len(searches) == 0 {
		return nil, &domain.ConfigurationError{
			Component: "substitution",
			Reason:    "no search terms",
		}
	}

	ms := make([]*matcher.Matcher, 0, len(searches))
	for _, search := range searches {
		m, err := matcher.Build([]string{search}, template, ignoreCase)
		if err != nil {
			return nil, err
		}
		if _, err := m.ReplaceAll("", repl); err != nil {
			return nil, &domain.ConfigurationError{
				Component: "substitution",
				Reason:    fmt.Sprintf("invalid replacement %q: %v", repl, err),
			}
		}
		ms = append(ms, m)
	}

	return &Substitution{matchers: ms, repl: repl}, nil
}

// Run returns text after all substitutions have been sequentially applied.
func (s *Substitution) Run(text string) string {
	for _, m := range s.matchers {
		// Replacement errors are ruled out at construction.
		if out, err := m.ReplaceAll(text, s.repl); err == nil {
			text = out
		}
	}
	return text
}

type pairRule struct {
	m    *matcher.Matcher
	repl string
}

// PairSubstitution applies an ordered list of (search, replacement) pairs,
// each search matched literally.
type PairSubstitution struct {
	rules []pairRule
}

// NewPairSubstitution builds one rule per pair. Case-insensitive unless
// ignoreCase is false.
func NewPairSubstitution(pairs [][2]string, ignoreCase bool) (*PairSubstitution, error) {
	if len(pairs) == 0 {
		return nil, &domain.ConfigurationError{
			Component: "substitution",
			Reason:    "no substitution pairs",
		}
	}

	rules := make([]pairRule, 0, len(pairs))
	for _, pair := range pairs {
		sub, err := NewSubstitution([]string{pair[0]}, matcher.Literal, pair[1], ignoreCase)
		if err != nil {
			return nil, err
		}
		rules = append(rules, pairRule{m: sub.matchers[0], repl: pair[1]})
	}

	return &PairSubstitution{rules: rules}, nil
}

// Run returns text after all pairs have been sequentially applied.
func (p *PairSubstitution) Run(text string) string {
	for _, r := range p.rules {
		if out, err := r.m.ReplaceAll(text, r.repl); err == nil {
			text = out
		}
	}
	return text
}
