package tokenizer

import (
	"fmt"
	"strings"

	"ttskit/internal/adapter/matcher"
	"ttskit/internal/domain"
)

// Case produces the splitting matcher for one delimiter class. Cases are
// combined into a single alternation, so they should claim disjoint
// character ranges; that is the caller's responsibility, not validated here.
type Case func() *matcher.Matcher

// Engine splits text at every match of the combined case matcher, discarding
// the matched delimiter text. Immutable after construction.
type Engine struct {
	combined *matcher.Matcher
}

// New combines the cases into one matcher, case-insensitive by default.
// Fails with a ConfigurationError if the case list is empty or a case does
// not produce a matcher.
func New(cases []Case, ignoreCase bool) (*Engine, error) {
	if len(cases) == 0 {
		return nil, &domain.ConfigurationError{
			Component: "tokenizer",
			Reason:    "no tokenizer cases",
		}
	}

	alts := make([]string, 0, len(cases))
	for i, c := range cases {
		if c == nil {
			return nil, &domain.ConfigurationError{
				Component: "tokenizer",
				Reason:    fmt.Sprintf("case %d is nil", i),
			}
		}
		m := c()
		if m == nil {
			return nil, &domain.ConfigurationError{
				Component: "tokenizer",
				Reason:    fmt.Sprintf("case %d did not produce a matcher", i),
			}
		}
		alts = append(alts, m.Pattern())
	}

	combined, err := matcher.Compile(strings.Join(alts, "|"), ignoreCase)
	if err != nil {
		return nil, &domain.ConfigurationError{
			Component: "tokenizer",
			Reason:    fmt.Sprintf("combined pattern does not compile: %v", err),
		}
	}

	return &Engine{combined: combined}, nil
}

// Split partitions text at every match, returning the ordered in-between
// pieces. Empty pieces are possible and are filtered downstream.
func (e *Engine) Split(text string) []string {
	return e.combined.Split(text)
}

// Pattern returns the combined pattern, for logging.
func (e *Engine) Pattern() string {
	return e.combined.Pattern()
}
