package domain

import (
	"errors"
	"fmt"
)

// ErrEmptyInput reports that the input text is empty, or that nothing
// speakable remained after pre-processing and cleanup.
var ErrEmptyInput = errors.New("no speakable text")

// ConfigurationError reports a malformed pipeline, tokenizer or planner
// configuration. It is raised at construction time, never during text
// processing.
type ConfigurationError struct {
	Component string
	Reason    string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Component, e.Reason)
}

// SeedFormatError reports a seed string that does not parse as "<int>.<int>".
type SeedFormatError struct {
	Value string
}

func (e *SeedFormatError) Error() string {
	return fmt.Sprintf("seed %q is not of the form \"<int>.<int>\"", e.Value)
}
