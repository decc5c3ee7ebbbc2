package token

import (
	"strconv"
	"strings"

	"ttskit/internal/domain"
)

// ParseSeed parses a "<int>.<int>" seed string. Anything else is a
// SeedFormatError; the generator never guesses.
func ParseSeed(raw string) (domain.Seed, error) {
	first, second, ok := strings.Cut(raw, ".")
	if !ok {
		return domain.Seed{}, &domain.SeedFormatError{Value: raw}
	}

	f, err := strconv.ParseInt(first, 10, 64)
	if err != nil {
		return domain.Seed{}, &domain.SeedFormatError{Value: raw}
	}
	s, err := strconv.ParseInt(second, 10, 64)
	if err != nil {
		return domain.Seed{}, &domain.SeedFormatError{Value: raw}
	}

	return domain.Seed{First: f, Second: s}, nil
}
