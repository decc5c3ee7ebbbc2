package usecase

import (
	"context"
	"fmt"
	"unicode/utf8"

	"go.uber.org/zap"

	"ttskit/internal/domain"
	"ttskit/internal/port"
	"ttskit/internal/token"
)

// Signer plans fragments and pairs each with its request signature, ordinal
// index and total count, which is everything the request builder consumes.
type Signer struct {
	planner  *Planner
	provider port.SeedProvider
	log      *zap.Logger
}

func NewSigner(planner *Planner, provider port.SeedProvider, log *zap.Logger) (*Signer, error) {
	if planner == nil {
		return nil, &domain.ConfigurationError{Component: "signer", Reason: "no planner"}
	}
	if provider == nil {
		return nil, &domain.ConfigurationError{Component: "signer", Reason: "no seed provider"}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Signer{planner: planner, provider: provider, log: log}, nil
}

// Sign plans text and signs every fragment under the current seed.
// All-or-nothing: a seed failure returns no fragments.
func (s *Signer) Sign(ctx context.Context, text string) ([]domain.SignedFragment, error) {
	fragments, err := s.planner.Plan(text)
	if err != nil {
		return nil, err
	}

	seed, err := s.provider.Seed(ctx)
	if err != nil {
		return nil, fmt.Errorf("seed unavailable: %w", err)
	}
	s.log.Debug("signing", zap.Int("fragments", len(fragments)), zap.Int64("seed_first", seed.First))

	signed := make([]domain.SignedFragment, 0, len(fragments))
	for i, f := range fragments {
		if f.Oversized {
			s.log.Warn("fragment exceeds budget, no safe split point",
				zap.Int("idx", i),
				zap.Int("runes", utf8.RuneCountInString(f.Text)))
		}
		signed = append(signed, domain.SignedFragment{
			Index:     i,
			Total:     len(fragments),
			Text:      f.Text,
			Length:    utf8.RuneCountInString(f.Text),
			Signature: token.Generate(f.Text, seed),
			Oversized: f.Oversized,
		})
	}
	return signed, nil
}
