package port

import (
	"context"

	"ttskit/internal/domain"
)

// PreProcessor transforms text before tokenizing.
type PreProcessor interface {
	Run(text string) string
}

// Splitter partitions text into pieces at delimiter matches.
type Splitter interface {
	Split(text string) []string
}

// SeedProvider supplies the current token seed. Failures mean "seed
// unavailable", not a processing error.
type SeedProvider interface {
	Seed(ctx context.Context) (domain.Seed, error)
}

// SeedStore persists seeds across process runs, keyed by the hour bucket the
// upstream rotates on.
type SeedStore interface {
	Get(bucket int64) (domain.Seed, bool, error)
	Put(bucket int64, seed domain.Seed) error
	Invalidate() error
	Close() error
}
