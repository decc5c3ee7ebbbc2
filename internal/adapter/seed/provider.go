package seed

import (
	"context"
	"time"

	"ttskit/internal/domain"
	"ttskit/internal/token"
)

// Static always returns a fixed seed, typically supplied on the command line.
type Static struct {
	seed domain.Seed
}

// NewStatic parses raw as a "<int>.<int>" seed string.
func NewStatic(raw string) (*Static, error) {
	s, err := token.ParseSeed(raw)
	if err != nil {
		return nil, err
	}
	return &Static{seed: s}, nil
}

func (s *Static) Seed(context.Context) (domain.Seed, error) {
	return s.seed, nil
}

// Clock derives a fallback seed from the clock: the first half is the number
// of hours since epoch, matching the upstream's hourly rotation. The second
// half comes from configuration, since the upstream publishes it on a page
// this package does not fetch.
type Clock struct {
	second int64
	now    func() time.Time
}

func NewClock(second int64) *Clock {
	return &Clock{second: second, now: time.Now}
}

func (c *Clock) Seed(context.Context) (domain.Seed, error) {
	return domain.Seed{First: HourBucket(c.now()), Second: c.second}, nil
}

// HourBucket returns the hour-since-epoch bucket for t.
func HourBucket(t time.Time) int64 {
	return t.Unix() / 3600
}
