package seed

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"ttskit/internal/domain"
	"ttskit/internal/port"
)

// Cached decorates a provider with a process-wide seed cache. Reads are
// lock-shared; the fetch is a single-writer section, so concurrent callers
// never observe a half-updated seed. The cached value is reused until
// Invalidate.
type Cached struct {
	source port.SeedProvider

	mu    sync.RWMutex
	seed  domain.Seed
	valid bool
}

func NewCached(source port.SeedProvider) *Cached {
	return &Cached{source: source}
}

func (c *Cached) Seed(ctx context.Context) (domain.Seed, error) {
	c.mu.RLock()
	if c.valid {
		s := c.seed
		c.mu.RUnlock()
		return s, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.valid {
		return c.seed, nil
	}

	s, err := c.source.Seed(ctx)
	if err != nil {
		return domain.Seed{}, err
	}
	c.seed = s
	c.valid = true
	return s, nil
}

// Invalidate drops the cached seed; the next read fetches a fresh one.
func (c *Cached) Invalidate() {
	c.mu.Lock()
	c.valid = false
	c.mu.Unlock()
}

// Persistent decorates a provider with an on-disk store so short-lived
// processes reuse the seed fetched by a previous run within the same hour
// bucket. Store failures degrade to a plain fetch.
type Persistent struct {
	store  port.SeedStore
	source port.SeedProvider
	now    func() time.Time
	log    *zap.Logger
}

func NewPersistent(store port.SeedStore, source port.SeedProvider, log *zap.Logger) *Persistent {
	return &Persistent{store: store, source: source, now: time.Now, log: log}
}

func (p *Persistent) Seed(ctx context.Context) (domain.Seed, error) {
	bucket := HourBucket(p.now())

	if s, ok, err := p.store.Get(bucket); err != nil {
		p.log.Warn("seed store read failed", zap.Error(err))
	} else if ok {
		p.log.Debug("seed from store", zap.Int64("bucket", bucket))
		return s, nil
	}

	s, err := p.source.Seed(ctx)
	if err != nil {
		return domain.Seed{}, err
	}

	if err := p.store.Put(bucket, s); err != nil {
		p.log.Warn("seed store write failed", zap.Error(err))
	}
	return s, nil
}
