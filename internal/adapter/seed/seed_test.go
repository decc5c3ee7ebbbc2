package seed

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"ttskit/internal/adapter/store"
	"ttskit/internal/domain"
)

type countingProvider struct {
	seed  domain.Seed
	calls atomic.Int64
}

func (c *countingProvider) Seed(context.Context) (domain.Seed, error) {
	c.calls.Add(1)
	return c.seed, nil
}

func TestStatic(t *testing.T) {
	p, err := NewStatic("406986.2817744745")
	require.NoError(t, err)

	s, err := p.Seed(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.Seed{First: 406986, Second: 2817744745}, s)
}

func TestStaticRejectsMalformed(t *testing.T) {
	_, err := NewStatic("bogus")

	var seedErr *domain.SeedFormatError
	require.ErrorAs(t, err, &seedErr)
}

func TestClock(t *testing.T) {
	p := NewClock(42)
	p.now = func() time.Time { return time.Unix(3600*1000+17, 0) }

	s, err := p.Seed(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.Seed{First: 1000, Second: 42}, s)
}

func TestCachedFetchesOnce(t *testing.T) {
	source := &countingProvider{seed: domain.Seed{First: 1, Second: 2}}
	cached := NewCached(source)

	for i := 0; i < 3; i++ {
		s, err := cached.Seed(context.Background())
		require.NoError(t, err)
		assert.Equal(t, source.seed, s)
	}
	assert.Equal(t, int64(1), source.calls.Load())
}

func TestCachedInvalidate(t *testing.T) {
	source := &countingProvider{seed: domain.Seed{First: 1, Second: 2}}
	cached := NewCached(source)

	_, err := cached.Seed(context.Background())
	require.NoError(t, err)

	cached.Invalidate()

	_, err = cached.Seed(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), source.calls.Load())
}

func TestCachedConcurrent(t *testing.T) {
	source := &countingProvider{seed: domain.Seed{First: 7, Second: 9}}
	cached := NewCached(source)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s, err := cached.Seed(context.Background())
			assert.NoError(t, err)
			assert.Equal(t, source.seed, s)
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(1), source.calls.Load())
}

func TestPersistentReusesStoredSeed(t *testing.T) {
	st, err := store.NewBoltSeedStore(t.TempDir() + "/seed.db")
	require.NoError(t, err)
	defer st.Close()

	source := &countingProvider{seed: domain.Seed{First: 11, Second: 22}}

	p := NewPersistent(st, source, zap.NewNop())
	p.now = func() time.Time { return time.Unix(3600*500, 0) }

	for i := 0; i < 3; i++ {
		s, err := p.Seed(context.Background())
		require.NoError(t, err)
		assert.Equal(t, source.seed, s)
	}
	assert.Equal(t, int64(1), source.calls.Load())
}

func TestPersistentRefetchesNewBucket(t *testing.T) {
	st, err := store.NewBoltSeedStore(t.TempDir() + "/seed.db")
	require.NoError(t, err)
	defer st.Close()

	source := &countingProvider{seed: domain.Seed{First: 11, Second: 22}}
	p := NewPersistent(st, source, zap.NewNop())

	p.now = func() time.Time { return time.Unix(3600*500, 0) }
	_, err = p.Seed(context.Background())
	require.NoError(t, err)

	p.now = func() time.Time { return time.Unix(3600*501, 0) }
	_, err = p.Seed(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(2), source.calls.Load())
}

func TestHourBucket(t *testing.T) {
	assert.Equal(t, int64(0), HourBucket(time.Unix(59, 0)))
	assert.Equal(t, int64(1), HourBucket(time.Unix(3600, 0)))
}
