package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ttskit/internal/domain"
)

func newTestStore(t *testing.T) *BoltSeedStore {
	t.Helper()

	st, err := NewBoltSeedStore(filepath.Join(t.TempDir(), "seed.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func TestSeedStoreRoundTrip(t *testing.T) {
	st := newTestStore(t)
	seed := domain.Seed{First: 406986, Second: 2817744745}

	require.NoError(t, st.Put(1000, seed))

	got, found, err := st.Get(1000)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, seed, got)
}

func TestSeedStoreMissingBucket(t *testing.T) {
	st := newTestStore(t)

	_, found, err := st.Get(999)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestSeedStoreOverwrite(t *testing.T) {
	st := newTestStore(t)

	require.NoError(t, st.Put(1, domain.Seed{First: 1, Second: 2}))
	require.NoError(t, st.Put(1, domain.Seed{First: 3, Second: 4}))

	got, found, err := st.Get(1)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, domain.Seed{First: 3, Second: 4}, got)
}

func TestSeedStoreInvalidate(t *testing.T) {
	st := newTestStore(t)

	require.NoError(t, st.Put(1, domain.Seed{First: 1, Second: 2}))
	require.NoError(t, st.Put(2, domain.Seed{First: 3, Second: 4}))

	require.NoError(t, st.Invalidate())

	for _, bucket := range []int64{1, 2} {
		_, found, err := st.Get(bucket)
		require.NoError(t, err)
		assert.False(t, found)
	}
}
