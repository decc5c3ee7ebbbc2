package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"ttskit/internal/domain"
)

type stubProvider struct {
	seed domain.Seed
	err  error
}

func (s *stubProvider) Seed(context.Context) (domain.Seed, error) {
	return s.seed, s.err
}

func TestSignSingleFragment(t *testing.T) {
	provider := &stubProvider{seed: domain.Seed{First: 406986, Second: 2817744745}}
	signer, err := NewSigner(newTestPlanner(t, 100), provider, zap.NewNop())
	require.NoError(t, err)

	signed, err := signer.Sign(context.Background(), "test")
	require.NoError(t, err)

	require.Len(t, signed, 1)
	assert.Equal(t, domain.SignedFragment{
		Index:     0,
		Total:     1,
		Text:      "test",
		Length:    4,
		Signature: "278125.134055",
	}, signed[0])
}

func TestSignOrdinals(t *testing.T) {
	provider := &stubProvider{seed: domain.Seed{First: 406986, Second: 2817744745}}
	signer, err := NewSigner(newTestPlanner(t, 40), provider, zap.NewNop())
	require.NoError(t, err)

	text := "First sentence here, it is a bit long. Second sentence follows! Third one ends it?"
	signed, err := signer.Sign(context.Background(), text)
	require.NoError(t, err)

	require.Greater(t, len(signed), 1)
	for i, f := range signed {
		assert.Equal(t, i, f.Index)
		assert.Equal(t, len(signed), f.Total)
		assert.NotEmpty(t, f.Signature)
		assert.NotEmpty(t, f.Text)
	}
}

func TestSignSeedUnavailable(t *testing.T) {
	provider := &stubProvider{err: errors.New("upstream changed")}
	signer, err := NewSigner(newTestPlanner(t, 100), provider, zap.NewNop())
	require.NoError(t, err)

	_, err = signer.Sign(context.Background(), "test")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "seed unavailable")
}

func TestSignEmptyInput(t *testing.T) {
	provider := &stubProvider{seed: domain.Seed{First: 1, Second: 2}}
	signer, err := NewSigner(newTestPlanner(t, 100), provider, zap.NewNop())
	require.NoError(t, err)

	_, err = signer.Sign(context.Background(), "   ")
	assert.True(t, errors.Is(err, domain.ErrEmptyInput))
}

func TestNewSignerValidation(t *testing.T) {
	var cfgErr *domain.ConfigurationError

	_, err := NewSigner(nil, &stubProvider{}, zap.NewNop())
	require.ErrorAs(t, err, &cfgErr)

	_, err = NewSigner(newTestPlanner(t, 100), nil, zap.NewNop())
	require.ErrorAs(t, err, &cfgErr)
}
