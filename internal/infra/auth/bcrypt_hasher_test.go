package auth

import (
	"testing"
	"time"

	"wastefleet/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hasherTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Auth = &config.AuthConfig{
		BcryptCost:     4, // Minimum cost keeps the tests fast.
		AccessTokenTTL: time.Hour,
	}

	return cfg
}

func TestHashAndCompare(t *testing.T) {
	t.Parallel()

	hasher := NewBcryptHasher(hasherTestConfig())

	hash, err := hasher.Hash("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)

	require.NoError(t, hasher.Compare(hash, "s3cret"))
	require.Error(t, hasher.Compare(hash, "wrong"))
}

func TestHash_UniqueSalts(t *testing.T) {
	t.Parallel()

	hasher := NewBcryptHasher(hasherTestConfig())

	first, err := hasher.Hash("s3cret")
	require.NoError(t, err)
	second, err := hasher.Hash("s3cret")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
