package auth

import (
	"testing"

	"canteen/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	hash, err := hasher.Hash("kitchen-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "kitchen-pass", hash)

	assert.True(t, hasher.Check("kitchen-pass", hash))
	assert.False(t, hasher.Check("wrong-pass", hash))
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check("kitchen-pass", "invalid_hash"))
}

func TestBcryptHasher_CostFromConfig(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: 5}})

	hash, err := hasher.Hash("kitchen-pass")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, 5, cost)
}

func TestBcryptHasher_InvalidCostFallsBack(t *testing.T) {
	hasher := NewBcryptHasherWithCost(99)

	assert.Equal(t, bcrypt.DefaultCost, hasher.(*bcryptHasher).cost)
}
