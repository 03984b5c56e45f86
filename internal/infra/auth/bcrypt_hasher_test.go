package auth

import (
	"testing"

	"github.com/Abhithakur7080/your-video/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestHasherConfig(cost int) *config.Config {
	return &config.Config{Auth: &config.AuthConfig{BcryptCost: cost}}
}

func TestBcryptHasher_Hash(t *testing.T) {
	hasher, err := NewBcryptHasher(newTestHasherConfig(bcrypt.MinCost))
	require.NoError(t, err)

	password := "correct horse battery staple"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)

	// Verify the hash can be checked
	assert.True(t, hasher.Check(password, hash))
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher, err := NewBcryptHasher(newTestHasherConfig(bcrypt.MinCost))
	require.NoError(t, err)

	hash, err := hasher.Hash("secret-1")
	require.NoError(t, err)

	assert.True(t, hasher.Check("secret-1", hash))
	assert.False(t, hasher.Check("secret-2", hash))
	assert.False(t, hasher.Check("secret-1", "not-a-bcrypt-hash"))
}

func TestBcryptHasher_SaltsEveryHash(t *testing.T) {
	hasher, err := NewBcryptHasher(newTestHasherConfig(bcrypt.MinCost))
	require.NoError(t, err)

	first, err := hasher.Hash("same")
	require.NoError(t, err)
	second, err := hasher.Hash("same")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestNewBcryptHasher_RejectsCostOutOfRange(t *testing.T) {
	_, err := NewBcryptHasher(newTestHasherConfig(bcrypt.MaxCost + 1))
	assert.Error(t, err)

	_, err = NewBcryptHasher(newTestHasherConfig(1))
	assert.Error(t, err)

	hasher, err := NewBcryptHasher(&config.Config{})
	assert.NoError(t, err)
	assert.NotNil(t, hasher)
}
