package auth

import (
	"testing"

	"clipstream/config"

	"github.com/stretchr/testify/assert"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: 4}}
	hasher := NewBcryptHasher(cfg)

	hash, err := hasher.Hash("s3cret-password")
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "s3cret-password", hash)

	assert.True(t, hasher.Check("s3cret-password", hash))
	assert.False(t, hasher.Check("wrong-password", hash))
}

func TestBcryptHasher_HashesAreSalted(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: 4}}
	hasher := NewBcryptHasher(cfg)

	first, err := hasher.Hash("same-password")
	assert.NoError(t, err)
	second, err := hasher.Hash("same-password")
	assert.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("same-password", first))
	assert.True(t, hasher.Check("same-password", second))
}
