package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-password")

	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-password", hash)
	assert.True(t, CheckPassword("s3cret-password", hash))
}

func TestCheckPassword_WrongPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-password")
	require.NoError(t, err)

	assert.False(t, CheckPassword("wrong-password", hash))
}

func TestCheckPassword_InvalidHash(t *testing.T) {
	// A merely-wrong credential never panics or errors, it just fails
	assert.False(t, CheckPassword("anything", "not-a-bcrypt-hash"))
}

func TestCheckPassword_DifferentCost(t *testing.T) {
	// Hashes produced under another cost factor must still verify
	b, err := bcrypt.GenerateFromPassword([]byte("s3cret-password"), bcrypt.MinCost)
	require.NoError(t, err)

	assert.True(t, CheckPassword("s3cret-password", string(b)))
}
