package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHasher_HashAndVerify(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	digest, err := h.Hash("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", digest)

	assert.True(t, h.Verify("secret123", digest))
	assert.False(t, h.Verify("wrong-password", digest))
	assert.False(t, h.Verify("", digest))
}

func TestPasswordHasher_HashIsSalted(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	first, err := h.Hash("secret123")
	require.NoError(t, err)
	second, err := h.Hash("secret123")
	require.NoError(t, err)

	// Same input, distinct digests: bcrypt embeds a random salt.
	assert.NotEqual(t, first, second)
	assert.True(t, h.Verify("secret123", first))
	assert.True(t, h.Verify("secret123", second))
}

func TestPasswordHasher_EmptyPassword(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	_, err := h.Hash("")
	assert.Error(t, err)
}

func TestNewPasswordHasher_CostOutOfRange(t *testing.T) {
	h := NewPasswordHasher(100)
	assert.Equal(t, DefaultCost, h.cost)

	h = NewPasswordHasher(-1)
	assert.Equal(t, DefaultCost, h.cost)
}

func TestPasswordHasher_VerifyGarbageDigest(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)
	assert.False(t, h.Verify("secret123", "not-a-bcrypt-digest"))
}
