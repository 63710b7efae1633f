package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManagerRoundTrip(t *testing.T) {
	tm := NewTokenManager("access-secret", "refresh-secret")

	access, refresh, err := tm.Generate("user-42")
	require.NoError(t, err)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)
	assert.NotEqual(t, access, refresh)

	sub, err := tm.ValidateAccessToken(access)
	require.NoError(t, err)
	assert.Equal(t, "user-42", sub)

	sub, err = tm.ValidateRefreshToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, "user-42", sub)
}

func TestTokenManagerCrossUseRejected(t *testing.T) {
	tm := NewTokenManager("access-secret", "refresh-secret")

	access, refresh, err := tm.Generate("user-42")
	require.NoError(t, err)

	// Токены подписаны разными секретами, подмена не проходит
	_, err = tm.ValidateAccessToken(refresh)
	assert.Error(t, err)

	_, err = tm.ValidateRefreshToken(access)
	assert.Error(t, err)
}

func TestTokenManagerWrongSecret(t *testing.T) {
	tm := NewTokenManager("access-secret", "refresh-secret")
	other := NewTokenManager("other-access", "other-refresh")

	access, _, err := tm.Generate("user-42")
	require.NoError(t, err)

	_, err = other.ValidateAccessToken(access)
	assert.Error(t, err)

	_, err = tm.ValidateAccessToken("not-a-jwt")
	assert.Error(t, err)
}

func TestPasswordHasher(t *testing.T) {
	h := NewPasswordHasher()

	hash, err := h.Hash("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)

	assert.NoError(t, h.Compare(hash, "s3cret"))
	assert.Error(t, h.Compare(hash, "wrong"))
}
