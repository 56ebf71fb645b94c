package csrf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaskToken_RoundTrip(t *testing.T) {
	secret, err := NewSecret()
	require.NoError(t, err)

	a, err := MaskToken(secret)
	require.NoError(t, err)
	b, err := MaskToken(secret)
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.True(t, Valid(secret, a))
	assert.True(t, Valid(secret, b))
	assert.True(t, Valid(secret, secret))
}

func TestValid_Rejects(t *testing.T) {
	secret, err := NewSecret()
	require.NoError(t, err)
	other, err := NewSecret()
	require.NoError(t, err)

	tok, err := MaskToken(other)
	require.NoError(t, err)

	assert.False(t, Valid(secret, tok))
	assert.False(t, Valid(secret, ""))
	assert.False(t, Valid(secret, "not base64 !!"))
	assert.False(t, Valid(secret, "c2hvcnQ"))
	assert.False(t, Valid("", tok))
}

func TestMaskToken_BadSecret(t *testing.T) {
	_, err := MaskToken("short")
	assert.ErrorIs(t, err, ErrInvalidSecret)
}
