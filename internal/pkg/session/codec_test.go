package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodec_RoundTrip(t *testing.T) {
	c := NewCodec("secret", time.Hour)

	s := New()
	s.SignIn(42, 1)
	secret, err := s.EnsureCSRFSecret()
	require.NoError(t, err)

	v, err := c.Encode(s)
	require.NoError(t, err)

	got, err := c.Decode(v)
	require.NoError(t, err)

	id, ok := got.UserID()
	require.True(t, ok)
	assert.Equal(t, int64(42), id)
	role, ok := got.Role()
	require.True(t, ok)
	assert.Equal(t, 1, role)
	assert.Equal(t, secret, got.CSRFSecret())
	assert.False(t, got.Dirty())
}

func TestCodec_RejectsTamperedAndForeign(t *testing.T) {
	c := NewCodec("secret", time.Hour)
	v, err := c.Encode(New())
	require.NoError(t, err)

	_, err = c.Decode(v + "x")
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = NewCodec("other", time.Hour).Decode(v)
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = c.Decode("")
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestCodec_Expired(t *testing.T) {
	c := NewCodec("secret", time.Hour)
	base := time.Now()
	c.now = func() time.Time { return base }

	v, err := c.Encode(New())
	require.NoError(t, err)

	c.now = func() time.Time { return base.Add(2 * time.Hour) }
	_, err = c.Decode(v)
	assert.ErrorIs(t, err, ErrExpired)
}

func TestSession_SignOutKeepsCSRFSecret(t *testing.T) {
	s := New()
	s.SignIn(7, 0)
	secret, err := s.EnsureCSRFSecret()
	require.NoError(t, err)

	s.SignOut()
	assert.False(t, s.LoggedIn())
	_, ok := s.Role()
	assert.False(t, ok)
	assert.Equal(t, secret, s.CSRFSecret())
	assert.True(t, s.Dirty())
}
