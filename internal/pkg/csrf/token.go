// Package csrf issues and checks masked anti-forgery tokens derived from a
// per-session secret.
//
// A masked token is base64url(pad || pad XOR secret) with a fresh random pad,
// so every issued token differs while all of them check against the same
// secret.
package csrf

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
)

const SecretLength = 32

var ErrInvalidSecret = errors.New("csrf: invalid secret")

var encoding = base64.RawURLEncoding

func NewSecret() (string, error) {
	b := make([]byte, SecretLength)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return encoding.EncodeToString(b), nil
}

func MaskToken(secret string) (string, error) {
	raw, err := decodeSecret(secret)
	if err != nil {
		return "", err
	}

	pad := make([]byte, SecretLength)
	if _, err := rand.Read(pad); err != nil {
		return "", err
	}

	out := make([]byte, 0, 2*SecretLength)
	out = append(out, pad...)
	out = append(out, xor(pad, raw)...)
	return encoding.EncodeToString(out), nil
}

// Valid reports whether token was issued for secret. Both masked tokens and
// the bare secret are accepted.
func Valid(secret, token string) bool {
	if token == "" {
		return false
	}
	raw, err := decodeSecret(secret)
	if err != nil {
		return false
	}
	b, err := encoding.DecodeString(token)
	if err != nil {
		return false
	}

	switch len(b) {
	case SecretLength:
		return subtle.ConstantTimeCompare(b, raw) == 1
	case 2 * SecretLength:
		return subtle.ConstantTimeCompare(xor(b[:SecretLength], b[SecretLength:]), raw) == 1
	default:
		return false
	}
}

func decodeSecret(secret string) ([]byte, error) {
	raw, err := encoding.DecodeString(secret)
	if err != nil || len(raw) != SecretLength {
		return nil, ErrInvalidSecret
	}
	return raw, nil
}

func xor(a, b []byte) []byte {
	out := make([]byte, len(a))
	for i := range a {
		out[i] = a[i] ^ b[i]
	}
	return out
}
