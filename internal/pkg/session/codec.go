package session

import (
	"errors"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

var (
	ErrExpired = errors.New("session expired")
	ErrInvalid = errors.New("session invalid")
)

type claims struct {
	UserID     *int64 `json:"uid,omitempty"`
	Role       *int   `json:"role,omitempty"`
	CSRFSecret string `json:"csrf,omitempty"`

	jwtlib.RegisteredClaims
}

// Codec signs sessions into cookie values and verifies them back. The cookie
// is an HS256 JWT, so it is tamper-proof but not encrypted.
type Codec struct {
	secret []byte
	maxAge time.Duration

	now func() time.Time
}

func NewCodec(secret string, maxAge time.Duration) *Codec {
	return &Codec{
		secret: []byte(secret),
		maxAge: maxAge,
		now:    time.Now,
	}
}

func (c *Codec) MaxAge() time.Duration {
	return c.maxAge
}

func (c *Codec) Encode(s *Session) (string, error) {
	if len(c.secret) == 0 || c.maxAge <= 0 {
		return "", ErrInvalid
	}

	now := c.now().UTC()
	cl := claims{
		UserID:     s.userID,
		Role:       s.role,
		CSRFSecret: s.csrfSecret,
		RegisteredClaims: jwtlib.RegisteredClaims{
			IssuedAt:  jwtlib.NewNumericDate(now),
			ExpiresAt: jwtlib.NewNumericDate(now.Add(c.maxAge)),
		},
	}

	t := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, cl)
	return t.SignedString(c.secret)
}

func (c *Codec) Decode(value string) (*Session, error) {
	if value == "" {
		return nil, ErrInvalid
	}

	p := jwtlib.NewParser(
		jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}),
		jwtlib.WithTimeFunc(c.now),
	)

	var cl claims
	tok, err := p.ParseWithClaims(value, &cl, func(token *jwtlib.Token) (any, error) {
		return c.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwtlib.ErrTokenExpired) {
			return nil, ErrExpired
		}
		return nil, ErrInvalid
	}
	if tok == nil || !tok.Valid {
		return nil, ErrInvalid
	}

	return &Session{userID: cl.UserID, role: cl.Role, csrfSecret: cl.CSRFSecret}, nil
}
