package middleware

import (
	"errors"

	"job-board/internal/pkg/session"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
)

const CtxSessionKey = "session"

type SessionMiddleware struct {
	codec  *session.Codec
	name   string
	cookie CookieOptions
	logger logrus.FieldLogger
}

func NewSessionMiddleware(codec *session.Codec, cookieName string, opts CookieOptions, logger logrus.FieldLogger) *SessionMiddleware {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	opts.MaxAge = codec.MaxAge()
	return &SessionMiddleware{codec: codec, name: cookieName, cookie: opts, logger: logger}
}

// Middleware loads the session from its cookie and writes the cookie back
// when the request changed it. A cookie that fails verification yields an
// empty session.
func (m *SessionMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		sess := m.load(c)
		c.Locals(CtxSessionKey, sess)

		err := c.Next()

		if sess.Dirty() {
			v, encErr := m.codec.Encode(sess)
			if encErr != nil {
				m.logger.WithError(encErr).Error("session encode failed")
				if err == nil {
					err = encErr
				}
				return err
			}
			c.Cookie(m.cookie.cookie(m.name, v))
		}
		return err
	}
}

func (m *SessionMiddleware) load(c fiber.Ctx) *session.Session {
	raw := c.Cookies(m.name)
	if raw == "" {
		return session.New()
	}
	sess, err := m.codec.Decode(raw)
	if err != nil {
		if !errors.Is(err, session.ErrExpired) {
			m.logger.WithField("path", c.Path()).Debug("discarding unverifiable session cookie")
		}
		return session.New()
	}
	return sess
}

// SessionFrom returns the request session. Outside SessionMiddleware it
// returns a fresh, unsaved session.
func SessionFrom(c fiber.Ctx) *session.Session {
	if sess, ok := c.Locals(CtxSessionKey).(*session.Session); ok && sess != nil {
		return sess
	}
	return session.New()
}
