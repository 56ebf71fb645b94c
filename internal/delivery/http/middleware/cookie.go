package middleware

import (
	"strings"
	"time"

	"job-board/internal/config"

	"github.com/gofiber/fiber/v3"
)

// CookieOptions are the attributes applied to both the session cookie and the
// CSRF cookie.
type CookieOptions struct {
	Secure   bool
	SameSite string
	HTTPOnly bool
	MaxAge   time.Duration
}

func CookieOptionsFromConfig(cfg config.SessionConfig) CookieOptions {
	return CookieOptions{
		Secure:   cfg.Secure,
		SameSite: cfg.SameSite,
		HTTPOnly: cfg.HTTPOnly,
		MaxAge:   cfg.MaxAge,
	}
}

func (o CookieOptions) cookie(name, value string) *fiber.Cookie {
	return &fiber.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(o.MaxAge / time.Second),
		Expires:  time.Now().Add(o.MaxAge),
		Secure:   o.Secure,
		HTTPOnly: o.HTTPOnly,
		SameSite: sameSite(o.SameSite),
	}
}

func sameSite(v string) string {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "strict":
		return fiber.CookieSameSiteStrictMode
	case "none":
		return fiber.CookieSameSiteNoneMode
	case "disabled":
		return fiber.CookieSameSiteDisabled
	default:
		return fiber.CookieSameSiteLaxMode
	}
}
