package middleware

import (
	"strings"

	"job-board/internal/pkg/csrf"

	"github.com/gofiber/fiber/v3"
)

const (
	HeaderCSRFToken = "X-CSRF-Token"
	CookieCSRFToken = "CSRF-TOKEN"
	FormCSRFToken   = "authenticity_token"

	MessageInvalidCSRFToken = "Invalid CSRF token"
)

// Exemption lets a method/path pair skip token verification. Method "*"
// matches any method; path segments starting with ":" match any value.
type Exemption struct {
	Method string
	Path   string
}

// DefaultCSRFExemptions is the complete allow-list. Any state-changing route
// not listed here requires a valid token.
var DefaultCSRFExemptions = []Exemption{
	{Method: "*", Path: "/csrf_token"},
	{Method: fiber.MethodPost, Path: "/login"},
	{Method: fiber.MethodPost, Path: "/register"},
	{Method: fiber.MethodPost, Path: "/users"},
	{Method: fiber.MethodPost, Path: "/users/:user_id/job_seeker_profile"},
	{Method: fiber.MethodPut, Path: "/users/:user_id/job_seeker_profile"},
	{Method: fiber.MethodPatch, Path: "/users/:user_id/job_seeker_profile"},
	{Method: fiber.MethodDelete, Path: "/users/:user_id/job_seeker_profile"},
}

type CSRFMiddleware struct {
	cookie     CookieOptions
	exemptions []Exemption
}

func NewCSRFMiddleware(opts CookieOptions, exemptions []Exemption) *CSRFMiddleware {
	// The CSRF cookie exists to be read by client script.
	opts.HTTPOnly = false
	return &CSRFMiddleware{cookie: opts, exemptions: exemptions}
}

// Middleware verifies the request token for every state-changing request
// outside the allow-list and attaches a fresh token to every response,
// rejections included, unless the handler already did. GET, HEAD and OPTIONS
// are safe.
func (m *CSRFMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		sess := SessionFrom(c)
		secret, err := sess.EnsureCSRFSecret()
		if err != nil {
			return err
		}

		if m.requiresToken(c.Method(), c.Path()) {
			if !csrf.Valid(secret, requestToken(c)) {
				// The rejection still carries a usable token so the client can retry.
				if _, err := m.IssueToken(c); err != nil {
					return err
				}
				return NewAppError(fiber.StatusUnprocessableEntity, MessageInvalidCSRFToken, nil, nil)
			}
		}

		err = c.Next()

		if c.GetRespHeader(HeaderCSRFToken) == "" {
			if _, attachErr := m.IssueToken(c); attachErr != nil && err == nil {
				err = attachErr
			}
		}
		return err
	}
}

// IssueToken masks the session secret and sets it on the response header and
// the CSRF cookie. The returned value is the one written to both.
func (m *CSRFMiddleware) IssueToken(c fiber.Ctx) (string, error) {
	secret, err := SessionFrom(c).EnsureCSRFSecret()
	if err != nil {
		return "", err
	}
	tok, err := csrf.MaskToken(secret)
	if err != nil {
		return "", err
	}

	c.Set(HeaderCSRFToken, tok)
	c.Cookie(m.cookie.cookie(CookieCSRFToken, tok))
	return tok, nil
}

func (m *CSRFMiddleware) requiresToken(method, path string) bool {
	switch method {
	case fiber.MethodGet, fiber.MethodHead, fiber.MethodOptions:
		return false
	}
	for _, ex := range m.exemptions {
		if ex.Method != "*" && !strings.EqualFold(ex.Method, method) {
			continue
		}
		if pathMatches(ex.Path, path) {
			return false
		}
	}
	return true
}

func requestToken(c fiber.Ctx) string {
	if tok := strings.TrimSpace(c.Get(HeaderCSRFToken)); tok != "" {
		return tok
	}
	return strings.TrimSpace(c.FormValue(FormCSRFToken))
}

func pathMatches(pattern, path string) bool {
	ps := splitPath(pattern)
	xs := splitPath(path)
	if len(ps) != len(xs) {
		return false
	}
	for i := range ps {
		if strings.HasPrefix(ps[i], ":") {
			if xs[i] == "" {
				return false
			}
			continue
		}
		if ps[i] != xs[i] {
			return false
		}
	}
	return true
}

func splitPath(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}
