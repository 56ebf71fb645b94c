package session

import "job-board/internal/pkg/csrf"

// Session is the per-browser state carried in the signed session cookie.
type Session struct {
	userID     *int64
	role       *int
	csrfSecret string

	dirty bool
}

func New() *Session {
	return &Session{}
}

func (s *Session) UserID() (int64, bool) {
	if s == nil || s.userID == nil {
		return 0, false
	}
	return *s.userID, true
}

func (s *Session) Role() (int, bool) {
	if s == nil || s.role == nil {
		return 0, false
	}
	return *s.role, true
}

func (s *Session) LoggedIn() bool {
	_, ok := s.UserID()
	return ok
}

func (s *Session) SignIn(userID int64, role int) {
	s.userID = &userID
	s.role = &role
	s.dirty = true
}

// SignOut drops the user but keeps the session and its CSRF secret.
func (s *Session) SignOut() {
	if s.userID == nil && s.role == nil {
		return
	}
	s.userID = nil
	s.role = nil
	s.dirty = true
}

func (s *Session) CSRFSecret() string {
	if s == nil {
		return ""
	}
	return s.csrfSecret
}

// EnsureCSRFSecret generates the secret on first use.
func (s *Session) EnsureCSRFSecret() (string, error) {
	if s.csrfSecret != "" {
		return s.csrfSecret, nil
	}
	secret, err := csrf.NewSecret()
	if err != nil {
		return "", err
	}
	s.csrfSecret = secret
	s.dirty = true
	return secret, nil
}

// Dirty reports whether the cookie must be rewritten.
func (s *Session) Dirty() bool {
	return s != nil && s.dirty
}
