package usecase

import (
	"context"
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidInput       = errors.New("invalid input")
)

// Event types published after successful writes.
const (
	EventJobPostCreated     = "job_post_created"
	EventJobPostUpdated     = "job_post_updated"
	EventJobPostDeleted     = "job_post_deleted"
	EventApplicationCreated = "application_created"
	EventApplicationUpdated = "application_updated"
	EventOfferCreated       = "offer_created"
	EventOfferUpdated       = "offer_updated"
)

// EventPublisher fans write notifications out to live clients.
type EventPublisher interface {
	Publish(eventType string, id int64)
}

// Cache is the subset of the Redis cache the use cases rely on. A nil Cache
// disables caching.
type Cache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

func publish(p EventPublisher, eventType string, id int64) {
	if p == nil {
		return
	}
	p.Publish(eventType, id)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func trimmed(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}

func ptrOf[T any](v T) *T {
	return &v
}

func orDefault[T any](p *T, def T) *T {
	if p != nil {
		return p
	}
	return &def
}
