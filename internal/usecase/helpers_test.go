package usecase

import (
	"context"
	"encoding/json"
	"path"
	"sync"
	"testing"
	"time"

	"job-board/internal/repository/memory"
	"job-board/internal/validation"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeCache struct {
	mu      sync.Mutex
	items   map[string][]byte
	deletes []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{items: map[string][]byte{}}
}

func (c *fakeCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, ok := c.items[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (c *fakeCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.items[key] = b
	return nil
}

func (c *fakeCache) DeleteByPattern(_ context.Context, pattern string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.deletes = append(c.deletes, pattern)
	for k := range c.items {
		if ok, _ := path.Match(pattern, k); ok {
			delete(c.items, k)
		}
	}
	return nil
}

func (c *fakeCache) has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.items[key]
	return ok
}

type publishedEvent struct {
	Type string
	ID   int64
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []publishedEvent
}

func (p *recordingPublisher) Publish(eventType string, id int64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, publishedEvent{Type: eventType, ID: id})
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}

func newTestUserUsecase(store *memory.Store) *User {
	u := NewUserUsecase(store.Users())
	u.cost = bcrypt.MinCost
	return u
}

func requireFieldError(t *testing.T, err error, field, msg string) {
	t.Helper()
	verrs, ok := validation.As(err)
	require.Truef(t, ok, "expected validation errors, got %v", err)
	require.Containsf(t, verrs[field], msg, "errors: %v", verrs)
}

func str(s string) *string { return &s }
func num(n int) *int       { return &n }
