// Package denylist tracks revoked token IDs. Logout feeds it, verification
// consults it. The default is a no-op: tokens then stay valid until natural
// expiry, which matches the stateless baseline.
package denylist

import (
	"context"
	"sync"
	"time"
)

type Denylist interface {
	// Revoke marks a token id as dead for the given remaining lifetime.
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	// Revoked reports whether the token id has been revoked. Lookup errors
	// are returned so callers can fail closed.
	Revoked(ctx context.Context, jti string) (bool, error)
}

type Noop struct{}

func (Noop) Revoke(context.Context, string, time.Duration) error { return nil }
func (Noop) Revoked(context.Context, string) (bool, error)       { return false, nil }

// Memory is a single-process denylist. Entries are pruned lazily on lookup.
type Memory struct {
	mu      sync.Mutex
	entries map[string]time.Time
}

func NewMemory() *Memory {
	return &Memory{entries: make(map[string]time.Time)}
}

func (m *Memory) Revoke(_ context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[jti] = time.Now().Add(ttl)
	return nil
}

func (m *Memory) Revoked(_ context.Context, jti string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	deadline, ok := m.entries[jti]
	if !ok {
		return false, nil
	}
	if time.Now().After(deadline) {
		delete(m.entries, jti)
		return false, nil
	}
	return true, nil
}
