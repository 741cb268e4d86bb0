// Package store caches registry lookup results keyed by normalized CNPJ.
// Only resolved (found) results are cached; failures always retry the
// network on the next document.
package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"estagio-gateway/internal/registry"
)

// ErrNotFound is returned when no fresh cache entry exists for a CNPJ.
var ErrNotFound = errors.New("registry cache: not found")

type cachedResult struct {
	result   registry.LookupResult
	storedAt time.Time
}

// Memory is an in-process cache with TTL expiration. Safe for concurrent
// use.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]cachedResult
	ttl     time.Duration
}

// NewMemory creates a memory cache with the given TTL.
func NewMemory(ttl time.Duration) *Memory {
	return &Memory{
		entries: make(map[string]cachedResult),
		ttl:     ttl,
	}
}

// Save stores a lookup result under the normalized CNPJ.
func (m *Memory) Save(_ context.Context, cnpj string, result registry.LookupResult) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[cnpj] = cachedResult{result: result, storedAt: time.Now()}
	return nil
}

// Find returns the cached result for a CNPJ, or ErrNotFound when absent or
// expired.
func (m *Memory) Find(_ context.Context, cnpj string) (registry.LookupResult, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if cached, ok := m.entries[cnpj]; ok {
		if time.Since(cached.storedAt) < m.ttl {
			return cached.result, nil
		}
	}
	return registry.LookupResult{}, ErrNotFound
}
