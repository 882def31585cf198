// Package cache provides the key-value cache the enrichment stage uses to
// avoid redundant metadata lookups. Values are opaque strings (callers store
// JSON); entries are idempotent and safe to populate speculatively, so a
// cancelled pipeline run leaves nothing to clean up.
package cache

import (
	"context"
	"sync"
)

// Cache is the get/set/get-or-set contract shared by every backend.
type Cache interface {
	// Get returns the cached value and whether the key was present.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set stores a value under key, overwriting any previous entry.
	Set(ctx context.Context, key string, value string) error
	// GetOrSet returns the cached value, invoking produce only on a miss and
	// writing its result back before returning it.
	GetOrSet(ctx context.Context, key string, produce func(context.Context) (string, error)) (string, error)
}

// getOrSet implements the shared miss-then-write path on top of Get/Set.
func getOrSet(ctx context.Context, c Cache, key string, produce func(context.Context) (string, error)) (string, error) {
	if v, ok, err := c.Get(ctx, key); err != nil {
		return "", err
	} else if ok {
		return v, nil
	}

	fresh, err := produce(ctx)
	if err != nil {
		return "", err
	}
	if err := c.Set(ctx, key, fresh); err != nil {
		return "", err
	}
	return fresh, nil
}

// Memory is an in-process Cache used by tests and single-shot runs.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]string
}

func NewMemory() *Memory {
	return &Memory{entries: make(map[string]string)}
}

func (m *Memory) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.entries[key]
	return v, ok, nil
}

func (m *Memory) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = value
	return nil
}

func (m *Memory) GetOrSet(ctx context.Context, key string, produce func(context.Context) (string, error)) (string, error) {
	return getOrSet(ctx, m, key, produce)
}

// Len reports the number of stored entries.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
