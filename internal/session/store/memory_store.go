// Package store provides session store implementations for the operator CLI and tests.
package store

import (
	"context"
	"sync"
)

// MemoryStore keeps session values in process memory.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStore creates an empty MemoryStore, optionally seeded with values.
func NewMemoryStore(seed map[string]string) *MemoryStore {
	values := make(map[string]string, len(seed))
	for key, value := range seed {
		values[key] = value
	}
	return &MemoryStore{values: values}
}

// Get returns the value stored under key.
func (m *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.values[key]
	return value, ok, nil
}

// Set stores value under key.
func (m *MemoryStore) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key] = value
	return nil
}

// SetMany stores all entries under one lock.
func (m *MemoryStore) SetMany(_ context.Context, entries map[string]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for key, value := range entries {
		m.values[key] = value
	}
	return nil
}

// Delete removes key. Deleting an absent key is not an error.
func (m *MemoryStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.values, key)
	return nil
}

// Clear removes every key.
func (m *MemoryStore) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values = make(map[string]string)
	return nil
}
