// Package persist provides the narrow key-value capability used for durable
// UI preferences, with in-memory and bolt-backed implementations.
package persist

import (
	"errors"
	"sync"
)

// ErrNoKey is returned by Get when the key has never been set.
var ErrNoKey = errors.New("no such key")

// Store is the key-value capability injected into components that persist a
// preference. Implementations must be safe for concurrent use.
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
}

// Memory is a process-local Store, used as the default and in tests.
type Memory struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{values: map[string]string{}}
}

// Get returns the value stored under key, or ErrNoKey.
func (m *Memory) Get(key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	if !ok {
		return "", ErrNoKey
	}
	return v, nil
}

// Set stores value under key.
func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}
