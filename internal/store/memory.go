package store

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/pryank18/ArchaeologyWala/pkg/storage"
)

// MemoryProvider is an in-memory key-value provider for scaffolding and
// tests. It satisfies the same contract as the durable providers so
// services never need to care which one they run on.
type MemoryProvider struct {
	mu     sync.RWMutex
	values map[string][]byte
}

var (
	_ storage.Provider           = (*MemoryProvider)(nil)
	_ storage.CapabilityReporter = (*MemoryProvider)(nil)
)

// NewMemoryProvider creates an empty in-memory provider.
func NewMemoryProvider() *MemoryProvider {
	return &MemoryProvider{values: make(map[string][]byte)}
}

// Get returns the stored value for key, reporting found=false when absent.
func (m *MemoryProvider) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.values[key]
	if !ok {
		return nil, false, nil
	}
	copied := make([]byte, len(value))
	copy(copied, value)
	return copied, true, nil
}

// Set stores value under key, replacing any previous value.
func (m *MemoryProvider) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := make([]byte, len(value))
	copy(copied, value)
	m.values[key] = copied
	return nil
}

// Delete removes key. Deleting an absent key is not an error.
func (m *MemoryProvider) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.values, key)
	return nil
}

// Keys lists stored keys with the supplied prefix, sorted for determinism.
func (m *MemoryProvider) Keys(_ context.Context, prefix string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]string, 0, len(m.values))
	for key := range m.values {
		if strings.HasPrefix(key, prefix) {
			out = append(out, key)
		}
	}
	sort.Strings(out)
	return out, nil
}

// Capabilities reports the provider as volatile.
func (m *MemoryProvider) Capabilities() storage.Capabilities {
	return storage.Capabilities{Durable: false}
}
