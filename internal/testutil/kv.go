package testutil

import (
	"context"
	"sync"

	"github.com/italianiroberto75-cyber/FRIGO/internal/storage"
)

// MemoryKV is an in-process key-value store with switchable failures.
type MemoryKV struct {
	GetErr error
	SetErr error
	data   map[string][]byte
	sets   int
	mu     sync.Mutex
}

// NewMemoryKV returns an empty store.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string][]byte)}
}

// Get implements service.KeyValueStore.
func (m *MemoryKV) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	v, ok := m.data[key]
	if !ok {
		return nil, storage.ErrKeyNotFound
	}
	return append([]byte(nil), v...), nil
}

// Set implements service.KeyValueStore.
func (m *MemoryKV) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sets++
	if m.SetErr != nil {
		return m.SetErr
	}
	m.data[key] = append([]byte(nil), value...)
	return nil
}

// Delete implements service.KeyValueStore.
func (m *MemoryKV) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// Close implements service.KeyValueStore.
func (m *MemoryKV) Close() error {
	return nil
}

// SetFailure switches write failures on or off.
func (m *MemoryKV) SetFailure(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SetErr = err
}

// Writes returns the number of Set calls, failed ones included.
func (m *MemoryKV) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sets
}
