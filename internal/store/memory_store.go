package store

import (
	"context"
	"sync"
)

// MemoryDocuments keeps documents in-process. Used by tests and as a
// fallback when no durable store is wanted.
type MemoryDocuments struct {
	mu   sync.RWMutex
	docs map[string]string
}

func NewMemoryDocuments() *MemoryDocuments {
	return &MemoryDocuments{docs: make(map[string]string)}
}

func (m *MemoryDocuments) Get(ctx context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	raw, ok := m.docs[key]
	return raw, ok, nil
}

func (m *MemoryDocuments) Set(ctx context.Context, key, raw string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs[key] = raw
	return nil
}

func (m *MemoryDocuments) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.docs, key)
	return nil
}

func (m *MemoryDocuments) Reset(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs = make(map[string]string)
	return nil
}
