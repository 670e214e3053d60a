package repository

import (
	"context"
	"sync"
)

// MemoryDocumentStore is an in-process DocumentStore. It backs the tests and
// STORAGE_BACKEND=memory (ephemeral runs with no external dependencies). The
// mutex only makes each individual call atomic; like the real backends it
// offers no cross-call isolation.

type MemoryDocumentStore struct {
	mu   sync.Mutex
	docs map[string][]byte
}

var _ DocumentStore = (*MemoryDocumentStore)(nil)

func NewMemoryDocumentStore() *MemoryDocumentStore {
	return &MemoryDocumentStore{docs: make(map[string][]byte)}
}

func (s *MemoryDocumentStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	payload, ok := s.docs[key]
	if !ok {
		return nil, false, nil
	}
	cp := make([]byte, len(payload))
	copy(cp, payload)
	return cp, true, nil
}

func (s *MemoryDocumentStore) Put(_ context.Context, key string, payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make([]byte, len(payload))
	copy(cp, payload)
	s.docs[key] = cp
	return nil
}

func (s *MemoryDocumentStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, key)
	return nil
}
