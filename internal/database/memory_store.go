package database

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"vivopizza/internal/domain"
)

// MemoryStore keeps documents in process memory. Intended for development
// and tests; nothing survives a restart.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string][]domain.Document
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string][]domain.Document)}
}

// CreateDocument stores a copy of doc under a fresh UUID in "id".
func (s *MemoryStore) CreateDocument(ctx context.Context, collection string, doc domain.Document) (domain.Document, error) {
	if collection == "" {
		return nil, ErrEmptyCollection
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	stored := doc.Clone()
	stored["id"] = uuid.NewString()

	s.mu.Lock()
	s.collections[collection] = append(s.collections[collection], stored)
	s.mu.Unlock()

	return stored.Clone(), nil
}

// GetDocuments returns matching documents, newest first.
func (s *MemoryStore) GetDocuments(ctx context.Context, collection string, filter domain.Document, limit int) ([]domain.Document, error) {
	if collection == "" {
		return nil, ErrEmptyCollection
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	docs := s.collections[collection]
	results := make([]domain.Document, 0, len(docs))
	for i := len(docs) - 1; i >= 0; i-- {
		if !docs[i].Matches(filter) {
			continue
		}
		results = append(results, docs[i].Clone())
		if limit > 0 && len(results) == limit {
			break
		}
	}
	return results, nil
}

// Count returns the number of documents stored in collection.
func (s *MemoryStore) Count(collection string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.collections[collection])
}

// Ping always succeeds.
func (s *MemoryStore) Ping(ctx context.Context) error {
	return nil
}

// Close is a no-op.
func (s *MemoryStore) Close() error {
	return nil
}
