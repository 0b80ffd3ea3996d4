package memory

import (
	"context"
	"sync"

	"github.com/markpy98/masteryai/internal/core/domain"
	"github.com/markpy98/masteryai/internal/core/ports/driven"
)

// Ensure DocumentStore implements the interface.
var _ driven.DocumentStore = (*DocumentStore)(nil)

// DocumentStore is an in-memory implementation of driven.DocumentStore.
// New documents are prepended so List returns most-recently-created
// first, matching the SQLite adapter's ordering.
type DocumentStore struct {
	mu   sync.RWMutex
	docs []domain.Document
}

// NewDocumentStore creates a new in-memory document store.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{}
}

// List returns all documents, most recently created first.
func (s *DocumentStore) List(_ context.Context) ([]domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Document, len(s.docs))
	copy(out, s.docs)
	return out, nil
}

// Save stores or updates a document.
func (s *DocumentStore) Save(_ context.Context, doc *domain.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.docs {
		if s.docs[i].ID == doc.ID {
			s.docs[i] = *doc
			return nil
		}
	}
	s.docs = append([]domain.Document{*doc}, s.docs...)
	return nil
}

// Delete removes a document by id.
func (s *DocumentStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.docs {
		if s.docs[i].ID == id {
			s.docs = append(s.docs[:i], s.docs[i+1:]...)
			return nil
		}
	}
	return nil
}

// ReplaceAll overwrites the entire document set.
func (s *DocumentStore) ReplaceAll(_ context.Context, docs []domain.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs = make([]domain.Document, len(docs))
	copy(s.docs, docs)
	return nil
}
