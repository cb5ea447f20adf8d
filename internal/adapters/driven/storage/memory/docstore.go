// Package memory provides in-memory implementations of the storage
// ports. Used in tests and wherever persistence is not required.
package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/corpus-cli/internal/core/domain"
	"github.com/custodia-labs/corpus-cli/internal/core/ports/driven"
)

// Ensure DocumentStore implements the interface.
var _ driven.DocumentStore = (*DocumentStore)(nil)

// DocumentStore is an in-memory implementation of driven.DocumentStore.
// Listing preserves ingestion order.
type DocumentStore struct {
	mu        sync.RWMutex
	documents map[string]domain.SourceDocument
	order     []string
}

// NewDocumentStore creates a new in-memory document store.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{
		documents: make(map[string]domain.SourceDocument),
	}
}

// SaveDocument stores or updates a document. New documents append to
// the listing order; updates keep their position.
func (s *DocumentStore) SaveDocument(_ context.Context, doc *domain.SourceDocument) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.documents[doc.ID]; !exists {
		s.order = append(s.order, doc.ID)
	}
	s.documents[doc.ID] = *doc
	return nil
}

// GetDocument retrieves a document by ID.
func (s *DocumentStore) GetDocument(_ context.Context, id string) (*domain.SourceDocument, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.documents[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &doc, nil
}

// ListDocuments returns all documents in ingestion order.
func (s *DocumentStore) ListDocuments(_ context.Context) ([]domain.SourceDocument, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var result []domain.SourceDocument
	for _, id := range s.order {
		result = append(result, s.documents[id])
	}
	return result, nil
}

// DeleteDocument removes a document. Deleting an unknown ID is a no-op.
func (s *DocumentStore) DeleteDocument(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.documents[id]; !exists {
		return nil
	}
	delete(s.documents, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}
