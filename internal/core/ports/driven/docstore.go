package driven

import (
	"context"

	"github.com/custodia-labs/corpus-cli/internal/core/domain"
)

// DocumentStore persists ingested source documents.
type DocumentStore interface {
	// SaveDocument stores a document.
	SaveDocument(ctx context.Context, doc *domain.SourceDocument) error

	// GetDocument retrieves a document by ID.
	GetDocument(ctx context.Context, id string) (*domain.SourceDocument, error)

	// ListDocuments returns all documents in ingestion order.
	ListDocuments(ctx context.Context) ([]domain.SourceDocument, error)

	// DeleteDocument removes a document. Chunks produced from it in
	// earlier passes are not affected.
	DeleteDocument(ctx context.Context, id string) error
}
