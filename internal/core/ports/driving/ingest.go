package driving

import (
	"context"

	"github.com/custodia-labs/corpus-cli/internal/core/domain"
)

// IngestService manages the active document set.
type IngestService interface {
	// Ingest classifies the given text and stores it as a new document.
	// Name is the file name, or a fixed literal for pasted text.
	Ingest(ctx context.Context, name, content string) (*domain.SourceDocument, error)

	// Get retrieves a document by ID.
	Get(ctx context.Context, id string) (*domain.SourceDocument, error)

	// List returns all documents in ingestion order.
	List(ctx context.Context) ([]domain.SourceDocument, error)

	// Delete removes a document from the active set. Chunks produced
	// in earlier passes are unaffected.
	Delete(ctx context.Context, id string) error

	// SuggestColumns parses a tabular document and proposes column roles.
	// Returns domain.ErrNotTabular for plain or markdown documents.
	SuggestColumns(ctx context.Context, id string) (*domain.ColumnRoleConfig, error)
}
