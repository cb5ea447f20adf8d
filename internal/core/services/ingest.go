package services

import (
	"context"
	"strings"
	"time"

	"github.com/custodia-labs/corpus-cli/internal/classifier"
	"github.com/custodia-labs/corpus-cli/internal/core/domain"
	"github.com/custodia-labs/corpus-cli/internal/core/ports/driven"
	"github.com/custodia-labs/corpus-cli/internal/core/ports/driving"
	"github.com/custodia-labs/corpus-cli/internal/logger"
	"github.com/custodia-labs/corpus-cli/internal/tabular"
)

// Ensure IngestionService implements the interface.
var _ driving.IngestService = (*IngestionService)(nil)

// PastedName is the document name used when content arrives without a
// file name, e.g. piped through stdin.
const PastedName = "pasted text"

// IngestionService classifies raw text and manages the document set.
type IngestionService struct {
	docStore driven.DocumentStore
	idgen    driven.IDGenerator
}

// NewIngestionService creates a new ingestion service.
func NewIngestionService(docStore driven.DocumentStore, idgen driven.IDGenerator) *IngestionService {
	return &IngestionService{
		docStore: docStore,
		idgen:    idgen,
	}
}

// Ingest classifies the given text and stores it as a new document.
func (s *IngestionService) Ingest(ctx context.Context, name, content string) (*domain.SourceDocument, error) {
	if s.docStore == nil {
		return nil, domain.ErrNotImplemented
	}
	if strings.TrimSpace(content) == "" {
		return nil, domain.ErrInvalidInput
	}
	if name == "" {
		name = PastedName
	}

	result := classifier.Classify(name, content)
	logger.Debug("Classified %q as %s", name, result.Kind)

	doc := &domain.SourceDocument{
		ID:           s.idgen.NewID(),
		Name:         name,
		Content:      content,
		Kind:         result.Kind,
		TableHeaders: result.TableHeaders,
		CreatedAt:    time.Now(),
	}

	if err := s.docStore.SaveDocument(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Get retrieves a document by ID.
func (s *IngestionService) Get(ctx context.Context, id string) (*domain.SourceDocument, error) {
	if s.docStore == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.docStore.GetDocument(ctx, id)
}

// List returns all documents in ingestion order.
func (s *IngestionService) List(ctx context.Context) ([]domain.SourceDocument, error) {
	if s.docStore == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.docStore.ListDocuments(ctx)
}

// Delete removes a document from the active set.
func (s *IngestionService) Delete(ctx context.Context, id string) error {
	if s.docStore == nil {
		return domain.ErrNotImplemented
	}
	if _, err := s.docStore.GetDocument(ctx, id); err != nil {
		return err
	}
	return s.docStore.DeleteDocument(ctx, id)
}

// SuggestColumns parses a tabular document and proposes column roles.
func (s *IngestionService) SuggestColumns(ctx context.Context, id string) (*domain.ColumnRoleConfig, error) {
	if s.docStore == nil {
		return nil, domain.ErrNotImplemented
	}

	doc, err := s.docStore.GetDocument(ctx, id)
	if err != nil {
		return nil, err
	}
	if !doc.IsTabular() {
		return nil, domain.ErrNotTabular
	}

	table := tabular.Parse(doc.Content)
	cfg := tabular.SuggestColumnRoles(table)
	logger.Debug("Column advisor: %d target, %d context, %d sentiment",
		len(cfg.TargetColumns), len(cfg.ContextColumns), len(cfg.SentimentContextColumns))
	return &cfg, nil
}
