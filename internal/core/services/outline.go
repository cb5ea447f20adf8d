package services

import (
	"context"

	"github.com/custodia-labs/corpus-cli/internal/core/domain"
	"github.com/custodia-labs/corpus-cli/internal/core/ports/driven"
	"github.com/custodia-labs/corpus-cli/internal/core/ports/driving"
	"github.com/custodia-labs/corpus-cli/internal/outline"
)

// Ensure OutlineAnalyzer implements the interface.
var _ driving.OutlineService = (*OutlineAnalyzer)(nil)

// OutlineAnalyzer exposes Markdown heading structure across the
// document set. The index is recomputed from stored content on every
// call, so it never goes stale against the document set.
type OutlineAnalyzer struct {
	docStore driven.DocumentStore
}

// NewOutlineAnalyzer creates a new outline service.
func NewOutlineAnalyzer(docStore driven.DocumentStore) *OutlineAnalyzer {
	return &OutlineAnalyzer{docStore: docStore}
}

// HeadingIndex recomputes the heading index over all loaded documents.
// An empty document set yields an empty index.
func (s *OutlineAnalyzer) HeadingIndex(ctx context.Context) (domain.HeadingIndex, error) {
	if s.docStore == nil {
		return nil, domain.ErrNotImplemented
	}
	docs, err := s.docStore.ListDocuments(ctx)
	if err != nil {
		return nil, err
	}
	return outline.AnalyzeHeadingLevels(docs), nil
}

// SuggestSplitLevel proposes the default heading level to split on.
func (s *OutlineAnalyzer) SuggestSplitLevel(ctx context.Context) (int, error) {
	index, err := s.HeadingIndex(ctx)
	if err != nil {
		return 0, err
	}
	return outline.SuggestSplitLevel(index), nil
}
