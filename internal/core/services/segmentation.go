package services

import (
	"context"

	"github.com/custodia-labs/corpus-cli/internal/core/domain"
	"github.com/custodia-labs/corpus-cli/internal/core/ports/driven"
	"github.com/custodia-labs/corpus-cli/internal/core/ports/driving"
	"github.com/custodia-labs/corpus-cli/internal/logger"
	"github.com/custodia-labs/corpus-cli/internal/outline"
	"github.com/custodia-labs/corpus-cli/internal/segmenter"
)

// Ensure SegmentationOrchestrator implements the interface.
var _ driving.SegmentationService = (*SegmentationOrchestrator)(nil)

// SegmentationOrchestrator runs segmentation passes over the document
// set and manages the resulting chunk sequence.
type SegmentationOrchestrator struct {
	docStore   driven.DocumentStore
	chunkStore driven.ChunkStore
	idgen      driven.IDGenerator
}

// NewSegmentationOrchestrator creates a new segmentation service.
func NewSegmentationOrchestrator(
	docStore driven.DocumentStore,
	chunkStore driven.ChunkStore,
	idgen driven.IDGenerator,
) *SegmentationOrchestrator {
	return &SegmentationOrchestrator{
		docStore:   docStore,
		chunkStore: chunkStore,
		idgen:      idgen,
	}
}

// Segment runs a full pass over all documents and replaces the stored
// chunk sequence. A zero HeaderLevel on a hierarchical request falls
// back to the suggested split level for the current document set.
func (s *SegmentationOrchestrator) Segment(ctx context.Context, req driving.SegmentRequest) ([]domain.Chunk, error) {
	if s.docStore == nil || s.chunkStore == nil {
		return nil, domain.ErrNotImplemented
	}

	docs, err := s.docStore.ListDocuments(ctx)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, domain.ErrNoDocuments
	}

	level := req.HeaderLevel
	if req.Hierarchical {
		if level == 0 {
			level = outline.SuggestSplitLevel(outline.AnalyzeHeadingLevels(docs))
			logger.Debug("No split level given, using suggested level %d", level)
		}
		if level < domain.MinHeadingLevel || level > domain.MaxHeadingLevel {
			return nil, domain.ErrInvalidHeaderLevel
		}
	}

	logger.Section("Segmentation")
	logger.Debug("Documents: %d, granularity: %s, hierarchical: %t",
		len(docs), req.Granularity, req.Hierarchical)

	seg := segmenter.New(s.idgen)
	chunks := seg.Segment(docs, segmenter.Options{
		Granularity:  req.Granularity,
		Hierarchical: req.Hierarchical,
		HeaderLevel:  level,
		Columns:      req.Columns,
	})

	logger.Info("Produced %d chunks", len(chunks))

	if err := s.chunkStore.ReplaceChunks(ctx, chunks); err != nil {
		return nil, err
	}
	return chunks, nil
}

// Chunks returns the stored chunk sequence in segmentation order.
func (s *SegmentationOrchestrator) Chunks(ctx context.Context) ([]domain.Chunk, error) {
	if s.chunkStore == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.chunkStore.ListChunks(ctx)
}

// Annotate merges enrichment onto a stored chunk by id.
func (s *SegmentationOrchestrator) Annotate(ctx context.Context, chunkID string, e domain.Enrichment) (*domain.Chunk, error) {
	if s.chunkStore == nil {
		return nil, domain.ErrNotImplemented
	}

	chunk, err := s.chunkStore.GetChunk(ctx, chunkID)
	if err != nil {
		return nil, err
	}

	e.Apply(chunk)

	if err := s.chunkStore.UpdateChunk(ctx, chunk); err != nil {
		return nil, err
	}
	return chunk, nil
}
