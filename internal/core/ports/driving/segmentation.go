package driving

import (
	"context"

	"github.com/custodia-labs/corpus-cli/internal/core/domain"
)

// SegmentRequest configures a segmentation pass.
type SegmentRequest struct {
	// Granularity is the requested splitting strategy.
	Granularity domain.Granularity

	// Hierarchical enables heading-based decomposition for text and
	// Markdown documents.
	Hierarchical bool

	// HeaderLevel is the heading level (1-6) hierarchical splitting
	// partitions on.
	HeaderLevel int

	// Columns configures tabular documents. Zero value means the column
	// advisor runs per tabular document.
	Columns *domain.ColumnRoleConfig
}

// SegmentationService produces and annotates the chunk sequence.
type SegmentationService interface {
	// Segment runs a full segmentation pass over all documents and
	// replaces the stored chunk sequence. Chunk identity from previous
	// passes is invalidated.
	Segment(ctx context.Context, req SegmentRequest) ([]domain.Chunk, error)

	// Chunks returns the stored chunk sequence in segmentation order.
	Chunks(ctx context.Context) ([]domain.Chunk, error)

	// Annotate merges enrichment onto a stored chunk by id.
	Annotate(ctx context.Context, chunkID string, e domain.Enrichment) (*domain.Chunk, error)
}
