package driven

import (
	"context"

	"github.com/custodia-labs/corpus-cli/internal/core/domain"
)

// ChunkStore persists the chunk sequence of the current segmentation pass.
type ChunkStore interface {
	// ReplaceChunks discards the previous chunk sequence and stores the
	// new one. A full re-segmentation always goes through this call.
	ReplaceChunks(ctx context.Context, chunks []domain.Chunk) error

	// ListChunks returns all chunks in segmentation order.
	ListChunks(ctx context.Context) ([]domain.Chunk, error)

	// GetChunk retrieves a chunk by ID.
	GetChunk(ctx context.Context, id string) (*domain.Chunk, error)

	// UpdateChunk stores enrichment changes to an existing chunk.
	UpdateChunk(ctx context.Context, chunk *domain.Chunk) error
}
