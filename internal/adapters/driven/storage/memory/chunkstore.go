package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/corpus-cli/internal/core/domain"
	"github.com/custodia-labs/corpus-cli/internal/core/ports/driven"
)

// Ensure ChunkStore implements the interface.
var _ driven.ChunkStore = (*ChunkStore)(nil)

// ChunkStore is an in-memory implementation of driven.ChunkStore.
// It holds the chunk sequence of the most recent segmentation pass.
type ChunkStore struct {
	mu     sync.RWMutex
	chunks []domain.Chunk
	index  map[string]int
}

// NewChunkStore creates a new in-memory chunk store.
func NewChunkStore() *ChunkStore {
	return &ChunkStore{
		index: make(map[string]int),
	}
}

// ReplaceChunks discards the previous sequence and stores the new one.
func (s *ChunkStore) ReplaceChunks(_ context.Context, chunks []domain.Chunk) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chunks = make([]domain.Chunk, len(chunks))
	copy(s.chunks, chunks)
	s.index = make(map[string]int, len(chunks))
	for i := range s.chunks {
		s.index[s.chunks[i].ID] = i
	}
	return nil
}

// ListChunks returns all chunks in segmentation order.
func (s *ChunkStore) ListChunks(_ context.Context) ([]domain.Chunk, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.chunks) == 0 {
		return nil, nil
	}
	result := make([]domain.Chunk, len(s.chunks))
	copy(result, s.chunks)
	return result, nil
}

// GetChunk retrieves a chunk by ID.
func (s *ChunkStore) GetChunk(_ context.Context, id string) (*domain.Chunk, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.index[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	chunk := s.chunks[i]
	return &chunk, nil
}

// UpdateChunk stores changes to an existing chunk.
func (s *ChunkStore) UpdateChunk(_ context.Context, chunk *domain.Chunk) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.index[chunk.ID]
	if !ok {
		return domain.ErrNotFound
	}
	s.chunks[i] = *chunk
	return nil
}
