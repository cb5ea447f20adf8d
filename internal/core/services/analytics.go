package services

import (
	"context"

	"github.com/custodia-labs/corpus-cli/internal/core/domain"
	"github.com/custodia-labs/corpus-cli/internal/core/ports/driven"
	"github.com/custodia-labs/corpus-cli/internal/core/ports/driving"
	"github.com/custodia-labs/corpus-cli/internal/lexical"
	"github.com/custodia-labs/corpus-cli/internal/logger"
)

// Ensure AnalyticsOrchestrator implements the interface.
var _ driving.AnalyticsService = (*AnalyticsOrchestrator)(nil)

// Config keys for analytics tuning.
const (
	keyNGramLimit = "analytics.ngram_limit"
	keyKwicWindow = "analytics.kwic_window"
)

// AnalyticsOrchestrator runs lexical analysis over the stored chunk
// sequence. Limits come from configuration with built-in defaults.
type AnalyticsOrchestrator struct {
	chunkStore  driven.ChunkStore
	configStore driven.ConfigStore
}

// NewAnalyticsOrchestrator creates a new analytics service.
func NewAnalyticsOrchestrator(chunkStore driven.ChunkStore, configStore driven.ConfigStore) *AnalyticsOrchestrator {
	return &AnalyticsOrchestrator{
		chunkStore:  chunkStore,
		configStore: configStore,
	}
}

// TopNGrams extracts the most frequent bigrams and trigrams.
func (s *AnalyticsOrchestrator) TopNGrams(ctx context.Context) (*domain.NGramReport, error) {
	if s.chunkStore == nil {
		return nil, domain.ErrNotImplemented
	}

	chunks, err := s.chunkStore.ListChunks(ctx)
	if err != nil {
		return nil, err
	}

	limit := s.configInt(keyNGramLimit)
	logger.Debug("N-gram extraction over %d chunks, limit %d", len(chunks), limit)
	return lexical.TopNGrams(chunks, limit), nil
}

// Concordance finds keyword-in-context matches across all chunks.
// A non-positive window falls back to the configured or default size.
func (s *AnalyticsOrchestrator) Concordance(ctx context.Context, keyword string, window int) ([]domain.ConcordanceEntry, error) {
	if s.chunkStore == nil {
		return nil, domain.ErrNotImplemented
	}
	if keyword == "" {
		return nil, domain.ErrInvalidInput
	}

	chunks, err := s.chunkStore.ListChunks(ctx)
	if err != nil {
		return nil, err
	}

	if window <= 0 {
		window = s.configInt(keyKwicWindow)
	}
	logger.Debug("Concordance for %q over %d chunks, window %d", keyword, len(chunks), window)
	return lexical.Concordance(chunks, keyword, window), nil
}

// configInt reads a tuning value, 0 when unset. The lexical package
// substitutes its own default for non-positive values.
func (s *AnalyticsOrchestrator) configInt(key string) int {
	if s.configStore == nil {
		return 0
	}
	return s.configStore.GetInt(key)
}
