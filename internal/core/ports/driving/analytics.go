package driving

import (
	"context"

	"github.com/custodia-labs/corpus-cli/internal/core/domain"
)

// AnalyticsService explores the stored chunk sequence lexically.
type AnalyticsService interface {
	// TopNGrams extracts the most frequent bigrams and trigrams.
	TopNGrams(ctx context.Context) (*domain.NGramReport, error)

	// Concordance finds keyword-in-context matches across all chunks.
	// Window is the context size in characters on each side.
	Concordance(ctx context.Context, keyword string, window int) ([]domain.ConcordanceEntry, error)
}
