package driving

import (
	"context"

	"github.com/custodia-labs/corpus-cli/internal/core/domain"
)

// OutlineService exposes Markdown heading structure across the document set.
type OutlineService interface {
	// HeadingIndex recomputes the heading index over all loaded documents.
	HeadingIndex(ctx context.Context) (domain.HeadingIndex, error)

	// SuggestSplitLevel proposes the default heading level to split on.
	SuggestSplitLevel(ctx context.Context) (int, error)
}
