package driven

import (
	"context"

	"github.com/custodia-labs/corpus-cli/internal/core/domain"
)

// Enricher is the external LLM-backed analysis collaborator. It consumes
// the chunk sequence and returns per-chunk annotations keyed by chunk id.
// The pipeline never calls an LLM itself; this port exists so callers can
// plug in their own enrichment step and feed results back via Annotate.
type Enricher interface {
	// Enrich analyses the given chunks and returns annotations by chunk id.
	Enrich(ctx context.Context, chunks []domain.Chunk) (map[string]domain.Enrichment, error)
}
