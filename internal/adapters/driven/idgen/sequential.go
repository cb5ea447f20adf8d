package idgen

import (
	"fmt"
	"sync"

	"github.com/custodia-labs/corpus-cli/internal/core/ports/driven"
)

// Ensure Sequential implements the interface.
var _ driven.IDGenerator = (*Sequential)(nil)

// Sequential generates deterministic monotonic identifiers. Intended for
// tests, where segmentation output must be reproducible.
type Sequential struct {
	mu     sync.Mutex
	prefix string
	next   int
}

// NewSequential creates a generator producing "<prefix>-1", "<prefix>-2", ...
func NewSequential(prefix string) *Sequential {
	return &Sequential{prefix: prefix}
}

// NewID returns the next identifier in the sequence.
func (g *Sequential) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.next++
	return fmt.Sprintf("%s-%d", g.prefix, g.next)
}
