// Package idgen provides identifier generators for documents and chunks.
package idgen

import (
	"github.com/google/uuid"

	"github.com/custodia-labs/corpus-cli/internal/core/ports/driven"
)

// Ensure UUID implements the interface.
var _ driven.IDGenerator = (*UUID)(nil)

// UUID generates random UUIDv4 identifiers.
type UUID struct{}

// NewUUID creates a new UUID generator.
func NewUUID() *UUID {
	return &UUID{}
}

// NewID returns a new random identifier.
func (g *UUID) NewID() string {
	return uuid.New().String()
}
