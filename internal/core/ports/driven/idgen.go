package driven

// IDGenerator produces unique identifiers for documents and chunks.
// Injecting the generator keeps segmentation deterministic under test.
type IDGenerator interface {
	// NewID returns a new unique identifier.
	NewID() string
}
