package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates functionality is not yet available.
	ErrNotImplemented = errors.New("not implemented")

	// ErrInvalidHeaderLevel indicates a header level outside 1-6.
	// Callers must clamp before invoking the splitter.
	ErrInvalidHeaderLevel = errors.New("header level must be between 1 and 6")

	// ErrNoDocuments indicates no documents are loaded.
	ErrNoDocuments = errors.New("no documents ingested")

	// ErrNotTabular indicates a column operation on a non-tabular document.
	ErrNotTabular = errors.New("document is not tabular")
)
