// Package domain defines the core business entities for Corpus.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - SourceDocument: An ingested unit of input text
//   - Table: The parsed form of tabular content
//   - ColumnRoleConfig: Column roles for tabular segmentation
//   - Chunk: One atomic unit of segmentation output
//   - HeadingIndex: Heading titles per Markdown level
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
