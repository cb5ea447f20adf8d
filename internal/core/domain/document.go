package domain

import "time"

// DocumentKind classifies how a document's content is interpreted.
type DocumentKind string

const (
	// KindPlain is free prose with no recognised structure.
	KindPlain DocumentKind = "plain"

	// KindMarkdown is text with Markdown heading structure.
	KindMarkdown DocumentKind = "markdown"

	// KindTabular is CSV-like delimited rows and columns.
	KindTabular DocumentKind = "tabular"
)

// SourceDocument is an ingested unit of input.
// Content and Kind are assigned once at ingestion and never recomputed
// on the same content.
type SourceDocument struct {
	// ID is the unique identifier for the document.
	ID string

	// Name is the display name (file name, or a fixed literal for pasted text).
	Name string

	// Content is the full decoded text.
	Content string

	// Kind is the classification assigned by the source classifier.
	Kind DocumentKind

	// TableHeaders holds the parsed header row for tabular documents.
	// Empty for plain and markdown documents.
	TableHeaders []string

	// CreatedAt is when the document was ingested.
	CreatedAt time.Time
}

// IsTabular reports whether the document content is interpreted as a table.
func (d *SourceDocument) IsTabular() bool {
	return d.Kind == KindTabular
}
