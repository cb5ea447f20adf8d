package domain

// Granularity is the splitting strategy that produced a chunk.
type Granularity string

const (
	// GranularityDocument keeps the whole document as one chunk.
	GranularityDocument Granularity = "document"

	// GranularityParagraph splits on blank-line boundaries.
	GranularityParagraph Granularity = "paragraph"

	// GranularitySentence splits on terminal punctuation runs.
	GranularitySentence Granularity = "sentence"

	// GranularityLine splits on single line breaks.
	GranularityLine Granularity = "line"

	// GranularitySection splits at Markdown heading lines of any level.
	GranularitySection Granularity = "section"

	// GranularitySubsection splits hierarchically one heading level
	// below the configured header level.
	GranularitySubsection Granularity = "subsection"

	// GranularityTurn splits before speaker-turn lines ("SPEAKER: ...").
	GranularityTurn Granularity = "turn"

	// GranularityPhrase splits on commas and semicolons.
	GranularityPhrase Granularity = "phrase"

	// GranularityResponse splits survey-response blocks on the row
	// delimiter marker, or by newline heuristics when absent.
	GranularityResponse Granularity = "response"

	// GranularityHeading is like section, tagged for heading rendering.
	GranularityHeading Granularity = "heading"

	// GranularityRow marks chunks produced from table rows.
	GranularityRow Granularity = "row"
)

// RowDelimiter is the internal marker inserted between rows when tabular
// content is pre-joined into a single response block. Response-granularity
// splitting looks for this marker first.
const RowDelimiter = "<<<ROW>>>"

// Chunk is the atomic unit of segmentation output.
// A full re-segmentation discards the previous chunk sequence; chunk
// identity is not preserved across passes.
type Chunk struct {
	// ID is the unique identifier assigned at creation.
	ID string `json:"id"`

	// Text is the segment content, trimmed of surrounding whitespace.
	Text string `json:"text"`

	// Granularity is the splitting strategy that produced this chunk.
	Granularity Granularity `json:"granularity"`

	// SourceID references the originating document. Non-owning.
	SourceID string `json:"source_id"`

	// SourceLabel is the display label, composed with section or column
	// labels where applicable ("<document> > <section>").
	SourceLabel string `json:"source_label"`

	// Position is the ordinal position within the segmentation pass.
	Position int `json:"position"`

	// Tags are assigned by the external enrichment step. The splitter
	// always leaves them empty.
	Tags []string `json:"tags,omitempty"`

	// Sentiment is assigned by the external enrichment step.
	Sentiment string `json:"sentiment,omitempty"`

	// Analysis is assigned by the external enrichment step.
	Analysis string `json:"analysis,omitempty"`
}

// Enrichment carries annotations produced by the external analysis step,
// merged onto an existing chunk by identity.
type Enrichment struct {
	// Tags to assign. Nil leaves existing tags untouched.
	Tags []string

	// Sentiment to assign. Empty leaves the existing value untouched.
	Sentiment string

	// Analysis to assign. Empty leaves the existing value untouched.
	Analysis string
}

// Apply merges the enrichment onto the chunk in place.
func (e Enrichment) Apply(c *Chunk) {
	if e.Tags != nil {
		c.Tags = e.Tags
	}
	if e.Sentiment != "" {
		c.Sentiment = e.Sentiment
	}
	if e.Analysis != "" {
		c.Analysis = e.Analysis
	}
}
