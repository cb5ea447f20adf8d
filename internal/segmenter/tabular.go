package segmenter

import (
	"strings"

	"github.com/custodia-labs/corpus-cli/internal/core/domain"
	"github.com/custodia-labs/corpus-cli/internal/tabular"
)

// tabularCombined merges all target columns of each row into one chunk.
// Rows whose target text is empty after trimming are skipped entirely.
func (s *Segmenter) tabularCombined(e *emitter, doc *domain.SourceDocument, cfg domain.ColumnRoleConfig) {
	table := tabular.Parse(doc.Content)

	for _, row := range table.Rows {
		var parts []string
		for _, col := range cfg.TargetColumns {
			v := strings.TrimSpace(table.Field(row, col))
			if v == "" {
				continue
			}
			if len(cfg.TargetColumns) > 1 {
				parts = append(parts, col+": "+v)
			} else {
				parts = append(parts, v)
			}
		}
		if len(parts) == 0 {
			continue
		}

		text := strings.Join(parts, "\n")
		if meta := metaBlock(table, row, cfg); meta != "" {
			text = meta + "\n" + text
		}
		e.emit(doc, doc.Name, domain.GranularityRow, text)
	}
}

// tabularDistinct emits one chunk per non-empty target column of each
// row, labeled "<document> > <column>". A row may contribute zero, one,
// or many chunks.
func (s *Segmenter) tabularDistinct(e *emitter, doc *domain.SourceDocument, cfg domain.ColumnRoleConfig) {
	table := tabular.Parse(doc.Content)

	for _, row := range table.Rows {
		meta := metaBlock(table, row, cfg)

		for _, col := range cfg.TargetColumns {
			v := strings.TrimSpace(table.Field(row, col))
			if v == "" {
				continue
			}

			var b strings.Builder
			if meta != "" {
				b.WriteString(meta)
				b.WriteString("\n")
			}
			b.WriteString("[Column: " + col + "]\n")
			b.WriteString(v)

			e.emit(doc, doc.Name+" > "+col, domain.GranularityRow, b.String())
		}
	}
}

// metaBlock renders the contextual metadata line for a row from its
// non-empty context-column values. Sentiment-flagged values carry an
// extra marker. Returns "" when no context value is present.
func metaBlock(table domain.Table, row []string, cfg domain.ColumnRoleConfig) string {
	var parts []string
	for _, col := range cfg.ContextColumns {
		v := strings.TrimSpace(table.Field(row, col))
		if v == "" {
			continue
		}
		part := col + ": " + v
		if cfg.IsSentimentContext(col) {
			part = "[Sentiment Context] " + part
		}
		parts = append(parts, part)
	}
	if len(parts) == 0 {
		return ""
	}
	return "[Meta: " + strings.Join(parts, "; ") + "]"
}
