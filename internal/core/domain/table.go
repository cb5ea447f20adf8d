package domain

// Table is the parsed form of tabular content.
// Row order is preserved from the source; no sorting or deduplication.
// Row lengths may differ from the header length when the source is
// malformed, so column lookups must go through Field.
type Table struct {
	// Headers is the ordered list of column names.
	// Uniqueness is not enforced by the parser.
	Headers []string

	// Rows is the ordered sequence of field-value rows.
	Rows [][]string

	// TotalRows is the number of data rows.
	TotalRows int
}

// IsEmpty reports whether the table has no headers and no rows.
func (t Table) IsEmpty() bool {
	return len(t.Headers) == 0 && len(t.Rows) == 0
}

// Field returns the value of the named column in the given row.
// Out-of-range or unknown columns yield an empty string.
func (t Table) Field(row []string, column string) string {
	for i, h := range t.Headers {
		if h == column {
			if i < len(row) {
				return row[i]
			}
			return ""
		}
	}
	return ""
}

// ColumnStrategy selects how target columns of a row become chunks.
type ColumnStrategy string

const (
	// StrategyCombine merges all target columns of a row into one chunk.
	StrategyCombine ColumnStrategy = "combine"

	// StrategyDistinct makes each target column of a row its own chunk.
	StrategyDistinct ColumnStrategy = "distinct"
)

// ColumnRoleConfig classifies table columns for segmentation.
type ColumnRoleConfig struct {
	// TargetColumns are the columns whose values are the analyzable text.
	TargetColumns []string

	// ContextColumns are included as contextual metadata, not primary text.
	ContextColumns []string

	// SentimentContextColumns is the subset of ContextColumns flagged as
	// relevant to sentiment judgement. Informational only; it does not
	// change splitting behaviour by itself.
	SentimentContextColumns []string

	// Strategy selects combined or distinct row splitting.
	Strategy ColumnStrategy
}

// IsTarget reports whether the named column is a target column.
func (c ColumnRoleConfig) IsTarget(column string) bool {
	return containsString(c.TargetColumns, column)
}

// IsContext reports whether the named column is a context column.
func (c ColumnRoleConfig) IsContext(column string) bool {
	return containsString(c.ContextColumns, column)
}

// IsSentimentContext reports whether the named column is flagged for
// sentiment context.
func (c ColumnRoleConfig) IsSentimentContext(column string) bool {
	return containsString(c.SentimentContextColumns, column)
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
