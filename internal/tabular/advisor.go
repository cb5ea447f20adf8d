package tabular

import (
	"strconv"
	"strings"

	"github.com/custodia-labs/corpus-cli/internal/core/domain"
)

// Heuristic thresholds for column classification. These are best-effort
// judgement calls, tunable rather than proven-optimal.
const (
	// sampleRows caps how many data rows are inspected per column.
	sampleRows = 30

	// targetNonNumericRatio is the minimum non-numeric fraction for a
	// column to qualify as analyzable text without a keyword match.
	targetNonNumericRatio = 0.6

	// targetMinAvgLen is the minimum average value length for a column
	// to qualify as analyzable text without a keyword match.
	targetMinAvgLen = 30

	// contextMaxAvgLen marks short values as contextual metadata.
	contextMaxAvgLen = 20

	// contextMinNonNumericRatio separates short text labels from metrics.
	contextMinNonNumericRatio = 0.1

	// metricMaxNonNumericRatio marks mostly numeric columns as metrics.
	metricMaxNonNumericRatio = 0.1
)

// textKeywords mark a header as free-text regardless of sampled values.
var textKeywords = []string{
	"text", "comment", "description", "content", "feedback", "response",
	"answer", "review", "message", "note", "verbatim", "remark",
	"opinion", "suggestion", "quote",
}

// SuggestColumnRoles proposes which columns hold analyzable free text
// and which are contextual metadata. Columns matching neither rule are
// left unassigned. A table with at least one column always yields a
// non-empty target set: when nothing qualifies, the last column is
// forced into the targets.
func SuggestColumnRoles(table domain.Table) domain.ColumnRoleConfig {
	cfg := domain.ColumnRoleConfig{
		Strategy:                domain.StrategyDistinct,
		SentimentContextColumns: []string{},
	}

	for i, header := range table.Headers {
		ratio, avgLen := sampleColumn(table, i)

		switch {
		case isTextHeader(header) || (ratio > targetNonNumericRatio && avgLen > targetMinAvgLen):
			cfg.TargetColumns = append(cfg.TargetColumns, header)
		case isIdentifierHeader(header),
			avgLen < contextMaxAvgLen && ratio > contextMinNonNumericRatio,
			ratio < metricMaxNonNumericRatio:
			cfg.ContextColumns = append(cfg.ContextColumns, header)
		}
	}

	// A document with at least one column must yield a target.
	if len(cfg.TargetColumns) == 0 && len(table.Headers) > 0 {
		last := table.Headers[len(table.Headers)-1]
		cfg.TargetColumns = append(cfg.TargetColumns, last)
		cfg.ContextColumns = removeString(cfg.ContextColumns, last)
	}

	return cfg
}

// sampleColumn inspects up to sampleRows values of the column and
// returns the non-numeric fraction and average length among non-empty
// samples.
func sampleColumn(table domain.Table, col int) (nonNumericRatio, avgLen float64) {
	nonEmpty := 0
	nonNumeric := 0
	totalLen := 0

	for r := 0; r < len(table.Rows) && r < sampleRows; r++ {
		row := table.Rows[r]
		if col >= len(row) {
			continue
		}
		v := strings.TrimSpace(row[col])
		if v == "" {
			continue
		}
		nonEmpty++
		totalLen += len(v)
		if !isNumeric(v) {
			nonNumeric++
		}
	}

	if nonEmpty == 0 {
		return 0, 0
	}
	return float64(nonNumeric) / float64(nonEmpty), float64(totalLen) / float64(nonEmpty)
}

func isNumeric(v string) bool {
	_, err := strconv.ParseFloat(strings.ReplaceAll(v, ",", ""), 64)
	return err == nil
}

func isTextHeader(header string) bool {
	h := strings.ToLower(header)
	for _, kw := range textKeywords {
		if strings.Contains(h, kw) {
			return true
		}
	}
	return false
}

// isIdentifierHeader reports whether the header suggests an identifier
// or code rather than analyzable content.
func isIdentifierHeader(header string) bool {
	h := strings.ToLower(strings.TrimSpace(header))
	if h == "id" || h == "code" || h == "key" {
		return true
	}
	return strings.HasSuffix(h, "id") || strings.HasSuffix(h, "_id") ||
		strings.Contains(h, "code") || strings.Contains(h, "uuid") ||
		strings.Contains(h, "guid")
}

func removeString(list []string, s string) []string {
	out := list[:0]
	for _, v := range list {
		if v != s {
			out = append(out, v)
		}
	}
	return out
}
