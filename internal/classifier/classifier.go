// Package classifier assigns a document kind to raw decoded text.
package classifier

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/custodia-labs/corpus-cli/internal/core/domain"
	"github.com/custodia-labs/corpus-cli/internal/tabular"
)

// tabularSampleRows is how many data rows the content heuristic checks
// for a column count matching the header. Guards against prose with
// occasional commas being misclassified as CSV.
const tabularSampleRows = 5

// headingLine matches a Markdown heading: up to six leading # characters
// followed by whitespace and text, allowing leading indentation.
var headingLine = regexp.MustCompile(`(?m)^[ \t]*#{1,6}[ \t]+\S`)

// Result is the outcome of classification. TableHeaders is populated
// only when the kind is tabular, parsed as a side effect of detection.
type Result struct {
	Kind         domain.DocumentKind
	TableHeaders []string
}

// Classify inspects the name hint and content and assigns exactly one
// document kind. Every input classifies; there is no error path.
func Classify(name, content string) Result {
	switch ext(name) {
	case ".csv":
		return tabularResult(content)
	case ".md", ".markdown", ".mdown":
		return Result{Kind: domain.KindMarkdown}
	}

	if looksTabular(content) {
		return tabularResult(content)
	}

	if headingLine.MatchString(content) {
		return Result{Kind: domain.KindMarkdown}
	}

	return Result{Kind: domain.KindPlain}
}

func ext(name string) string {
	return strings.ToLower(filepath.Ext(name))
}

func tabularResult(content string) Result {
	return Result{
		Kind:         domain.KindTabular,
		TableHeaders: tabular.Parse(content).Headers,
	}
}

// looksTabular applies the strict content heuristic: a parsed header row
// with at least two columns, at least one data row, and a sample of up
// to tabularSampleRows rows all matching the header's column count.
func looksTabular(content string) bool {
	table := tabular.Parse(content)
	if len(table.Headers) < 2 || table.TotalRows == 0 {
		return false
	}
	for i := 0; i < len(table.Rows) && i < tabularSampleRows; i++ {
		if len(table.Rows[i]) != len(table.Headers) {
			return false
		}
	}
	return true
}
