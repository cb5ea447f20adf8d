// Package tabular parses CSV-like content into tables and proposes
// column roles for segmentation.
package tabular

import (
	"strings"

	"github.com/custodia-labs/corpus-cli/internal/core/domain"
)

// Parse converts CSV-like text into a structured table. The first
// non-blank line is the header row, remaining non-blank lines are data
// rows. Malformed rows with mismatched field counts are retained as-is;
// column lookups elsewhere must be index-safe.
//
// Fewer than two non-blank lines yields an empty table, even when a
// header line is present without data.
func Parse(content string) domain.Table {
	lines := nonBlankLines(content)
	if len(lines) < 2 {
		return domain.Table{Headers: []string{}, Rows: [][]string{}}
	}

	headers := parseLine(lines[0])
	rows := make([][]string, 0, len(lines)-1)
	for _, line := range lines[1:] {
		rows = append(rows, parseLine(line))
	}

	return domain.Table{
		Headers:   headers,
		Rows:      rows,
		TotalRows: len(rows),
	}
}

// nonBlankLines splits content on line breaks and drops blank lines.
func nonBlankLines(content string) []string {
	raw := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		if strings.TrimSpace(l) != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

// parseLine tokenizes one row. A double quote toggles the quoted state
// unless preceded by a backslash (relaxed-CSV, not RFC 4180). A comma
// separates fields only outside quoted regions. Each field is then
// cleaned in a separate pass.
func parseLine(line string) []string {
	var fields []string
	var cur strings.Builder
	inQuotes := false

	for i := 0; i < len(line); i++ {
		ch := line[i]
		switch {
		case ch == '"' && (i == 0 || line[i-1] != '\\'):
			inQuotes = !inQuotes
			cur.WriteByte(ch)
		case ch == ',' && !inQuotes:
			fields = append(fields, cleanField(cur.String()))
			cur.Reset()
		default:
			cur.WriteByte(ch)
		}
	}
	fields = append(fields, cleanField(cur.String()))

	return fields
}

// cleanField trims the field, strips one layer of surrounding double
// quotes, and collapses internal doubled quotes to a single quote. This
// runs independently of the toggle logic in parseLine.
func cleanField(f string) string {
	f = strings.TrimSpace(f)
	if len(f) >= 2 && strings.HasPrefix(f, `"`) && strings.HasSuffix(f, `"`) {
		f = f[1 : len(f)-1]
	}
	return strings.ReplaceAll(f, `""`, `"`)
}
