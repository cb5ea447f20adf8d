// Package outline scans documents for Markdown heading structure. The
// heading index drives the configuration UI's level choices and the
// default split-level suggestion for hierarchical segmentation.
package outline

import (
	"regexp"
	"strings"

	"github.com/custodia-labs/corpus-cli/internal/core/domain"
)

// headingRe matches a heading after leading whitespace is trimmed:
// one to six # characters, at least one space or tab, non-empty text.
var headingRe = regexp.MustCompile(`^(#{1,6})[ \t]+(.+)$`)

// Heading is one heading line found in a document.
type Heading struct {
	// Level is the number of leading # characters (1-6).
	Level int

	// Title is the heading text with markers and surrounding whitespace
	// stripped.
	Title string
}

// Headings returns all heading lines of the content in document order.
func Headings(content string) []Heading {
	var found []Heading
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimLeft(line, " \t")
		m := headingRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		title := strings.TrimSpace(m[2])
		if title == "" {
			continue
		}
		found = append(found, Heading{Level: len(m[1]), Title: title})
	}
	return found
}

// ParseHeading returns the heading on the given line, if any.
func ParseHeading(line string) (Heading, bool) {
	line = strings.TrimLeft(line, " \t")
	m := headingRe.FindStringSubmatch(line)
	if m == nil {
		return Heading{}, false
	}
	title := strings.TrimSpace(m[2])
	if title == "" {
		return Heading{}, false
	}
	return Heading{Level: len(m[1]), Title: title}, true
}

// HeadingAt returns the heading on the given line if it sits at exactly
// the wanted level.
func HeadingAt(line string, level int) (Heading, bool) {
	h, ok := ParseHeading(line)
	if !ok || h.Level != level {
		return Heading{}, false
	}
	return h, true
}

// AnalyzeHeadingLevels builds the heading index over all markdown and
// plain documents, preserving document order. Tabular documents are
// skipped. The index is recomputed fully on every call.
func AnalyzeHeadingLevels(docs []domain.SourceDocument) domain.HeadingIndex {
	index := make(domain.HeadingIndex)
	for i := range docs {
		if docs[i].Kind == domain.KindTabular {
			continue
		}
		for _, h := range Headings(docs[i].Content) {
			index[h.Level] = append(index[h.Level], h.Title)
		}
	}
	return index
}

// SuggestSplitLevel picks the default heading level for hierarchical
// splitting: the shallowest level with more than one heading. A lone
// level-1 title above several level-2 headings therefore yields 2,
// avoiding a single no-op section at the title level. When no level has
// more than one heading, the shallowest non-empty level is used, and
// level 2 when there are no headings at all.
func SuggestSplitLevel(index domain.HeadingIndex) int {
	for level := domain.MinHeadingLevel; level <= domain.MaxHeadingLevel; level++ {
		if index.CountAt(level) > 1 {
			return level
		}
	}
	for level := domain.MinHeadingLevel; level <= domain.MaxHeadingLevel; level++ {
		if index.CountAt(level) > 0 {
			return level
		}
	}
	return 2
}
