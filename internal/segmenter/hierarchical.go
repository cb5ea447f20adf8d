package segmenter

import (
	"strings"

	"github.com/custodia-labs/corpus-cli/internal/core/domain"
	"github.com/custodia-labs/corpus-cli/internal/outline"
)

// introTitle labels the implicit section holding text that precedes the
// first heading at the effective level.
const introTitle = "Intro / Untitled"

// section is one partition of a document at the effective heading level.
type section struct {
	title string
	body  string
}

// hierarchical partitions the document at every heading of the effective
// level and splits each section body by the inner granularity. Heading
// lines of other levels are ordinary content. Sections whose body is
// empty after trimming contribute no chunks.
func (s *Segmenter) hierarchical(e *emitter, doc *domain.SourceDocument, opts Options) {
	level := effectiveLevel(opts)

	for _, sec := range splitSections(doc.Content, level) {
		label := doc.Name + " > " + sec.title

		if opts.Granularity == domain.GranularitySubsection {
			// The whole section body becomes one chunk.
			e.emit(doc, label, domain.GranularitySubsection, sec.body)
			continue
		}

		for _, piece := range SplitFlat(sec.body, opts.Granularity) {
			e.emit(doc, label, opts.Granularity, piece)
		}
	}
}

// effectiveLevel is the heading level hierarchical splitting partitions
// on: the configured header level, one deeper for subsection granularity,
// capped at the maximum depth.
func effectiveLevel(opts Options) int {
	level := opts.HeaderLevel
	if opts.Granularity == domain.GranularitySubsection {
		level++
	}
	if level > domain.MaxHeadingLevel {
		level = domain.MaxHeadingLevel
	}
	return level
}

// splitSections partitions content at heading lines of exactly the given
// level. The boundary heading line is excluded from the section body, as
// are shallower headings (enclosing titles, like a lone # title above
// level-2 sections). Deeper headings stay in the body as ordinary
// content, not as new boundaries.
func splitSections(content string, level int) []section {
	content = strings.ReplaceAll(content, "\r\n", "\n")

	sections := []section{{title: introTitle}}
	var body []string

	flush := func() {
		sections[len(sections)-1].body = strings.Join(body, "\n")
		body = body[:0]
	}

	for _, line := range strings.Split(content, "\n") {
		if h, ok := outline.ParseHeading(line); ok {
			if h.Level == level {
				flush()
				sections = append(sections, section{title: h.Title})
				continue
			}
			if h.Level < level {
				continue
			}
		}
		body = append(body, line)
	}
	flush()

	return sections
}
