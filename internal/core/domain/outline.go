package domain

// MinHeadingLevel and MaxHeadingLevel bound Markdown heading depth.
const (
	MinHeadingLevel = 1
	MaxHeadingLevel = 6
)

// HeadingIndex maps heading level (1-6) to the ordered list of heading
// titles found at that level across all loaded documents. It is recomputed
// fully whenever the document set changes, never incrementally updated.
type HeadingIndex map[int][]string

// TitlesAt returns the heading titles at the given level.
func (h HeadingIndex) TitlesAt(level int) []string {
	return h[level]
}

// CountAt returns the number of headings at the given level.
func (h HeadingIndex) CountAt(level int) int {
	return len(h[level])
}
