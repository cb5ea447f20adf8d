package lexical

import (
	"regexp"
	"unicode/utf8"

	"github.com/custodia-labs/corpus-cli/internal/core/domain"
)

// Ellipsis marks a context window cut short by more text beyond it.
const Ellipsis = "…"

// DefaultWindow is the default context window size in characters.
const DefaultWindow = 40

// Concordance scans every chunk case-insensitively for the keyword and
// returns one entry per occurrence with up to window characters of
// context on each side. Matching advances one character past the start
// of each occurrence, so overlapping matches of the keyword within
// itself are found by design.
func Concordance(chunks []domain.Chunk, keyword string, window int) []domain.ConcordanceEntry {
	if keyword == "" {
		return nil
	}
	if window <= 0 {
		window = DefaultWindow
	}

	// Case folding can change a rune's byte length, so matching runs
	// against the original text rather than a lowercased copy whose
	// offsets would drift.
	pattern := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(keyword))
	var entries []domain.ConcordanceEntry

	for i := range chunks {
		text := chunks[i].Text

		from := 0
		for from <= len(text) {
			loc := pattern.FindStringIndex(text[from:])
			if loc == nil {
				break
			}
			pos, end := from+loc[0], from+loc[1]
			entries = append(entries, entry(&chunks[i], text, pos, end, window))

			_, size := utf8.DecodeRuneInString(text[pos:])
			from = pos + size
		}
	}

	return entries
}

// entry builds one concordance record around the match at [pos, end).
// Window edges landing inside a multi-byte rune shrink toward the match
// so both context slices stay valid UTF-8.
func entry(chunk *domain.Chunk, text string, pos, end, window int) domain.ConcordanceEntry {
	start := maxInt(0, pos-window)
	for start < pos && !utf8.RuneStart(text[start]) {
		start++
	}
	left := text[start:pos]
	if start > 0 {
		left = Ellipsis + left
	}

	stop := minInt(len(text), end+window)
	for stop > end && stop < len(text) && !utf8.RuneStart(text[stop]) {
		stop--
	}
	right := text[end:stop]
	if stop < len(text) {
		right = right + Ellipsis
	}

	return domain.ConcordanceEntry{
		ChunkID:     chunk.ID,
		SourceLabel: chunk.SourceLabel,
		Left:        left,
		Match:       text[pos:end],
		Right:       right,
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
