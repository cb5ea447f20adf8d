package segmenter

import (
	"regexp"
	"strings"

	"github.com/custodia-labs/corpus-cli/internal/core/domain"
)

var (
	// paragraphRe matches one or more blank-line boundaries.
	paragraphRe = regexp.MustCompile(`\n\s*\n`)

	// sentenceRe matches a terminal punctuation run, optionally followed
	// by a closing quote, then whitespace. The punctuation stays attached
	// to the preceding sentence.
	sentenceRe = regexp.MustCompile(`[.!?]+['"”’]?\s+`)

	// phraseRe matches a comma or semicolon followed by whitespace.
	phraseRe = regexp.MustCompile(`[,;]\s+`)

	// sectionStartRe matches a Markdown heading line of any level.
	sectionStartRe = regexp.MustCompile(`(?m)^[ \t]*#+[ \t]+`)

	// turnStartRe matches a speaker-turn line: a capitalized token
	// immediately followed by a colon at line start.
	turnStartRe = regexp.MustCompile(`(?m)^[A-Z][A-Za-z0-9_]*:`)
)

// responseParagraphRatio is the minimum fraction of newlines that must
// be blank-line boundaries for response splitting to prefer paragraphs
// over single lines. Distinguishes prose paragraphs from list-like
// single-line items; tunable.
const responseParagraphRatio = 0.25

// SplitFlat splits content directly by the requested granularity and
// returns the raw pieces in order. Pieces are not trimmed here; callers
// drop empties after trimming. Unrecognized granularities degrade to the
// untouched content as a single piece.
func SplitFlat(content string, g domain.Granularity) []string {
	content = strings.ReplaceAll(content, "\r\n", "\n")

	switch g {
	case domain.GranularityParagraph:
		return paragraphRe.Split(content, -1)
	case domain.GranularitySentence:
		return splitAfter(content, sentenceRe)
	case domain.GranularityLine:
		return strings.Split(content, "\n")
	case domain.GranularitySection, domain.GranularityHeading:
		return splitBefore(content, sectionStartRe)
	case domain.GranularityTurn:
		if !turnStartRe.MatchString(content) {
			// No speaker pattern anywhere: fall back to paragraphs
			// instead of producing a single giant chunk.
			return paragraphRe.Split(content, -1)
		}
		return splitBefore(content, turnStartRe)
	case domain.GranularityPhrase:
		return splitAfter(content, phraseRe)
	case domain.GranularityResponse:
		return splitResponse(content)
	default:
		return []string{content}
	}
}

// splitAfter cuts the content after every match of re, keeping the
// matched delimiter (minus trailing whitespace) attached to the
// preceding piece. A final fragment without a delimiter is kept.
func splitAfter(content string, re *regexp.Regexp) []string {
	matches := re.FindAllStringIndex(content, -1)
	if len(matches) == 0 {
		return []string{content}
	}

	pieces := make([]string, 0, len(matches)+1)
	start := 0
	for _, m := range matches {
		pieces = append(pieces, content[start:m[1]])
		start = m[1]
	}
	if start < len(content) {
		pieces = append(pieces, content[start:])
	}
	return pieces
}

// splitBefore cuts the content at the start of every match of re. Text
// preceding the first match becomes its own piece.
func splitBefore(content string, re *regexp.Regexp) []string {
	matches := re.FindAllStringIndex(content, -1)
	if len(matches) == 0 {
		return []string{content}
	}

	pieces := make([]string, 0, len(matches)+1)
	start := 0
	for _, m := range matches {
		if m[0] > start {
			pieces = append(pieces, content[start:m[0]])
		}
		start = m[0]
	}
	pieces = append(pieces, content[start:])
	return pieces
}

// splitResponse splits survey-response blocks. Content pre-joined by the
// row delimiter splits on the marker; otherwise the shape of the text
// decides between paragraph-style and line-style splitting.
func splitResponse(content string) []string {
	if strings.Contains(content, domain.RowDelimiter) {
		return strings.Split(content, domain.RowDelimiter)
	}

	newlines := strings.Count(content, "\n")
	if newlines == 0 {
		return []string{content}
	}

	blanks := len(paragraphRe.FindAllString(content, -1))
	if float64(blanks)/float64(newlines) >= responseParagraphRatio {
		return paragraphRe.Split(content, -1)
	}
	return strings.Split(content, "\n")
}
