// Package lexical provides exploratory utilities over a produced chunk
// sequence: n-gram frequency extraction and keyword-in-context
// concordance generation.
package lexical

import (
	"regexp"
	"sort"
	"strings"

	"github.com/custodia-labs/corpus-cli/internal/core/domain"
)

// DefaultTopN is how many bigrams and trigrams are returned by default.
const DefaultTopN = 50

// nonWord strips everything that is not a word character or whitespace.
var nonWord = regexp.MustCompile(`[^\w\s]+`)

// Tokenize lower-cases the text, strips non-word characters, and splits
// on whitespace runs.
func Tokenize(text string) []string {
	cleaned := nonWord.ReplaceAllString(strings.ToLower(text), "")
	return strings.Fields(cleaned)
}

// TopNGrams counts bigrams and trigrams across all chunk texts, skipping
// any n-gram containing a stop word, and returns the top limit of each
// by descending count. Ties keep first-seen order: the count structure
// preserves insertion order and the sort is stable.
func TopNGrams(chunks []domain.Chunk, limit int) *domain.NGramReport {
	if limit <= 0 {
		limit = DefaultTopN
	}

	bigrams := newCounter()
	trigrams := newCounter()

	for i := range chunks {
		tokens := Tokenize(chunks[i].Text)
		countGrams(bigrams, tokens, 2)
		countGrams(trigrams, tokens, 3)
	}

	return &domain.NGramReport{
		Bigrams:  bigrams.top(limit),
		Trigrams: trigrams.top(limit),
	}
}

// countGrams counts each adjacent n-token window, skipping windows with
// a stop word in any position.
func countGrams(c *counter, tokens []string, n int) {
	for i := 0; i+n <= len(tokens); i++ {
		window := tokens[i : i+n]
		if containsStopWord(window) {
			continue
		}
		c.add(strings.Join(window, " "))
	}
}

func containsStopWord(tokens []string) bool {
	for _, t := range tokens {
		if IsStopWord(t) {
			return true
		}
	}
	return false
}

// counter counts strings while preserving first-insertion order.
type counter struct {
	counts map[string]int
	order  []string
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) add(key string) {
	if _, seen := c.counts[key]; !seen {
		c.order = append(c.order, key)
	}
	c.counts[key]++
}

// top returns the limit most frequent entries, stable on first-seen
// order for equal counts.
func (c *counter) top(limit int) []domain.NGram {
	grams := make([]domain.NGram, 0, len(c.order))
	for _, key := range c.order {
		grams = append(grams, domain.NGram{Text: key, Count: c.counts[key]})
	}

	sort.SliceStable(grams, func(i, j int) bool {
		return grams[i].Count > grams[j].Count
	})

	if len(grams) > limit {
		grams = grams[:limit]
	}
	return grams
}
