package domain

// NGram is an n-gram with its occurrence count across all chunks.
type NGram struct {
	// Text is the space-joined token sequence.
	Text string `json:"text"`

	// Count is the number of occurrences.
	Count int `json:"count"`
}

// NGramReport holds the top bigrams and trigrams of a chunk set.
type NGramReport struct {
	// Bigrams, by descending count, first-seen order on ties.
	Bigrams []NGram `json:"bigrams"`

	// Trigrams, by descending count, first-seen order on ties.
	Trigrams []NGram `json:"trigrams"`
}

// ConcordanceEntry is one keyword-in-context match.
type ConcordanceEntry struct {
	// ChunkID identifies the owning chunk.
	ChunkID string `json:"chunk_id"`

	// SourceLabel is the owning chunk's source label.
	SourceLabel string `json:"source_label"`

	// Left is the context preceding the match, ellipsised when cut short.
	Left string `json:"left"`

	// Match is the matched substring in its original casing.
	Match string `json:"match"`

	// Right is the context following the match, ellipsised when cut short.
	Right string `json:"right"`
}
