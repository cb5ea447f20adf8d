package lexical

// stopWords is the closed set of function words excluded from n-grams.
// Any n-gram containing one of these in any position is skipped.
var stopWords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "are": {}, "as": {}, "at": {},
	"be": {}, "but": {}, "by": {}, "for": {}, "from": {}, "has": {},
	"have": {}, "he": {}, "her": {}, "his": {}, "i": {}, "in": {},
	"is": {}, "it": {}, "its": {}, "of": {}, "on": {}, "or": {},
	"she": {}, "so": {}, "that": {}, "the": {}, "their": {},
	"there": {}, "they": {}, "this": {}, "to": {}, "was": {},
	"we": {}, "were": {}, "with": {}, "you": {},
}

// IsStopWord reports whether the token is in the stop-word set.
func IsStopWord(token string) bool {
	_, ok := stopWords[token]
	return ok
}
