package lexicon

import (
	"strings"
)

// defaultStopWords is the fixed set of function words excluded from every
// token stream: articles, prepositions, conjunctions, and a short list of
// discourse adverbs.
var defaultStopWords = []string{
	// Articles
	"a", "an", "the",
	// Common prepositions
	"aboard", "about", "above", "across", "after", "against", "along", "amid", "among", "around",
	"as", "at", "before", "behind", "below", "beneath", "beside", "between", "beyond", "but",
	"by", "concerning", "considering", "despite", "down", "during", "except", "for", "from",
	"in", "inside", "into", "like", "near", "of", "off", "on", "onto", "out", "outside",
	"over", "past", "regarding", "round", "since", "through", "throughout", "to", "toward",
	"under", "underneath", "until", "unto", "up", "upon", "with", "within", "without",
	// Common conjunctions
	"and", "or", "nor", "so", "yet",
	// Other common function words
	"also", "often", "very", "just", "only", "not", "no", "yes", "well", "too",
}

// Normalizer tokenizes free text into lowercase word tokens, dropping stop
// words. It is pure: identical input and stop-word configuration always yield
// identical output, and token order follows occurrence order in the input.
type Normalizer struct {
	stopWords map[string]bool
}

// NewNormalizer creates a Normalizer with the default stop-word set.
func NewNormalizer() *Normalizer {
	return NewNormalizerWithStopWords(defaultStopWords)
}

// NewNormalizerWithStopWords creates a Normalizer with a caller-supplied
// stop-word set. Stop words are matched against lowercased tokens.
func NewNormalizerWithStopWords(stopWords []string) *Normalizer {
	set := make(map[string]bool, len(stopWords))
	for _, w := range stopWords {
		set[strings.ToLower(w)] = true
	}
	return &Normalizer{stopWords: set}
}

// Normalize splits text into lowercase alphanumeric tokens and removes stop
// words. Duplicates are preserved; callers that need set semantics dedup on
// their side (the crawler via its processed set).
func (n *Normalizer) Normalize(text string) []string {
	tokens := Tokenize(text)
	words := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if n.stopWords[tok] {
			continue
		}
		words = append(words, tok)
	}
	return words
}

// IsStopWord reports whether w (case-insensitive) is in the stop-word set.
func (n *Normalizer) IsStopWord(w string) bool {
	return n.stopWords[strings.ToLower(w)]
}

// Tokenize splits text into lowercase runs of letters, digits, and
// underscores, no stop-word filtering applied.
func Tokenize(text string) []string {
	text = strings.ToLower(text)
	return strings.FieldsFunc(text, func(r rune) bool {
		return !((r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_')
	})
}
