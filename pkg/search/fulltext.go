package search

import (
	"sort"

	"github.com/dd0wney/cluso-wordgraph/pkg/graph"
	"github.com/dd0wney/cluso-wordgraph/pkg/lexicon"
)

// DefinitionIndex is an inverted index over the definition text of every
// node, for finding words whose definitions mention a term without walking
// the graph.
type DefinitionIndex struct {
	normalizer *lexicon.Normalizer
	// postings maps a definition token to the words whose definitions
	// contain it, in node insertion order.
	postings map[string][]string
	// termFreq counts occurrences of a token within one word's definition.
	termFreq map[string]map[string]int
}

// SearchResult is one ranked hit from a definition search.
type SearchResult struct {
	Word  string
	Score float64
}

// NewDefinitionIndex indexes every node's definition. Stop words are
// dropped the same way the crawler drops them, so queries and definitions
// meet on the same token set.
func NewDefinitionIndex(g *graph.Store) *DefinitionIndex {
	idx := &DefinitionIndex{
		normalizer: lexicon.NewNormalizer(),
		postings:   make(map[string][]string),
		termFreq:   make(map[string]map[string]int),
	}
	for _, node := range g.Nodes() {
		idx.indexDefinition(node.Word, node.Definition)
	}
	return idx
}

func (idx *DefinitionIndex) indexDefinition(word, definition string) {
	for _, token := range idx.normalizer.Normalize(definition) {
		if idx.termFreq[word] == nil {
			idx.termFreq[word] = make(map[string]int)
		}
		if idx.termFreq[word][token] == 0 {
			idx.postings[token] = append(idx.postings[token], word)
		}
		idx.termFreq[word][token]++
	}
}

// Search returns words whose definitions contain at least one query token,
// ranked by how many distinct tokens match and then by how often they
// occur. Ties keep index insertion order. Stop-word-only queries match
// nothing.
func (idx *DefinitionIndex) Search(query string) []SearchResult {
	tokens := idx.normalizer.Normalize(query)
	if len(tokens) == 0 {
		return nil
	}

	seen := make(map[string]bool)
	var order []string
	matched := make(map[string]int)
	occurrences := make(map[string]int)
	for _, token := range dedup(tokens) {
		for _, word := range idx.postings[token] {
			if !seen[word] {
				seen[word] = true
				order = append(order, word)
			}
			matched[word]++
			occurrences[word] += idx.termFreq[word][token]
		}
	}

	results := make([]SearchResult, 0, len(order))
	for _, word := range order {
		score := float64(matched[word]) + float64(occurrences[word])*0.1
		results = append(results, SearchResult{Word: word, Score: score})
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results
}

// SearchFuzzy matches query tokens against index tokens within the given
// edit distance, so near-misses like "conditon" still find "condition".
func (idx *DefinitionIndex) SearchFuzzy(query string, maxDistance int) []SearchResult {
	tokens := idx.normalizer.Normalize(query)
	if len(tokens) == 0 {
		return nil
	}

	// Expand each query token to every index token within range, then
	// score as an ordinary search over the expanded set.
	indexTokens := make([]string, 0, len(idx.postings))
	for token := range idx.postings {
		indexTokens = append(indexTokens, token)
	}
	sort.Strings(indexTokens)

	var expanded []string
	for _, qt := range dedup(tokens) {
		for _, it := range indexTokens {
			if levenshtein(qt, it) <= maxDistance {
				expanded = append(expanded, it)
			}
		}
	}
	if len(expanded) == 0 {
		return nil
	}

	seen := make(map[string]bool)
	var order []string
	matched := make(map[string]int)
	for _, token := range dedup(expanded) {
		for _, word := range idx.postings[token] {
			if !seen[word] {
				seen[word] = true
				order = append(order, word)
			}
			matched[word]++
		}
	}
	results := make([]SearchResult, 0, len(order))
	for _, word := range order {
		results = append(results, SearchResult{Word: word, Score: float64(matched[word])})
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results
}

func dedup(tokens []string) []string {
	seen := make(map[string]bool, len(tokens))
	out := tokens[:0:0]
	for _, t := range tokens {
		if !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	return out
}

// levenshtein is the classic two-row edit distance.
func levenshtein(s1, s2 string) int {
	if s1 == s2 {
		return 0
	}
	r1 := []rune(s1)
	r2 := []rune(s2)

	prev := make([]int, len(r2)+1)
	curr := make([]int, len(r2)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(r1); i++ {
		curr[0] = i
		for j := 1; j <= len(r2); j++ {
			cost := 1
			if r1[i-1] == r2[j-1] {
				cost = 0
			}
			curr[j] = minOf(curr[j-1]+1, prev[j]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(r2)]
}

func minOf(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
