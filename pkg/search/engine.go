package search

import (
	"sort"

	"github.com/dd0wney/cluso-wordgraph/pkg/graph"
)

// Engine answers similarity, path, and neighborhood queries over a finished
// graph store. It never mutates the store; construction must be complete
// before queries begin.
type Engine struct {
	graph *graph.Store
}

// NewEngine creates a search engine over the given store.
func NewEngine(g *graph.Store) *Engine {
	return &Engine{graph: g}
}

// SimilarWord is one scored result of a similarity query.
type SimilarWord struct {
	Word  string
	Score float64
}

// FindSimilarWords scores every node reachable from word by inverse path
// distance (1 / (1 + hops)) and returns the topN highest. Unreachable nodes
// are excluded entirely rather than scored zero. Ties keep node insertion
// order, which makes results deterministic for a given construction run.
// Returns an empty slice when word is absent.
func (e *Engine) FindSimilarWords(word string, topN int) []SimilarWord {
	if !e.graph.HasNode(word) || topN <= 0 {
		return []SimilarWord{}
	}

	distances := e.graph.Distances(word)

	results := make([]SimilarWord, 0, len(distances))
	for _, other := range e.graph.Words() {
		if other == word {
			continue
		}
		d, reachable := distances[other]
		if !reachable {
			continue
		}
		results = append(results, SimilarWord{
			Word:  other,
			Score: 1.0 / (1.0 + float64(d)),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > topN {
		results = results[:topN]
	}
	return results
}
