// Package analysis computes summary statistics over a built word graph:
// density, degree distribution, connected components, and clustering.
package analysis

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/dd0wney/cluso-wordgraph/pkg/graph"
)

// DegreeEntry pairs a word with its degree for ranking output.
type DegreeEntry struct {
	Word   string `json:"word"`
	Degree int    `json:"degree"`
}

// Report holds the derived statistics for one graph.
type Report struct {
	Nodes                int           `json:"nodes"`
	Edges                int           `json:"edges"`
	Density              float64       `json:"density"`
	AverageDegree        float64       `json:"average_degree"`
	ConnectedComponents  int           `json:"connected_components"`
	LargestComponentSize int           `json:"largest_component_size"`
	AverageClustering    float64       `json:"average_clustering"`
	TopDegree            []DegreeEntry `json:"top_degree"`
}

// TopDegreeCount is how many of the highest-degree words a report ranks.
const TopDegreeCount = 10

// Analyze walks the store once per statistic and returns the full report.
// An empty graph yields a zero report rather than dividing by zero.
func Analyze(s *graph.Store) Report {
	r := Report{
		Nodes: s.NodeCount(),
		Edges: s.EdgeCount(),
	}
	if r.Nodes == 0 {
		return r
	}

	r.AverageDegree = 2 * float64(r.Edges) / float64(r.Nodes)
	if r.Nodes > 1 {
		r.Density = 2 * float64(r.Edges) / float64(r.Nodes*(r.Nodes-1))
	}
	r.ConnectedComponents, r.LargestComponentSize = components(s)
	r.AverageClustering = averageClustering(s)
	r.TopDegree = topDegree(s, TopDegreeCount)
	return r
}

// components counts connected components by repeated BFS and reports the
// size of the largest one.
func components(s *graph.Store) (count, largest int) {
	visited := make(map[string]bool, s.NodeCount())
	for _, word := range s.Words() {
		if visited[word] {
			continue
		}
		count++
		size := 0
		queue := []string{word}
		visited[word] = true
		for len(queue) > 0 {
			current := queue[0]
			queue = queue[1:]
			size++
			for _, next := range s.Neighbors(current) {
				if !visited[next] {
					visited[next] = true
					queue = append(queue, next)
				}
			}
		}
		if size > largest {
			largest = size
		}
	}
	return count, largest
}

// averageClustering is the mean local clustering coefficient over all
// nodes. Nodes with fewer than two neighbors contribute zero, matching the
// usual convention.
func averageClustering(s *graph.Store) float64 {
	words := s.Words()
	var total float64
	for _, word := range words {
		neighbors := s.Neighbors(word)
		k := len(neighbors)
		if k < 2 {
			continue
		}
		links := 0
		for i := 0; i < k; i++ {
			for j := i + 1; j < k; j++ {
				if s.HasEdge(neighbors[i], neighbors[j]) {
					links++
				}
			}
		}
		total += 2 * float64(links) / float64(k*(k-1))
	}
	return total / float64(len(words))
}

// topDegree ranks words by degree, descending, breaking ties by insertion
// order so repeated runs over the same graph print the same table.
func topDegree(s *graph.Store, n int) []DegreeEntry {
	words := s.Words()
	entries := make([]DegreeEntry, 0, len(words))
	for _, word := range words {
		entries = append(entries, DegreeEntry{Word: word, Degree: s.Degree(word)})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Degree > entries[j].Degree
	})
	if len(entries) > n {
		entries = entries[:n]
	}
	return entries
}

// WriteText renders the report as a human-readable block for terminal use.
func (r Report) WriteText(w io.Writer) error {
	var b strings.Builder
	fmt.Fprintf(&b, "nodes:                %d\n", r.Nodes)
	fmt.Fprintf(&b, "edges:                %d\n", r.Edges)
	fmt.Fprintf(&b, "density:              %.4f\n", r.Density)
	fmt.Fprintf(&b, "average degree:       %.2f\n", r.AverageDegree)
	fmt.Fprintf(&b, "components:           %d\n", r.ConnectedComponents)
	fmt.Fprintf(&b, "largest component:    %d\n", r.LargestComponentSize)
	fmt.Fprintf(&b, "average clustering:   %.4f\n", r.AverageClustering)
	if len(r.TopDegree) > 0 {
		fmt.Fprintf(&b, "top degree:\n")
		for _, e := range r.TopDegree {
			fmt.Fprintf(&b, "  %-20s %d\n", e.Word, e.Degree)
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}
