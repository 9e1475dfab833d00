package search

// FindConnectingPaths enumerates paths of minimum length between two words,
// truncated to maxPaths. All returned paths share the same (shortest)
// length; enumeration follows neighbor insertion order, so truncation is
// deterministic. Empty if either endpoint is absent or no path exists.
func (e *Engine) FindConnectingPaths(word1, word2 string, maxPaths int) [][]string {
	if !e.graph.HasNode(word1) || !e.graph.HasNode(word2) || maxPaths <= 0 {
		return [][]string{}
	}
	if word1 == word2 {
		return [][]string{{word1}}
	}

	fromStart := e.graph.Distances(word1)
	target, reachable := fromStart[word2]
	if !reachable {
		return [][]string{}
	}
	fromEnd := e.graph.Distances(word2)

	// A node lies on some shortest path iff its distances from both ends
	// sum to the shortest distance.
	onShortestPath := func(w string) bool {
		ds, ok1 := fromStart[w]
		de, ok2 := fromEnd[w]
		return ok1 && ok2 && ds+de == target
	}

	paths := make([][]string, 0, maxPaths)
	path := make([]string, 0, target+1)

	var walk func(current string)
	walk = func(current string) {
		if len(paths) >= maxPaths {
			return
		}
		path = append(path, current)
		defer func() { path = path[:len(path)-1] }()

		if current == word2 {
			out := make([]string, len(path))
			copy(out, path)
			paths = append(paths, out)
			return
		}

		for _, neighbor := range e.graph.Neighbors(current) {
			if fromStart[neighbor] == fromStart[current]+1 && onShortestPath(neighbor) {
				walk(neighbor)
			}
		}
	}
	walk(word1)

	return paths
}
