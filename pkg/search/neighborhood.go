package search

// Neighborhood performs a BFS from word out to radius hops and returns the
// words grouped by the hop distance at which they were first reached
// (1..radius). Each word appears at exactly one distance — its minimum — and
// the center word itself is excluded. Empty mapping if word is absent.
func (e *Engine) Neighborhood(word string, radius int) map[int][]string {
	byHop := make(map[int][]string)
	if !e.graph.HasNode(word) || radius < 1 {
		return byHop
	}

	type entry struct {
		word string
		hop  int
	}

	visited := map[string]bool{word: true}
	queue := []entry{{word: word, hop: 0}}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if current.hop >= radius {
			continue
		}
		nextHop := current.hop + 1

		for _, neighbor := range e.graph.Neighbors(current.word) {
			if visited[neighbor] {
				continue
			}
			visited[neighbor] = true
			byHop[nextHop] = append(byHop[nextHop], neighbor)
			queue = append(queue, entry{word: neighbor, hop: nextHop})
		}
	}

	return byHop
}
