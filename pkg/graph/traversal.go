package graph

import (
	"container/list"
)

// ShortestPath finds a fewest-hop path between two words using unweighted
// BFS. Edge weights are stored but play no part in distance. Returns nil if
// either endpoint is absent or no path exists. When several shortest paths
// exist, the one following earliest-inserted neighbors wins.
func (s *Store) ShortestPath(word1, word2 string) []string {
	if !s.HasNode(word1) || !s.HasNode(word2) {
		return nil
	}
	if word1 == word2 {
		return []string{word1}
	}

	parent := map[string]string{word1: word1}
	queue := list.New()
	queue.PushBack(word1)

	for queue.Len() > 0 {
		current := queue.Remove(queue.Front()).(string)
		for _, neighbor := range s.neighborOrder[current] {
			if _, seen := parent[neighbor]; seen {
				continue
			}
			parent[neighbor] = current
			if neighbor == word2 {
				return reconstructPath(word1, word2, parent)
			}
			queue.PushBack(neighbor)
		}
	}

	return nil
}

// reconstructPath walks the parent map back from end to start.
func reconstructPath(start, end string, parent map[string]string) []string {
	path := []string{end}
	for node := end; node != start; {
		node = parent[node]
		path = append(path, node)
	}
	// Reverse in place
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// Distances computes the BFS hop distance from word to every reachable node,
// including word itself at distance 0. Empty if the word is absent.
func (s *Store) Distances(word string) map[string]int {
	distances := make(map[string]int)
	if !s.HasNode(word) {
		return distances
	}
	distances[word] = 0

	queue := list.New()
	queue.PushBack(word)

	for queue.Len() > 0 {
		current := queue.Remove(queue.Front()).(string)
		currentDist := distances[current]
		for _, neighbor := range s.neighborOrder[current] {
			if _, visited := distances[neighbor]; visited {
				continue
			}
			distances[neighbor] = currentDist + 1
			queue.PushBack(neighbor)
		}
	}

	return distances
}

// Distance returns the BFS hop distance between two words, or -1 if either
// is absent or they are disconnected.
func (s *Store) Distance(word1, word2 string) int {
	if !s.HasNode(word1) || !s.HasNode(word2) {
		return -1
	}
	if word1 == word2 {
		return 0
	}
	if d, ok := s.Distances(word1)[word2]; ok {
		return d
	}
	return -1
}
