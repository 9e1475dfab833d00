package graph

// Store holds the semantic graph: nodes keyed by word and simple undirected
// weighted edges. Enumeration order is insertion order throughout, which
// callers rely on for deterministic query results and stable exports.
//
// The store is mutated only during construction and read-only afterwards, so
// it carries no locking. Concurrent builders must serialize mutations
// themselves.
type Store struct {
	nodes     map[string]*Node
	nodeOrder []string

	// adjacency holds neighbor -> weight per word; neighborOrder preserves
	// the order edges were attached to each word.
	adjacency     map[string]map[string]float64
	neighborOrder map[string][]string

	edges []Edge
}

// NewStore creates an empty graph store.
func NewStore() *Store {
	return &Store{
		nodes:         make(map[string]*Node),
		adjacency:     make(map[string]map[string]float64),
		neighborOrder: make(map[string][]string),
	}
}

// AddNode inserts a node. If a node for the word already exists it is kept
// unchanged: nodes are immutable after first creation.
func (s *Store) AddNode(node *Node) {
	if _, exists := s.nodes[node.Word]; exists {
		return
	}
	s.nodes[node.Word] = node
	s.nodeOrder = append(s.nodeOrder, node.Word)
	s.adjacency[node.Word] = make(map[string]float64)
}

// AddEdge links two existing nodes with an undirected edge. Both endpoints
// must already have nodes and must differ; otherwise ErrInvalidEdge is
// returned. Adding an edge that already exists is a no-op.
func (s *Store) AddEdge(word1, word2 string, weight float64) error {
	if word1 == word2 {
		return InvalidEdgeError("AddEdge", word1, word2)
	}
	if _, ok := s.nodes[word1]; !ok {
		return InvalidEdgeError("AddEdge", word1, word2)
	}
	if _, ok := s.nodes[word2]; !ok {
		return InvalidEdgeError("AddEdge", word1, word2)
	}
	if _, dup := s.adjacency[word1][word2]; dup {
		return nil
	}

	s.adjacency[word1][word2] = weight
	s.adjacency[word2][word1] = weight
	s.neighborOrder[word1] = append(s.neighborOrder[word1], word2)
	s.neighborOrder[word2] = append(s.neighborOrder[word2], word1)
	s.edges = append(s.edges, Edge{From: word1, To: word2, Weight: weight})
	return nil
}

// GetNode retrieves a node by word, or nil if absent.
func (s *Store) GetNode(word string) *Node {
	return s.nodes[word]
}

// HasNode reports whether a node exists for the word.
func (s *Store) HasNode(word string) bool {
	_, ok := s.nodes[word]
	return ok
}

// HasEdge reports whether an edge exists between two words.
func (s *Store) HasEdge(word1, word2 string) bool {
	_, ok := s.adjacency[word1][word2]
	return ok
}

// Neighbors returns the words adjacent to word, in edge insertion order.
// Empty if the word is absent.
func (s *Store) Neighbors(word string) []string {
	order := s.neighborOrder[word]
	out := make([]string, len(order))
	copy(out, order)
	return out
}

// EdgeWeight returns the weight of the edge between two words, or 0 and
// false if no such edge exists.
func (s *Store) EdgeWeight(word1, word2 string) (float64, bool) {
	w, ok := s.adjacency[word1][word2]
	return w, ok
}

// Words returns every node word in insertion order.
func (s *Store) Words() []string {
	out := make([]string, len(s.nodeOrder))
	copy(out, s.nodeOrder)
	return out
}

// Nodes returns every node in insertion order.
func (s *Store) Nodes() []*Node {
	out := make([]*Node, 0, len(s.nodeOrder))
	for _, w := range s.nodeOrder {
		out = append(out, s.nodes[w])
	}
	return out
}

// Edges returns every undirected edge once, in insertion order.
func (s *Store) Edges() []Edge {
	out := make([]Edge, len(s.edges))
	copy(out, s.edges)
	return out
}

// NodeCount returns the number of nodes.
func (s *Store) NodeCount() int {
	return len(s.nodes)
}

// EdgeCount returns the number of undirected edges.
func (s *Store) EdgeCount() int {
	return len(s.edges)
}

// Degree returns the number of neighbors of word.
func (s *Store) Degree(word string) int {
	return len(s.adjacency[word])
}
