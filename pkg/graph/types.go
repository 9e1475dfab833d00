package graph

// Node represents one word admitted into the semantic graph, together with
// the linguistic attributes captured at admission time. Nodes are immutable
// after creation and are never removed.
type Node struct {
	Word          string
	PartOfSpeech  string
	Definition    string
	UsagePatterns []string
}

// NewNode creates a node for a word. UsagePatterns starts empty; the crawler
// does not populate it but the field is part of the entity's shape.
func NewNode(word, partOfSpeech, definition string) *Node {
	return &Node{
		Word:          word,
		PartOfSpeech:  partOfSpeech,
		Definition:    definition,
		UsagePatterns: []string{},
	}
}

// Edge is an unordered pair of node words with a weight. From/To reflect the
// order the edge was added in, not a direction.
type Edge struct {
	From   string
	To     string
	Weight float64
}

// DefaultEdgeWeight is the weight assigned when callers do not vary it.
const DefaultEdgeWeight = 1.0
