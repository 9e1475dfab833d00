package gml

import (
	"bytes"
	"strings"
	"testing"

	"github.com/dd0wney/cluso-wordgraph/pkg/graph"
)

func sampleStore(t *testing.T) *graph.Store {
	t.Helper()
	s := graph.NewStore()
	s.AddNode(graph.NewNode("state", "noun", `the condition of a person or thing, as with respect to "circumstances"`))
	s.AddNode(graph.NewNode("condition", "noun", "a particular mode of being"))
	s.AddNode(graph.NewNode("ease", "noun", "freedom from labor or effort"))
	if err := s.AddEdge("state", "condition", 1.0); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	if err := s.AddEdge("condition", "ease", 1.0); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	return s
}

func TestRoundTrip(t *testing.T) {
	original := sampleStore(t)

	var buf bytes.Buffer
	if err := Encode(original, &buf); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	decoded, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if decoded.NodeCount() != original.NodeCount() {
		t.Fatalf("node count = %d, want %d", decoded.NodeCount(), original.NodeCount())
	}
	if decoded.EdgeCount() != original.EdgeCount() {
		t.Fatalf("edge count = %d, want %d", decoded.EdgeCount(), original.EdgeCount())
	}
	for _, word := range original.Words() {
		want := original.GetNode(word)
		got := decoded.GetNode(word)
		if got == nil {
			t.Fatalf("node %q missing after round trip", word)
		}
		if got.PartOfSpeech != want.PartOfSpeech || got.Definition != want.Definition {
			t.Errorf("node %q = %+v, want %+v", word, got, want)
		}
	}
	for _, e := range original.Edges() {
		if !decoded.HasEdge(e.From, e.To) {
			t.Errorf("edge %s-%s missing after round trip", e.From, e.To)
		}
	}
}

func TestRoundTripPreservesNodeOrder(t *testing.T) {
	original := sampleStore(t)

	var buf bytes.Buffer
	if err := Encode(original, &buf); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	decoded, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	want := original.Words()
	got := decoded.Words()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Words()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestDecodeQuotedNumericValues(t *testing.T) {
	doc := `graph [
  node [
    id "0"
    label "cat"
  ]
  node [
    id "1"
    label "dog"
  ]
  edge [
    source "0"
    target "1"
    weight "2.5"
  ]
]`
	s, err := Decode(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	w, ok := s.EdgeWeight("cat", "dog")
	if !ok {
		t.Fatal("edge cat-dog missing")
	}
	if w != 2.5 {
		t.Errorf("weight = %g, want 2.5", w)
	}
}

func TestDecodeIgnoresUnknownAttributes(t *testing.T) {
	doc := `graph [
  directed 0
  node [
    id 0
    label "cat"
    color "red"
  ]
]`
	s, err := Decode(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !s.HasNode("cat") {
		t.Error("node cat missing")
	}
}

func TestDecodeNodeMissingLabel(t *testing.T) {
	doc := `graph [
  node [
    id 0
  ]
]`
	if _, err := Decode(strings.NewReader(doc)); err == nil {
		t.Fatal("expected error for node without label")
	}
}

func TestDecodeEdgeUnknownNode(t *testing.T) {
	doc := `graph [
  node [
    id 0
    label "cat"
  ]
  edge [
    source 0
    target 7
  ]
]`
	if _, err := Decode(strings.NewReader(doc)); err == nil {
		t.Fatal("expected error for edge to unknown node id")
	}
}

func TestDecodeUnbalancedBrackets(t *testing.T) {
	doc := `graph [
  node [
    id 0
    label "cat"
`
	if _, err := Decode(strings.NewReader(doc)); err == nil {
		t.Fatal("expected error for unbalanced brackets")
	}
}

func TestEscapedDefinitionsRoundTrip(t *testing.T) {
	defs := []string{
		`a "quoted" thing & more`,
		`a back\slash and a trailing one \`,
		`already &quot;entity&amp; escaped`,
	}
	for _, def := range defs {
		s := graph.NewStore()
		s.AddNode(graph.NewNode("tricky", "noun", def))

		var buf bytes.Buffer
		if err := Encode(s, &buf); err != nil {
			t.Fatalf("Encode: %v", err)
		}
		decoded, err := Decode(&buf)
		if err != nil {
			t.Fatalf("Decode: %v", err)
		}
		got := decoded.GetNode("tricky")
		if got == nil || got.Definition != def {
			t.Errorf("definition = %q, want %q", got.Definition, def)
		}
	}
}

func TestEncodeEmptyGraph(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(graph.NewStore(), &buf); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	decoded, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if decoded.NodeCount() != 0 || decoded.EdgeCount() != 0 {
		t.Errorf("decoded graph not empty: %d nodes, %d edges", decoded.NodeCount(), decoded.EdgeCount())
	}
}
