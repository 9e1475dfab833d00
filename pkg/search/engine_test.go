package search

import (
	"math"
	"testing"

	"github.com/dd0wney/cluso-wordgraph/pkg/graph"
)

// chainGraph builds a -- b -- c -- d plus isolated word "island"
func chainGraph() *graph.Store {
	s := graph.NewStore()
	for _, w := range []string{"a", "b", "c", "d", "island"} {
		s.AddNode(graph.NewNode(w, "noun", ""))
	}
	s.AddEdge("a", "b", graph.DefaultEdgeWeight)
	s.AddEdge("b", "c", graph.DefaultEdgeWeight)
	s.AddEdge("c", "d", graph.DefaultEdgeWeight)
	return s
}

func TestFindSimilarWordsScoresByInverseDistance(t *testing.T) {
	e := NewEngine(chainGraph())

	got := e.FindSimilarWords("a", 10)
	want := []SimilarWord{
		{Word: "b", Score: 0.5},
		{Word: "c", Score: 1.0 / 3.0},
		{Word: "d", Score: 0.25},
	}

	if len(got) != len(want) {
		t.Fatalf("FindSimilarWords() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i].Word != want[i].Word {
			t.Errorf("result %d word = %q, want %q", i, got[i].Word, want[i].Word)
		}
		if math.Abs(got[i].Score-want[i].Score) > 1e-9 {
			t.Errorf("result %d score = %v, want %v", i, got[i].Score, want[i].Score)
		}
	}
}

func TestFindSimilarWordsExcludesUnreachable(t *testing.T) {
	e := NewEngine(chainGraph())

	for _, sw := range e.FindSimilarWords("a", 10) {
		if sw.Word == "island" {
			t.Error("unreachable node must be excluded, not scored")
		}
		if sw.Word == "a" {
			t.Error("the query word itself must never appear")
		}
	}
}

func TestFindSimilarWordsTruncatesToTopN(t *testing.T) {
	e := NewEngine(chainGraph())

	got := e.FindSimilarWords("a", 2)
	if len(got) != 2 {
		t.Fatalf("expected 2 results, got %d", len(got))
	}
	if got[0].Word != "b" || got[1].Word != "c" {
		t.Errorf("expected closest words first, got %v", got)
	}
}

func TestFindSimilarWordsTiesKeepInsertionOrder(t *testing.T) {
	// hub connects to spokes x, z, y inserted in that node order
	s := graph.NewStore()
	for _, w := range []string{"hub", "x", "z", "y"} {
		s.AddNode(graph.NewNode(w, "noun", ""))
	}
	s.AddEdge("hub", "y", graph.DefaultEdgeWeight)
	s.AddEdge("hub", "x", graph.DefaultEdgeWeight)
	s.AddEdge("hub", "z", graph.DefaultEdgeWeight)

	got := NewEngine(s).FindSimilarWords("hub", 3)
	// All scores tie at 0.5; node insertion order (x, z, y) breaks the tie
	want := []string{"x", "z", "y"}
	for i := range want {
		if got[i].Word != want[i] {
			t.Fatalf("tie order = %v, want %v", got, want)
		}
	}
}

func TestFindSimilarWordsAbsentWord(t *testing.T) {
	e := NewEngine(chainGraph())

	if got := e.FindSimilarWords("zzz", 5); len(got) != 0 {
		t.Errorf("expected empty result for absent word, got %v", got)
	}
}

func TestFindSimilarWordsSpecScenario(t *testing.T) {
	// Two-node graph: state -- ease
	s := graph.NewStore()
	s.AddNode(graph.NewNode("state", "noun", "A condition of ease"))
	s.AddNode(graph.NewNode("ease", "noun", "Freedom from difficulty"))
	s.AddEdge("state", "ease", graph.DefaultEdgeWeight)

	got := NewEngine(s).FindSimilarWords("state", 5)
	if len(got) != 1 || got[0].Word != "ease" || got[0].Score != 0.5 {
		t.Errorf("expected [(ease, 0.5)], got %v", got)
	}
}
