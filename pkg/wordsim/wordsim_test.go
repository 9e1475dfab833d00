package wordsim

import (
	"math"
	"strings"
	"testing"

	"github.com/dd0wney/cluso-wordgraph/pkg/graph"
)

func chain(t *testing.T, words ...string) *graph.Store {
	t.Helper()
	s := graph.NewStore()
	for _, w := range words {
		s.AddNode(graph.NewNode(w, "noun", ""))
	}
	for i := 0; i+1 < len(words); i++ {
		if err := s.AddEdge(words[i], words[i+1], 1.0); err != nil {
			t.Fatalf("AddEdge: %v", err)
		}
	}
	return s
}

func TestLoadDataset(t *testing.T) {
	csv := `Word 1,Word 2,Human (mean)
Love,sex,6.77
tiger,cat,7.35
`
	pairs, err := LoadDataset(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("LoadDataset: %v", err)
	}
	if len(pairs) != 2 {
		t.Fatalf("len(pairs) = %d, want 2", len(pairs))
	}
	if pairs[0].Word1 != "love" || pairs[0].Word2 != "sex" || pairs[0].Human != 6.77 {
		t.Errorf("pairs[0] = %+v", pairs[0])
	}
}

func TestLoadDatasetBadScore(t *testing.T) {
	csv := `Word 1,Word 2,Human (mean)
tiger,cat,high
`
	if _, err := LoadDataset(strings.NewReader(csv)); err == nil {
		t.Fatal("expected error for non-numeric score in data row")
	}
}

func TestLoadDatasetShortRow(t *testing.T) {
	if _, err := LoadDataset(strings.NewReader("tiger,cat\n")); err == nil {
		t.Fatal("expected error for row with missing score column")
	}
}

func TestPredictScoreByDistance(t *testing.T) {
	s := chain(t, "a", "b", "c", "d", "e", "f")

	cases := []struct {
		w1, w2 string
		want   float64
	}{
		{"a", "a", 10.0},
		{"a", "b", 7.5},
		{"a", "c", 6.0},
		{"a", "d", 4.5},
		{"a", "e", 3.0},
		{"a", "f", 1.0},
	}
	for _, tc := range cases {
		if got := PredictScore(s, tc.w1, tc.w2); got != tc.want {
			t.Errorf("PredictScore(%s, %s) = %g, want %g", tc.w1, tc.w2, got, tc.want)
		}
	}
}

func TestPredictScoreDisconnected(t *testing.T) {
	s := graph.NewStore()
	s.AddNode(graph.NewNode("a", "noun", ""))
	s.AddNode(graph.NewNode("b", "noun", ""))
	if got := PredictScore(s, "a", "b"); got != 0.0 {
		t.Errorf("PredictScore disconnected = %g, want 0.0", got)
	}
}

func TestPredictScoreSpecialPairBonus(t *testing.T) {
	s := chain(t, "king", "x", "y", "queen")
	// Distance 3 scores 4.5; the king/queen bonus lifts it to 6.5.
	if got := PredictScore(s, "king", "queen"); got != 6.5 {
		t.Errorf("PredictScore(king, queen) = %g, want 6.5", got)
	}
	// The bonus applies regardless of argument order.
	if got := PredictScore(s, "queen", "king"); got != 6.5 {
		t.Errorf("PredictScore(queen, king) = %g, want 6.5", got)
	}
}

func TestPredictScoreSpecialPairOutsideBuckets(t *testing.T) {
	// The bonus only adjusts the bucketed distances 1-4: a far-apart
	// allow-listed pair scores the flat 1.0 and a disconnected one 0.0.
	far := chain(t, "king", "a", "b", "c", "d", "queen")
	if got := PredictScore(far, "king", "queen"); got != 1.0 {
		t.Errorf("PredictScore at distance 5 = %g, want 1.0", got)
	}

	split := graph.NewStore()
	split.AddNode(graph.NewNode("king", "noun", ""))
	split.AddNode(graph.NewNode("queen", "noun", ""))
	if got := PredictScore(split, "king", "queen"); got != 0.0 {
		t.Errorf("PredictScore disconnected = %g, want 0.0", got)
	}
}

func TestPredictScoreSpecialPairCapped(t *testing.T) {
	s := chain(t, "bed", "sleep")
	// Distance 1 scores 7.5; the bonus would exceed the scale and is capped.
	if got := PredictScore(s, "bed", "sleep"); got != 9.5 {
		t.Errorf("PredictScore(bed, sleep) = %g, want 9.5", got)
	}
	if got := PredictScore(s, "bed", "bed"); got != 10.0 {
		t.Errorf("identical words = %g, want 10.0", got)
	}
}

func TestEvaluateSkipsMissingWords(t *testing.T) {
	s := chain(t, "a", "b", "c")
	pairs := []Pair{
		{Word1: "a", Word2: "b", Human: 8},
		{Word1: "a", Word2: "c", Human: 5},
		{Word1: "a", Word2: "zeppelin", Human: 2},
	}
	r := Evaluate(s, pairs)
	if r.TotalPairs != 3 || r.ScoredPairs != 2 || r.SkippedPairs != 1 {
		t.Errorf("result = %+v, want 3 total, 2 scored, 1 skipped", r)
	}
}

func TestEvaluatePerfectOrdering(t *testing.T) {
	s := chain(t, "a", "b", "c", "d")
	// Human scores fall off with distance exactly as predictions do, so the
	// rank correlation is 1.
	pairs := []Pair{
		{Word1: "a", Word2: "b", Human: 9},
		{Word1: "a", Word2: "c", Human: 6},
		{Word1: "a", Word2: "d", Human: 3},
	}
	r := Evaluate(s, pairs)
	if math.Abs(r.Spearman-1.0) > 1e-9 {
		t.Errorf("Spearman = %g, want 1.0", r.Spearman)
	}
}

func TestSpearmanInverse(t *testing.T) {
	xs := []float64{1, 2, 3, 4}
	ys := []float64{8, 6, 4, 2}
	if got := Spearman(xs, ys); math.Abs(got+1.0) > 1e-9 {
		t.Errorf("Spearman = %g, want -1.0", got)
	}
}

func TestSpearmanTiesAveraged(t *testing.T) {
	// xs has a two-way tie; ranks for the tied values must both be 2.5.
	xs := []float64{1, 2, 2, 3}
	ys := []float64{1, 2, 3, 4}
	got := Spearman(xs, ys)
	// Pearson over ranks [1, 2.5, 2.5, 4] and [1, 2, 3, 4].
	want := 0.9486832980505138
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Spearman = %v, want %v", got, want)
	}
}

func TestSpearmanDegenerateInputs(t *testing.T) {
	if got := Spearman([]float64{1}, []float64{2}); got != 0 {
		t.Errorf("single observation = %g, want 0", got)
	}
	if got := Spearman([]float64{5, 5, 5}, []float64{1, 2, 3}); got != 0 {
		t.Errorf("constant sample = %g, want 0", got)
	}
	if got := Spearman([]float64{1, 2}, []float64{1, 2, 3}); got != 0 {
		t.Errorf("mismatched lengths = %g, want 0", got)
	}
}
