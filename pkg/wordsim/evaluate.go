package wordsim

import (
	"math"
	"sort"

	"github.com/dd0wney/cluso-wordgraph/pkg/graph"
)

// Result summarizes one validation run.
type Result struct {
	TotalPairs   int     `json:"total_pairs"`
	ScoredPairs  int     `json:"scored_pairs"`
	SkippedPairs int     `json:"skipped_pairs"`
	Spearman     float64 `json:"spearman"`
}

// Evaluate predicts a similarity score for every dataset pair whose words
// both exist in the graph and correlates predictions with the human
// judgments. Pairs with a missing word are skipped, not scored zero, so a
// small graph is judged only on the vocabulary it actually covers.
func Evaluate(s *graph.Store, pairs []Pair) Result {
	r := Result{TotalPairs: len(pairs)}

	var predicted, human []float64
	for _, p := range pairs {
		if !s.HasNode(p.Word1) || !s.HasNode(p.Word2) {
			r.SkippedPairs++
			continue
		}
		predicted = append(predicted, PredictScore(s, p.Word1, p.Word2))
		human = append(human, p.Human)
	}
	r.ScoredPairs = len(predicted)
	r.Spearman = Spearman(predicted, human)
	return r
}

// Spearman computes Spearman's rank correlation between two equal-length
// samples. Ties receive the average of the ranks they span. Fewer than two
// observations, or a constant sample, yield zero.
func Spearman(xs, ys []float64) float64 {
	if len(xs) != len(ys) || len(xs) < 2 {
		return 0
	}
	rx := ranks(xs)
	ry := ranks(ys)

	mx := mean(rx)
	my := mean(ry)
	var cov, vx, vy float64
	for i := range rx {
		dx := rx[i] - mx
		dy := ry[i] - my
		cov += dx * dy
		vx += dx * dx
		vy += dy * dy
	}
	if vx == 0 || vy == 0 {
		return 0
	}
	return cov / math.Sqrt(vx*vy)
}

// ranks assigns 1-based ranks, averaging runs of equal values.
func ranks(values []float64) []float64 {
	idx := make([]int, len(values))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return values[idx[a]] < values[idx[b]]
	})

	out := make([]float64, len(values))
	for i := 0; i < len(idx); {
		j := i
		for j+1 < len(idx) && values[idx[j+1]] == values[idx[i]] {
			j++
		}
		// Positions i..j share the same value; average their ranks.
		avg := float64(i+j)/2 + 1
		for k := i; k <= j; k++ {
			out[idx[k]] = avg
		}
		i = j + 1
	}
	return out
}

func mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
