package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initLookupMetrics() {
	r.LookupsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "wordgraph_lookups_total",
			Help: "Definition lookups by source (cache/live) and outcome (found/missing)",
		},
		[]string{"source", "outcome"},
	)

	r.LookupDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "wordgraph_lookup_duration_seconds",
			Help:    "Live definition lookup duration in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0},
		},
	)
}

func (r *Registry) initCrawlMetrics() {
	r.WordsProcessedTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "wordgraph_crawl_words_processed_total",
			Help: "Words dequeued and processed during graph construction",
		},
	)

	r.VerdictsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "wordgraph_classifier_verdicts_total",
			Help: "Relevance classifier verdicts by outcome and deciding rule",
		},
		[]string{"verdict", "rule"},
	)
}

func (r *Registry) initGraphMetrics() {
	r.GraphNodesTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "wordgraph_graph_nodes_total",
			Help: "Total number of nodes in the semantic graph",
		},
	)

	r.GraphEdgesTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "wordgraph_graph_edges_total",
			Help: "Total number of edges in the semantic graph",
		},
	)
}

// ObserveLookup records a lookup with its source and outcome.
func (r *Registry) ObserveLookup(source, outcome string) {
	if r == nil {
		return
	}
	r.LookupsTotal.WithLabelValues(source, outcome).Inc()
}

// ObserveLookupDuration records the latency of a live lookup.
func (r *Registry) ObserveLookupDuration(d time.Duration) {
	if r == nil {
		return
	}
	r.LookupDuration.Observe(d.Seconds())
}

// ObserveWordProcessed counts one dequeued word.
func (r *Registry) ObserveWordProcessed() {
	if r == nil {
		return
	}
	r.WordsProcessedTotal.Inc()
}

// ObserveVerdict records a classifier verdict and the rule that decided it.
func (r *Registry) ObserveVerdict(verdict, rule string) {
	if r == nil {
		return
	}
	r.VerdictsTotal.WithLabelValues(verdict, rule).Inc()
}

// SetGraphSize updates the node and edge gauges.
func (r *Registry) SetGraphSize(nodes, edges int) {
	if r == nil {
		return
	}
	r.GraphNodesTotal.Set(float64(nodes))
	r.GraphEdgesTotal.Set(float64(edges))
}
