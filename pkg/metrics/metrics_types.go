package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds all metrics for a graph construction run. A nil *Registry
// is a valid collaborator: every recording method no-ops on nil, so callers
// never guard metric calls.
type Registry struct {
	// Definition provider metrics
	LookupsTotal   *prometheus.CounterVec // labels: source, outcome
	LookupDuration prometheus.Histogram   // live HTTP lookups only

	// Crawler metrics
	WordsProcessedTotal prometheus.Counter
	VerdictsTotal       *prometheus.CounterVec // labels: verdict, rule

	// Graph store metrics
	GraphNodesTotal prometheus.Gauge
	GraphEdgesTotal prometheus.Gauge

	registry *prometheus.Registry
}

// Lookup source label values
const (
	SourceCache = "cache"
	SourceLive  = "live"
)

// Lookup outcome label values
const (
	OutcomeFound   = "found"
	OutcomeMissing = "missing"
)

var (
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the process-wide metrics registry
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a new metrics registry with all metrics initialized
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{
		registry: reg,
	}

	r.initLookupMetrics()
	r.initCrawlMetrics()
	r.initGraphMetrics()

	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}
