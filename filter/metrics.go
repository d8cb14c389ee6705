package filter

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/c360/graphfilter/errors"
)

// Metrics provides Prometheus metrics for the filter engine. All
// recording methods are nil-safe so an engine without metrics costs
// nothing.
type Metrics struct {
	evaluationsTotal   prometheus.Counter
	evaluationDuration prometheus.Histogram
	matchedNodes       prometheus.Gauge
	matchedEdges       prometheus.Gauge
	parseFailures      prometheus.Counter
}

// NewMetrics creates and registers engine metrics on the given registerer.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		evaluationsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "graphfilter",
			Subsystem: "engine",
			Name:      "evaluations_total",
			Help:      "Total number of filter evaluations",
		}),
		evaluationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "graphfilter",
			Subsystem: "engine",
			Name:      "evaluation_duration_seconds",
			Help:      "Wall time of one full filter evaluation",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 12),
		}),
		matchedNodes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "graphfilter",
			Subsystem: "engine",
			Name:      "matched_nodes",
			Help:      "Node match count of the most recent evaluation",
		}),
		matchedEdges: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "graphfilter",
			Subsystem: "engine",
			Name:      "matched_edges",
			Help:      "Edge match count (direct plus inferred) of the most recent evaluation",
		}),
		parseFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "graphfilter",
			Subsystem: "parser",
			Name:      "failures_total",
			Help:      "Total number of rejected filter expressions",
		}),
	}

	collectors := []prometheus.Collector{
		m.evaluationsTotal,
		m.evaluationDuration,
		m.matchedNodes,
		m.matchedEdges,
		m.parseFailures,
	}
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			return nil, errors.Wrap(err, "Metrics", "NewMetrics", "collector registration")
		}
	}
	return m, nil
}

// observeEvaluation records one completed evaluation.
func (m *Metrics) observeEvaluation(elapsed time.Duration, result Result) {
	if m == nil {
		return
	}
	m.evaluationsTotal.Inc()
	m.evaluationDuration.Observe(elapsed.Seconds())
	m.matchedNodes.Set(float64(len(result.NodeIDs)))
	m.matchedEdges.Set(float64(len(result.EdgeIDs())))
}

// ParseFailure records one rejected filter expression.
func (m *Metrics) ParseFailure() {
	if m == nil {
		return
	}
	m.parseFailures.Inc()
}
