// Package metrics exports traversal and search statistics to Prometheus.
//
// A Collector implements core.Observer; pass it to any algorithm through its
// WithObserver option:
//
//	reg := prometheus.NewRegistry()
//	c := metrics.New(reg)
//	tree, err := shortest.Dijkstra(g, 0, shortest.WithObserver(c))
//
// Exported series (namespace "pathgraph", subsystem "search"):
//
//	runs_total{algorithm,outcome}         counter
//	duration_seconds{algorithm}           histogram
//	settled_nodes{algorithm}              histogram
//	relaxations_total{algorithm}          counter
package metrics

import (
	"errors"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"

	"github.com/katalvlaran/pathgraph/bfs"
	"github.com/katalvlaran/pathgraph/core"
	"github.com/katalvlaran/pathgraph/dfs"
	"github.com/katalvlaran/pathgraph/shortest"
)

// Outcome label values.
const (
	OutcomeOK          = "ok"
	OutcomeUnreachable = "unreachable"
	OutcomeError       = "error"
)

// Collector records core.RunStats into Prometheus vectors. It is safe for
// concurrent use.
type Collector struct {
	runs        *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	settled     *prometheus.HistogramVec
	relaxations *prometheus.CounterVec
}

var _ core.Observer = (*Collector)(nil)

// New creates a Collector and registers its vectors with reg.
// A nil reg leaves the vectors unregistered. Registering twice on the same
// registry panics, as with promauto.
func New(reg prometheus.Registerer) *Collector {
	f := promauto.With(reg)

	return &Collector{
		runs: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pathgraph",
			Subsystem: "search",
			Name:      "runs_total",
			Help:      "Traversal and search runs by algorithm and outcome",
		}, []string{"algorithm", "outcome"}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "pathgraph",
			Subsystem: "search",
			Name:      "duration_seconds",
			Help:      "Wall time of one run in seconds",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 12),
		}, []string{"algorithm"}),
		settled: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "pathgraph",
			Subsystem: "search",
			Name:      "settled_nodes",
			Help:      "Nodes visited or settled per run",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		}, []string{"algorithm"}),
		relaxations: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pathgraph",
			Subsystem: "search",
			Name:      "relaxations_total",
			Help:      "Successful edge relaxations",
		}, []string{"algorithm"}),
	}
}

// ObserveRun implements core.Observer.
func (c *Collector) ObserveRun(s core.RunStats) {
	c.runs.WithLabelValues(s.Algorithm, Outcome(s.Err)).Inc()
	c.duration.WithLabelValues(s.Algorithm).Observe(s.Duration.Seconds())
	c.settled.WithLabelValues(s.Algorithm).Observe(float64(s.Settled))
	if s.Relaxations > 0 {
		c.relaxations.WithLabelValues(s.Algorithm).Add(float64(s.Relaxations))
	}
}

// Outcome classifies a run error into an outcome label value.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, shortest.ErrUnreachable),
		errors.Is(err, bfs.ErrNoPath), errors.Is(err, dfs.ErrNoPath):
		return OutcomeUnreachable
	default:
		return OutcomeError
	}
}

// WriteText gathers g and writes every family in the Prometheus text format.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}

	return nil
}
