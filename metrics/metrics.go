// Package metrics defines Prometheus metrics for maze solving.
package metrics

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/mazeway/solver"
)

// Result label values of mazeway_solves_total.
const (
	ResultSolved     = "solved"
	ResultNoSolution = "no_solution"
	ResultError      = "error"
)

// Metrics owns a private registry so several runs in one process never
// collide on the default registerer.
type Metrics struct {
	Registry *prometheus.Registry

	solves     *prometheus.CounterVec
	duration   prometheus.Histogram
	explored   prometheus.Histogram
	pathLength prometheus.Histogram
}

// New creates and registers all solver metrics.
func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		solves: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mazeway_solves_total",
				Help: "Total maze solves by result",
			},
			[]string{"result"},
		),
		duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "mazeway_solve_duration_seconds",
				Help:    "Time spent solving one maze, decoding and encoding included",
				Buckets: prometheus.ExponentialBuckets(0.001, 4, 8),
			},
		),
		explored: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "mazeway_cells_explored",
				Help:    "Cells discovered by the breadth-first traversal",
				Buckets: prometheus.ExponentialBuckets(16, 4, 10),
			},
		),
		pathLength: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "mazeway_path_length",
				Help:    "Number of cells on the solution path",
				Buckets: prometheus.ExponentialBuckets(4, 4, 9),
			},
		),
	}
	m.Registry.MustRegister(m.solves, m.duration, m.explored, m.pathLength)
	return m
}

// Observe records one solve attempt. res may be nil when err is non-nil.
func (m *Metrics) Observe(res *solver.Result, err error, d time.Duration) {
	m.duration.Observe(d.Seconds())
	switch {
	case err == nil && res != nil:
		m.solves.WithLabelValues(ResultSolved).Inc()
		m.explored.Observe(float64(res.Explored))
		m.pathLength.Observe(float64(len(res.Path)))
	case errors.Is(err, solver.ErrNoSolution):
		m.solves.WithLabelValues(ResultNoSolution).Inc()
	default:
		m.solves.WithLabelValues(ResultError).Inc()
	}
}

// WriteTextfile writes the current metrics to path in the text exposition
// format, suitable for a node_exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.Registry); err != nil {
		return fmt.Errorf("metrics: write %s: %w", path, err)
	}
	return nil
}
