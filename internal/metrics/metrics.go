// Package metrics records MST runs in a private prometheus registry and can
// dump it in the node_exporter textfile format.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Run describes one solver invocation.
type Run struct {
	Method      string
	Weight      int64
	Vertices    int
	Edges       int
	Spanned     int
	Relaxations int
	Duration    time.Duration
}

// Recorder owns the mstweight collectors.
type Recorder struct {
	registry *prometheus.Registry

	runsTotal        *prometheus.CounterVec
	totalWeight      prometheus.Gauge
	vertices         prometheus.Gauge
	edges            prometheus.Gauge
	spanned          prometheus.Gauge
	relaxationsTotal prometheus.Counter
	runDuration      prometheus.Histogram
}

// NewRecorder creates a Recorder backed by a fresh registry.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		runsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mstweight_runs_total",
				Help: "Total number of MST computations by method",
			},
			[]string{"method"},
		),
		totalWeight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "mstweight_total_weight",
			Help: "Weight of the most recent spanning tree",
		}),
		vertices: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "mstweight_vertices",
			Help: "Vertex count of the most recent input graph",
		}),
		edges: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "mstweight_edges",
			Help: "Edge count of the most recent input graph",
		}),
		spanned: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "mstweight_spanned_vertices",
			Help: "Vertices reached by the most recent spanning tree",
		}),
		relaxationsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "mstweight_relaxations_total",
			Help: "Total number of priority-queue pushes issued by the solver",
		}),
		runDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "mstweight_run_duration_seconds",
			Help:    "Duration of MST computations",
			Buckets: prometheus.ExponentialBuckets(0.00001, 10, 7),
		}),
	}

	r.registry.MustRegister(
		r.runsTotal,
		r.totalWeight,
		r.vertices,
		r.edges,
		r.spanned,
		r.relaxationsTotal,
		r.runDuration,
	)

	return r
}

// Registry returns the registry holding the recorder's collectors.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Observe records run.
func (r *Recorder) Observe(run Run) {
	r.runsTotal.WithLabelValues(run.Method).Inc()
	r.totalWeight.Set(float64(run.Weight))
	r.vertices.Set(float64(run.Vertices))
	r.edges.Set(float64(run.Edges))
	r.spanned.Set(float64(run.Spanned))
	r.relaxationsTotal.Add(float64(run.Relaxations))
	r.runDuration.Observe(run.Duration.Seconds())
}

// WriteTextfile writes the registry to path in the text exposition format.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("metrics: write %s: %w", path, err)
	}

	return nil
}
