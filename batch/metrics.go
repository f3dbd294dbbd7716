// SPDX-License-Identifier: MIT
// Package: batch
//
// metrics.go - Prometheus instrumentation on a private registry.

package batch

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	metricsNamespace = "escort"
	batchSubsystem   = "batch"
)

// Metrics holds the batch collectors. The zero value is not usable; build
// one with NewMetrics.
type Metrics struct {
	registry *prometheus.Registry

	InstancesTotal   *prometheus.CounterVec
	Rounds           prometheus.Histogram
	StatesExpanded   prometheus.Counter
	CandidatesPruned prometheus.Counter
	SolveSeconds     prometheus.Histogram
}

// NewMetrics registers the batch collectors on a fresh registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,
		InstancesTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: batchSubsystem,
			Name:      "instances_total",
			Help:      "Instances processed, by outcome status",
		}, []string{"status"}),
		Rounds: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: batchSubsystem,
			Name:      "rounds",
			Help:      "Minimal round count of solved instances",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
		}),
		StatesExpanded: f.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: batchSubsystem,
			Name:      "states_expanded_total",
			Help:      "Joint states expanded across all searches",
		}),
		CandidatesPruned: f.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: batchSubsystem,
			Name:      "candidates_pruned_total",
			Help:      "B candidates rejected by the separation rule",
		}),
		SolveSeconds: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: batchSubsystem,
			Name:      "solve_duration_seconds",
			Help:      "Wall time per instance: parse, distances, search and checks",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 10),
		}),
	}
}

// Registry exposes the private registry, e.g. for an HTTP handler or tests.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// WriteTextfile writes all metrics in the text exposition format, atomically.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}

func (m *Metrics) observe(it *Item) {
	if m == nil {
		return
	}
	m.InstancesTotal.WithLabelValues(it.Status.String()).Inc()
	m.SolveSeconds.Observe(it.Elapsed.Seconds())
	m.StatesExpanded.Add(float64(it.Stats.Expanded))
	m.CandidatesPruned.Add(float64(it.Stats.Pruned))
	if it.Found {
		m.Rounds.Observe(float64(it.Rounds))
	}
}
