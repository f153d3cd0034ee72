// Copyright (C) 2020-2026, Confidis Authors. All rights reserved.
// See the file LICENSE for licensing terms.

// Package metrics wires the engine's Prometheus collectors, the way
// the teacher's metrics.Metrics wraps a prometheus.Registerer and
// registers each collector against it.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds every collector the engine reports. Callers that don't
// want Prometheus can pass prometheus.NewRegistry() and simply never
// scrape it.
type Metrics struct {
	Iterations      prometheus.Histogram
	IterationCap    prometheus.Counter
	Commands        *prometheus.CounterVec
	Questions       prometheus.Gauge
	Sources         prometheus.Gauge
	Submissions     prometheus.Gauge
	AnswerFlips     prometheus.Counter
}

// New creates and registers the engine's collectors against reg. It
// panics if reg already has collectors under these names, the same
// failure mode prometheus.MustRegister would give a caller who double-
// registers by mistake.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Iterations: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "confidis",
			Name:      "solve_iterations",
			Help:      "Number of fixed-point iterations a solve pass took.",
			Buckets:   []float64{1, 2, 3, 5, 8, 13, 21, 34, 50},
		}),
		IterationCap: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "confidis",
			Name:      "solve_iteration_cap_hits_total",
			Help:      "Number of solve passes that stopped at max_iterations while chosen answers were still changing.",
		}),
		Commands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "confidis",
			Name:      "commands_total",
			Help:      "Number of commands executed, by verb and outcome.",
		}, []string{"verb", "outcome"}),
		Questions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "confidis",
			Name:      "graph_questions",
			Help:      "Number of distinct questions in the graph.",
		}),
		Sources: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "confidis",
			Name:      "graph_sources",
			Help:      "Number of distinct sources in the graph.",
		}),
		Submissions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "confidis",
			Name:      "graph_submissions",
			Help:      "Number of submission edges in the graph.",
		}),
		AnswerFlips: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "confidis",
			Name:      "answer_flips_total",
			Help:      "Number of times a solve pass changed a question's cached answer.",
		}),
	}

	for _, c := range []prometheus.Collector{
		m.Iterations, m.IterationCap, m.Commands,
		m.Questions, m.Sources, m.Submissions, m.AnswerFlips,
	} {
		reg.MustRegister(c)
	}
	return m
}

// NoOp returns a Metrics registered against a private registry that
// nothing ever scrapes, for callers (tests, the REPL without
// --metrics-addr) that want the instrumentation calls to be valid
// no-ops rather than threading a nil check through the solver.
func NoOp() *Metrics {
	return New(prometheus.NewRegistry())
}
