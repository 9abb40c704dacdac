package telemetry

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics collects Prometheus metrics for the synthesis engine. A disabled
// Metrics instance is a no-op, so engine components record unconditionally.
type Metrics struct {
	config MetricsConfig

	producersDiscovered  *prometheus.CounterVec
	sequencesSynthesized *prometheus.CounterVec
	executions           *prometheus.CounterVec
	poolInsertions       prometheus.Counter
	fuzzOperations       *prometheus.CounterVec

	registry *prometheus.Registry
}

// NewMetrics creates a metrics collector with the given configuration.
func NewMetrics(cfg MetricsConfig) *Metrics {
	if !cfg.Enabled {
		return &Metrics{config: cfg}
	}

	namespace := cfg.Namespace
	registry := prometheus.NewRegistry()

	m := &Metrics{
		config:   cfg,
		registry: registry,

		producersDiscovered: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "producers_discovered_total",
				Help:      "Total producer operations discovered by graph search",
			},
			[]string{"target_type"},
		),
		sequencesSynthesized: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "sequences_synthesized_total",
				Help:      "Total synthesis attempts by result",
			},
			[]string{"result"},
		),
		executions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "executions_total",
				Help:      "Total sequence executions by final outcome",
			},
			[]string{"outcome"},
		),
		poolInsertions: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "pool_insertions_total",
				Help:      "Total values inserted into object pools",
			},
		),
		fuzzOperations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "fuzz_operations_total",
				Help:      "Total fuzz applications by strategy",
			},
			[]string{"strategy"},
		),
	}

	registry.MustRegister(
		m.producersDiscovered,
		m.sequencesSynthesized,
		m.executions,
		m.poolInsertions,
		m.fuzzOperations,
	)

	return m
}

// RecordProducersDiscovered counts producers found for a target type.
func (m *Metrics) RecordProducersDiscovered(targetType string, n int) {
	if m.registry == nil {
		return
	}
	m.producersDiscovered.WithLabelValues(targetType).Add(float64(n))
}

// RecordSynthesis counts one synthesis attempt. result is "ok" or "failed".
func (m *Metrics) RecordSynthesis(result string) {
	if m.registry == nil {
		return
	}
	m.sequencesSynthesized.WithLabelValues(result).Inc()
}

// RecordExecution counts one sequence execution by its final outcome.
func (m *Metrics) RecordExecution(outcome string) {
	if m.registry == nil {
		return
	}
	m.executions.WithLabelValues(outcome).Inc()
}

// RecordPoolInsertion counts one value entering a pool.
func (m *Metrics) RecordPoolInsertion() {
	if m.registry == nil {
		return
	}
	m.poolInsertions.Inc()
}

// RecordFuzz counts one fuzz application by strategy name.
func (m *Metrics) RecordFuzz(strategy string) {
	if m.registry == nil {
		return
	}
	m.fuzzOperations.WithLabelValues(strategy).Inc()
}

// Handler returns an HTTP handler exposing the private registry, or nil when
// metrics are disabled.
func (m *Metrics) Handler() http.Handler {
	if m.registry == nil {
		return nil
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
