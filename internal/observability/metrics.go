package observability

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/lcarotenuto/questionario-ampasilava/internal/domain"
)

const namespace = "questionario"

// Metrics holds the Prometheus counters, histograms, and gauges for the
// registry, the sync pipeline and the update checker.
type Metrics struct {
	WHZEvaluations *prometheus.CounterVec // labels: outcome={not_malnourished,moderate,severe,indeterminate,error}
	RecordsSaved   *prometheus.CounterVec // labels: op={create,update}

	// Sync pipeline metrics.
	MessagesConsumed        prometheus.Counter
	MessagesProduced        prometheus.Counter
	SyncErrors              prometheus.Counter
	PipelineRunning         prometheus.Gauge
	BatchSize               prometheus.Histogram
	BatchProcessingDuration prometheus.Histogram

	UpdateChecks *prometheus.CounterVec // labels: outcome={current,available,error}
}

// NewMetrics creates and registers all metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.WHZEvaluations,
		m.RecordsSaved,
		m.MessagesConsumed,
		m.MessagesProduced,
		m.SyncErrors,
		m.PipelineRunning,
		m.BatchSize,
		m.BatchProcessingDuration,
		m.UpdateChecks,
	)
	return m
}

// NewMetricsForTesting creates Metrics that are not registered anywhere, so
// tests can build as many as they like.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		WHZEvaluations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "whz_evaluations_total",
			Help:      "WHZ evaluations by outcome.",
		}, []string{"outcome"}),
		RecordsSaved: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_saved_total",
			Help:      "Survey records written to the store.",
		}, []string{"op"}),
		MessagesConsumed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sync_messages_consumed_total",
			Help:      "Unsynced records read from the store.",
		}),
		MessagesProduced: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sync_messages_produced_total",
			Help:      "Record events written to the sync topic.",
		}),
		SyncErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sync_errors_total",
			Help:      "Records that could not be serialized for sync.",
		}),
		PipelineRunning: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "pipeline_running",
			Help:      "1 when the sync pipeline is active, 0 when shut down.",
		}),
		BatchSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "batch_size",
			Help:      "Number of records per sync batch.",
			Buckets:   []float64{1, 5, 10, 20, 30, 40, 50, 75, 100},
		}),
		BatchProcessingDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "batch_processing_duration_seconds",
			Help:      "Duration of a complete sync batch.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10},
		}),
		UpdateChecks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "update_checks_total",
			Help:      "Update checks by outcome.",
		}, []string{"outcome"}),
	}
}

// ObserveWHZ counts one evaluation outcome.
func (m *Metrics) ObserveWHZ(res domain.Result, err error) {
	m.WHZEvaluations.WithLabelValues(WHZOutcome(res, err)).Inc()
}

// WHZOutcome is the metric label for an evaluation.
func WHZOutcome(res domain.Result, err error) string {
	if err != nil {
		return "error"
	}
	switch res.Severity {
	case domain.SeverityNone:
		return "not_malnourished"
	case domain.SeverityModerate:
		return "moderate"
	case domain.SeveritySevere:
		return "severe"
	default:
		return "indeterminate"
	}
}
