package metrics

import (
	"net/http"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Config supplies the constant labels attached to every series.
type Config struct {
	ServiceName string
	Environment string
}

// IngestMetrics counts import rows, batches and summarizer calls on its own
// registry.
type IngestMetrics struct {
	registry  *prometheus.Registry
	rows      *prometheus.CounterVec
	batches   *prometheus.CounterVec
	summaries *prometheus.CounterVec
}

func NewIngestMetrics(cfg Config) *IngestMetrics {
	serviceName := strings.TrimSpace(cfg.ServiceName)
	if serviceName == "" {
		serviceName = "settlement-console"
	}
	environment := strings.TrimSpace(cfg.Environment)
	if environment == "" {
		environment = "unknown"
	}
	constLabels := prometheus.Labels{
		"service": serviceName,
		"env":     environment,
	}

	m := &IngestMetrics{
		registry: prometheus.NewRegistry(),
		rows: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "console_import_rows_total",
			Help:        "Imported rows by record kind and outcome.",
			ConstLabels: constLabels,
		}, []string{"kind", "outcome"}),
		batches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "console_import_batches_total",
			Help:        "Import batches by record kind and result.",
			ConstLabels: constLabels,
		}, []string{"kind", "result"}),
		summaries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "console_summaries_total",
			Help:        "Summarizer calls by insight kind and result.",
			ConstLabels: constLabels,
		}, []string{"kind", "result"}),
	}
	m.registry.MustRegister(
		m.rows,
		m.batches,
		m.summaries,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveRows adds n rows; zero counts still create the series.
func (m *IngestMetrics) ObserveRows(kind, outcome string, n int) {
	m.rows.WithLabelValues(label(kind), outcome).Add(float64(n))
}

func (m *IngestMetrics) ObserveBatch(kind, result string) {
	m.batches.WithLabelValues(label(kind), result).Inc()
}

func (m *IngestMetrics) ObserveSummary(kind, result string) {
	m.summaries.WithLabelValues(kind, result).Inc()
}

func (m *IngestMetrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *IngestMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// label keeps caller-supplied kinds from blowing up cardinality.
func label(kind string) string {
	switch kind {
	case "order", "settlement", "kpi", "part":
		return kind
	}
	return "other"
}
