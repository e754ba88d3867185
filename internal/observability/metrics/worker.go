package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type WorkerMetrics struct {
	registry *prometheus.Registry

	processTotal    *prometheus.CounterVec
	processDuration *prometheus.HistogramVec
	processInFlight prometheus.Gauge
	queueLag        *prometheus.HistogramVec

	issuesTotal    *prometheus.CounterVec
	riskLevelTotal *prometheus.CounterVec
	tasksTotal     *prometheus.CounterVec
}

func NewWorkerMetrics(service string) *WorkerMetrics {
	registry := prometheus.NewRegistry()

	processTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "estatedocs",
			Subsystem: "worker",
			Name:      "document_process_total",
			Help:      "Total processed documents by status.",
		},
		[]string{"service", "status"},
	)
	processDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "estatedocs",
			Subsystem: "worker",
			Name:      "document_process_duration_seconds",
			Help:      "Document processing duration in seconds by status.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"service", "status"},
	)
	processInFlight := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "estatedocs",
			Subsystem: "worker",
			Name:      "document_process_in_flight",
			Help:      "Number of in-flight document processing tasks.",
			ConstLabels: prometheus.Labels{
				"service": service,
			},
		},
	)
	queueLag := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "estatedocs",
			Subsystem: "worker",
			Name:      "queue_lag_seconds",
			Help:      "Delay between document creation and processing start.",
			Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60, 120, 300, 600},
		},
		[]string{"service"},
	)
	issuesTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "estatedocs",
			Subsystem: "analysis",
			Name:      "issues_total",
			Help:      "Total risk issues detected by severity.",
		},
		[]string{"service", "severity"},
	)
	riskLevelTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "estatedocs",
			Subsystem: "analysis",
			Name:      "risk_level_total",
			Help:      "Total analyzed documents by overall risk level.",
		},
		[]string{"service", "level"},
	)
	tasksTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "estatedocs",
			Subsystem: "analysis",
			Name:      "tasks_generated_total",
			Help:      "Total remediation tasks generated by severity.",
		},
		[]string{"service", "severity"},
	)

	registry.MustRegister(processTotal, processDuration, processInFlight, queueLag, issuesTotal, riskLevelTotal, tasksTotal)

	return &WorkerMetrics{
		registry:        registry,
		processTotal:    processTotal,
		processDuration: processDuration,
		processInFlight: processInFlight,
		queueLag:        queueLag,
		issuesTotal:     issuesTotal,
		riskLevelTotal:  riskLevelTotal,
		tasksTotal:      tasksTotal,
	}
}

func (m *WorkerMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *WorkerMetrics) StartDocument() {
	m.processInFlight.Inc()
}

func (m *WorkerMetrics) FinishDocument(service string, duration time.Duration, err error) {
	m.processInFlight.Dec()

	status := "success"
	if err != nil {
		status = "error"
	}

	m.processTotal.WithLabelValues(service, status).Inc()
	m.processDuration.WithLabelValues(service, status).Observe(duration.Seconds())
}

func (m *WorkerMetrics) ObserveQueueLag(service string, lag time.Duration) {
	if lag < 0 {
		return
	}
	m.queueLag.WithLabelValues(service).Observe(lag.Seconds())
}

func (m *WorkerMetrics) RecordIssue(service, severity string) {
	m.issuesTotal.WithLabelValues(service, severity).Inc()
}

func (m *WorkerMetrics) RecordRiskLevel(service, level string) {
	m.riskLevelTotal.WithLabelValues(service, level).Inc()
}

func (m *WorkerMetrics) RecordTask(service, severity string) {
	m.tasksTotal.WithLabelValues(service, severity).Inc()
}
