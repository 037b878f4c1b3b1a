// Package metrics provides Prometheus metrics for the park-fit scoring engine.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns all Prometheus collectors for the service.
type Manager struct {
	namespace        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Batch scoring metrics.
	pairsScored    prometheus.Counter
	hittersSkipped prometheus.Counter
	eventsExcluded prometheus.Counter
	scoringErrors  prometheus.Counter
	scoringLatency prometheus.Histogram
	resultCount    prometheus.Gauge

	// Queue metrics.
	queueSize        prometheus.Gauge
	queueCapacity    prometheus.Gauge
	queueUtilization prometheus.Gauge
	queueEnqueues    prometheus.Counter
	queueDequeues    prometheus.Counter
	queueErrors      prometheus.Counter

	// Worker metrics.
	workerCount   prometheus.Gauge
	workerLatency prometheus.Histogram
	workerErrors  prometheus.Counter

	// HTTP metrics.
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// Global manager backed by a custom registry so default Go collectors stay out.
var globalManager *Manager                    //nolint:gochecknoglobals // singleton metrics manager
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // singleton registry

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithRegistry(customRegistry))
}

// NewManager creates a metrics manager and registers all collectors.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "parkfit",
		histogramBuckets: []float64{0.1, 0.5, 1, 5, 10, 50, 100, 500, 1000},
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	factory := promauto.With(m.registry)

	m.pairsScored = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "pairs_scored_total",
		Help:      "Number of hitter-stadium pairs scored.",
	})
	m.hittersSkipped = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "hitters_skipped_total",
		Help:      "Number of hitters skipped for having no batted-ball events.",
	})
	m.eventsExcluded = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "events_excluded_total",
		Help:      "Number of batted-ball events excluded from geometry-dependent scoring.",
	})
	m.scoringErrors = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "scoring_errors_total",
		Help:      "Number of pair evaluations that failed.",
	})
	m.scoringLatency = factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "pair_scoring_duration_ms",
		Help:      "Latency of a single pair evaluation in milliseconds.",
		Buckets:   m.histogramBuckets,
	})
	m.resultCount = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      "results_total",
		Help:      "Number of match results currently held in the store.",
	})

	m.queueSize = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      "queue_size",
		Help:      "Current number of queued pair jobs.",
	})
	m.queueCapacity = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      "queue_capacity",
		Help:      "Configured pair-job queue capacity.",
	})
	m.queueUtilization = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      "queue_utilization",
		Help:      "Queue fill ratio between 0 and 1.",
	})
	m.queueEnqueues = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "queue_enqueues_total",
		Help:      "Number of pair jobs enqueued.",
	})
	m.queueDequeues = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "queue_dequeues_total",
		Help:      "Number of pair jobs dequeued.",
	})
	m.queueErrors = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "queue_enqueue_errors_total",
		Help:      "Number of failed enqueue attempts.",
	})

	m.workerCount = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      "worker_count",
		Help:      "Number of scoring workers.",
	})
	m.workerLatency = factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "worker_processing_duration_ms",
		Help:      "End-to-end job processing latency in milliseconds.",
		Buckets:   m.histogramBuckets,
	})
	m.workerErrors = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "worker_errors_total",
		Help:      "Number of worker-level processing errors.",
	})

	m.httpRequests = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests by endpoint, method and status code.",
	}, []string{"endpoint", "method", "status"})
	m.httpRequestDuration = factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "http_request_duration_ms",
		Help:      "HTTP request latency in milliseconds.",
		Buckets:   m.histogramBuckets,
	}, []string{"endpoint", "method"})
}

// Package-level recorders operating on the global manager.

func RecordPairScored()              { globalManager.pairsScored.Inc() }
func RecordHitterSkipped()           { globalManager.hittersSkipped.Inc() }
func RecordEventsExcluded(n int)     { globalManager.eventsExcluded.Add(float64(n)) }
func RecordScoringError()            { globalManager.scoringErrors.Inc() }
func RecordScoringLatency(ms float64) { globalManager.scoringLatency.Observe(ms) }
func UpdateResultCount(n int)        { globalManager.resultCount.Set(float64(n)) }

func UpdateQueueSize(n int)              { globalManager.queueSize.Set(float64(n)) }
func UpdateQueueCapacity(n int)          { globalManager.queueCapacity.Set(float64(n)) }
func UpdateQueueUtilization(r float64)   { globalManager.queueUtilization.Set(r) }
func RecordQueueEnqueue()                { globalManager.queueEnqueues.Inc() }
func RecordQueueDequeue()                { globalManager.queueDequeues.Inc() }
func RecordQueueEnqueueError()           { globalManager.queueErrors.Inc() }

func UpdateWorkerCount(n int)               { globalManager.workerCount.Set(float64(n)) }
func RecordWorkerProcessingLatency(ms float64) { globalManager.workerLatency.Observe(ms) }
func RecordWorkerError()                    { globalManager.workerErrors.Inc() }

func RecordHTTPRequest(endpoint, method, status string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, status).Inc()
}

func RecordHTTPRequestDuration(endpoint, method string, ms float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method).Observe(ms)
}

// GetRegistry exposes the custom registry for the /healthz metrics handler.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
