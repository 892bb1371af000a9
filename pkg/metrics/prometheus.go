// Package metrics provides Prometheus metrics for the retirement planner service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns all Prometheus collectors for the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	registry         prometheus.Registerer

	// Business metrics
	analysesTotal      prometheus.Counter
	analysesOnTrack    prometheus.Counter
	analysesOffTrack   prometheus.Counter
	validationFailures prometheus.Counter
	computationErrors  prometheus.Counter
	analysisDuration   prometheus.Histogram
	feasibilityScore   prometheus.Histogram

	// HTTP metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	errorsByEndpoint    *prometheus.CounterVec
	errorsByType        *prometheus.CounterVec

	// System metrics
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
	systemGCPauseTime    prometheus.Histogram
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // singleton metrics manager

// Custom registry so the default Go collectors stay out of /metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // singleton registry

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "secondwind",
		subsystem:        "planner",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.analysesTotal = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "analyses_total",
		Help:      "Total number of retirement analyses computed",
	})

	m.analysesOnTrack = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "analyses_on_track_total",
		Help:      "Analyses whose projected wealth met or exceeded the required corpus",
	})

	m.analysesOffTrack = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "analyses_off_track_total",
		Help:      "Analyses that reported a savings shortfall",
	})

	m.validationFailures = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "validation_failures_total",
		Help:      "Requests rejected by input validation",
	})

	m.computationErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "computation_errors_total",
		Help:      "Analyses aborted by non-finite or divide-by-zero conditions",
	})

	m.analysisDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "analysis_duration_milliseconds",
		Help:      "Histogram of projection computation latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.feasibilityScore = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "feasibility_score",
		Help:      "Distribution of feasibility scores returned to callers",
		Buckets:   []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100},
	})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_requests_total",
		Help:      "HTTP requests by endpoint, method and status code",
	}, []string{"endpoint", "method", "status_code"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_request_duration_milliseconds",
		Help:      "HTTP request latency in milliseconds",
		Buckets:   m.histogramBuckets,
	}, []string{"endpoint", "method", "status_code"})

	m.errorsByEndpoint = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "errors_by_endpoint_total",
		Help:      "Error responses by endpoint, method and error type",
	}, []string{"endpoint", "method", "error_type"})

	m.errorsByType = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "errors_by_type_total",
		Help:      "Error responses by error type and severity",
	}, []string{"error_type", "severity"})

	m.systemMemoryUsage = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_memory_bytes",
		Help:      "Current allocated heap memory in bytes",
	})

	m.systemGoroutineCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_goroutines",
		Help:      "Current number of goroutines",
	})

	m.systemGCPauseTime = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_gc_pause_milliseconds",
		Help:      "Average GC pause time in milliseconds",
		Buckets:   m.histogramBuckets,
	})
}

// GetRegistry returns the registry backing the global manager, for promhttp.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

// RecordAnalysis records a completed analysis with its outcome and latency.
func RecordAnalysis(onTrack bool, feasibilityScore, durationMs float64) {
	if !globalManager.enabled {
		return
	}
	globalManager.analysesTotal.Inc()
	if onTrack {
		globalManager.analysesOnTrack.Inc()
	} else {
		globalManager.analysesOffTrack.Inc()
	}
	globalManager.feasibilityScore.Observe(feasibilityScore)
	globalManager.analysisDuration.Observe(durationMs)
}

// RecordValidationFailure records a request rejected by validation.
func RecordValidationFailure() {
	if globalManager.enabled {
		globalManager.validationFailures.Inc()
	}
}

// RecordComputationError records an analysis aborted mid-computation.
func RecordComputationError() {
	if globalManager.enabled {
		globalManager.computationErrors.Inc()
	}
}

// RecordHTTPRequest records a completed HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	if globalManager.enabled {
		globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
	}
}

// RecordHTTPRequestDuration records HTTP request latency.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, durationMs float64) {
	if globalManager.enabled {
		globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
	}
}

// RecordErrorByEndpoint records an error response for an endpoint.
func RecordErrorByEndpoint(endpoint, method, errorType string) {
	if globalManager.enabled {
		globalManager.errorsByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
	}
}

// RecordErrorByType records an error response by type and severity.
func RecordErrorByType(errorType, severity string) {
	if globalManager.enabled {
		globalManager.errorsByType.WithLabelValues(errorType, severity).Inc()
	}
}

// UpdateSystemMemoryUsage sets the current allocated heap size.
func UpdateSystemMemoryUsage(bytes uint64) {
	if globalManager.enabled {
		globalManager.systemMemoryUsage.Set(float64(bytes))
	}
}

// UpdateSystemGoroutineCount sets the current goroutine count.
func UpdateSystemGoroutineCount(count int) {
	if globalManager.enabled {
		globalManager.systemGoroutineCount.Set(float64(count))
	}
}

// RecordSystemGCPauseTime records an average GC pause observation.
func RecordSystemGCPauseTime(pauseMs float64) {
	if globalManager.enabled {
		globalManager.systemGCPauseTime.Observe(pauseMs)
	}
}
