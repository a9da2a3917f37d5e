// Package metrics provides Prometheus metrics for the scouting service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Scoring run outcomes.
const (
	OutcomeOK                  = "ok"
	OutcomeInsufficientMetrics = "insufficient_metrics"
	OutcomeNotFound            = "not_found"
	OutcomeNoPlayers           = "no_players"
	OutcomeError               = "error"
)

// Row-count buckets for uploaded datasets.
var rowBuckets = []float64{10, 50, 100, 500, 1_000, 5_000, 10_000, 50_000, 100_000} //nolint:gochecknoglobals // static bucket layout

// Manager manages all Prometheus metrics for the scouting service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	constLabels      prometheus.Labels
	registry         prometheus.Registerer

	// Dataset ingestion
	datasetsLoaded      *prometheus.CounterVec
	datasetLoadFailures *prometheus.CounterVec
	datasetRows         prometheus.Histogram

	// Scoring
	scoringRuns    *prometheus.CounterVec
	scoringLatency prometheus.Histogram
	playersScored  prometheus.Counter
	missingMetrics *prometheus.CounterVec

	// Sessions
	activeSessions  prometheus.Gauge
	sessionsRemoved *prometheus.CounterVec

	// Agent tools
	toolCalls *prometheus.CounterVec

	// HTTP
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	httpErrors          *prometheus.CounterVec

	// Process and host
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
	systemGCPauseTime    prometheus.Histogram
	hostCPUPercent       prometheus.Gauge
	hostMemoryPercent    prometheus.Gauge
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "scout",
		subsystem:        "engine",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) counterOpts(name, help string) prometheus.CounterOpts {
	return prometheus.CounterOpts{Namespace: m.namespace, Subsystem: m.subsystem, Name: name, Help: help, ConstLabels: m.constLabels}
}

func (m *Manager) gaugeOpts(name, help string) prometheus.GaugeOpts {
	return prometheus.GaugeOpts{Namespace: m.namespace, Subsystem: m.subsystem, Name: name, Help: help, ConstLabels: m.constLabels}
}

func (m *Manager) histogramOpts(name, help string, buckets []float64) prometheus.HistogramOpts {
	return prometheus.HistogramOpts{Namespace: m.namespace, Subsystem: m.subsystem, Name: name, Help: help, ConstLabels: m.constLabels, Buckets: buckets}
}

func (m *Manager) initializeMetrics() { //nolint:funlen // one place for every metric definition
	auto := promauto.With(m.registry)

	m.datasetsLoaded = auto.NewCounterVec(
		m.counterOpts("datasets_loaded_total", "Datasets parsed successfully by file format"),
		[]string{"format"},
	)
	m.datasetLoadFailures = auto.NewCounterVec(
		m.counterOpts("dataset_load_failures_total", "Dataset uploads rejected by reason"),
		[]string{"reason"},
	)
	m.datasetRows = auto.NewHistogram(
		m.histogramOpts("dataset_rows", "Number of player rows per loaded dataset", rowBuckets),
	)

	m.scoringRuns = auto.NewCounterVec(
		m.counterOpts("scoring_runs_total", "Scoring runs by profile and outcome"),
		[]string{"profile", "outcome"},
	)
	m.scoringLatency = auto.NewHistogram(
		m.histogramOpts("scoring_latency_milliseconds", "Latency of one filter and score run in milliseconds", m.histogramBuckets),
	)
	m.playersScored = auto.NewCounter(
		m.counterOpts("players_scored_total", "Players scored across all runs"),
	)
	m.missingMetrics = auto.NewCounterVec(
		m.counterOpts("missing_metrics_total", "Profile metrics absent from scored datasets"),
		[]string{"profile"},
	)

	m.activeSessions = auto.NewGauge(
		m.gaugeOpts("active_sessions", "Analysis sessions currently held in memory"),
	)
	m.sessionsRemoved = auto.NewCounterVec(
		m.counterOpts("sessions_removed_total", "Sessions removed by reason"),
		[]string{"reason"},
	)

	m.toolCalls = auto.NewCounterVec(
		m.counterOpts("mcp_tool_calls_total", "Agent tool invocations by tool and outcome"),
		[]string{"tool", "outcome"},
	)

	m.httpRequests = auto.NewCounterVec(
		m.counterOpts("http_requests_total", "Total number of HTTP requests by endpoint and method"),
		[]string{"endpoint", "method", "status_code"},
	)
	m.httpRequestDuration = auto.NewHistogramVec(
		m.histogramOpts("http_request_duration_milliseconds", "HTTP request duration in milliseconds", m.histogramBuckets),
		[]string{"endpoint", "method", "status_code"},
	)
	m.httpErrors = auto.NewCounterVec(
		m.counterOpts("http_errors_total", "HTTP error responses by endpoint, method and error type"),
		[]string{"endpoint", "method", "error_type"},
	)

	m.systemMemoryUsage = auto.NewGauge(
		m.gaugeOpts("system_memory_usage_bytes", "Heap memory in use by the process"),
	)
	m.systemGoroutineCount = auto.NewGauge(
		m.gaugeOpts("system_goroutine_count", "Number of goroutines"),
	)
	m.systemGCPauseTime = auto.NewHistogram(
		m.histogramOpts("system_gc_pause_milliseconds", "Most recent GC pause in milliseconds", m.histogramBuckets),
	)
	m.hostCPUPercent = auto.NewGauge(
		m.gaugeOpts("host_cpu_percent", "Host CPU utilisation percentage"),
	)
	m.hostMemoryPercent = auto.NewGauge(
		m.gaugeOpts("host_memory_percent", "Host memory utilisation percentage"),
	)
}

// Dataset metrics.

// RecordDatasetLoaded counts a parsed dataset and observes its row count.
func RecordDatasetLoaded(format string, rows int) {
	globalManager.datasetsLoaded.WithLabelValues(format).Inc()
	globalManager.datasetRows.Observe(float64(rows))
}

// RecordDatasetLoadFailure counts a rejected upload.
func RecordDatasetLoadFailure(reason string) {
	globalManager.datasetLoadFailures.WithLabelValues(reason).Inc()
}

// Scoring metrics.

// RecordScoringRun counts a run and observes its latency.
func RecordScoringRun(profile, outcome string, latencyMs float64) {
	globalManager.scoringRuns.WithLabelValues(profile, outcome).Inc()
	globalManager.scoringLatency.Observe(latencyMs)
}

// RecordPlayersScored adds to the scored players counter.
func RecordPlayersScored(n int) {
	globalManager.playersScored.Add(float64(n))
}

// RecordMissingMetrics counts profile metrics a dataset lacked.
func RecordMissingMetrics(profile string, n int) {
	if n <= 0 {
		return
	}
	globalManager.missingMetrics.WithLabelValues(profile).Add(float64(n))
}

// Session metrics.

// UpdateActiveSessions sets the number of live sessions.
func UpdateActiveSessions(n int) {
	globalManager.activeSessions.Set(float64(n))
}

// RecordSessionRemoved counts a session leaving the store.
func RecordSessionRemoved(reason string) {
	globalManager.sessionsRemoved.WithLabelValues(reason).Inc()
}

// RecordToolCall counts an agent tool invocation.
func RecordToolCall(tool, outcome string) {
	globalManager.toolCalls.WithLabelValues(tool, outcome).Inc()
}

// HTTP metrics.

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, duration float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(duration)
}

// RecordHTTPError records an error response.
func RecordHTTPError(endpoint, method, errorType string) {
	globalManager.httpErrors.WithLabelValues(endpoint, method, errorType).Inc()
}

// System metrics.

// UpdateSystemMemoryUsage sets the process memory usage in bytes.
func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the number of goroutines.
func UpdateSystemGoroutineCount(count int) {
	globalManager.systemGoroutineCount.Set(float64(count))
}

// RecordSystemGCPauseTime records GC pause time in milliseconds.
func RecordSystemGCPauseTime(pauseMs float64) {
	globalManager.systemGCPauseTime.Observe(pauseMs)
}

// UpdateHostCPUPercent sets host CPU utilisation.
func UpdateHostCPUPercent(pct float64) {
	globalManager.hostCPUPercent.Set(pct)
}

// UpdateHostMemoryPercent sets host memory utilisation.
func UpdateHostMemoryPercent(pct float64) {
	globalManager.hostMemoryPercent.Set(pct)
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
