package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsConfig configures the Prometheus metrics middleware.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "substrate").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for request duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus metrics middleware.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

// defaultMetricsConfig returns the default metrics configuration.
func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace:   "substrate",
		Subsystem:   "",
		ConstLabels: nil,
		Buckets:     prometheus.DefBuckets,
		Registry:    prometheus.DefaultRegisterer,
	}
}

// metrics holds the Prometheus metrics for a substrate-backed server.
type metrics struct {
	requestsTotal    *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	storeWrites      prometheus.Counter
	notificationsOut prometheus.Counter
	changeSignals    prometheus.Counter
	activeSessions   prometheus.Gauge
	wsErrors         *prometheus.CounterVec
}

// globalMetrics is the singleton metrics instance, created on the first
// call to Prometheus().
var (
	globalMetrics   *metrics
	globalMetricsMu sync.Mutex
)

// initMetrics initializes the Prometheus metrics.
func initMetrics(config MetricsConfig) *metrics {
	factory := promauto.With(config.Registry)

	return &metrics{
		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "requests_total",
			Help:        "Total number of HTTP requests processed",
			ConstLabels: config.ConstLabels,
		}, []string{"path", "status"}),

		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"path"}),

		storeWrites: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "store_writes_total",
			Help:        "Total number of store Set calls",
			ConstLabels: config.ConstLabels,
		}),

		notificationsOut: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "notifications_total",
			Help:        "Total number of subscriber notifications delivered",
			ConstLabels: config.ConstLabels,
		}),

		changeSignals: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "change_signals_total",
			Help:        "Total number of binding change signals delivered to consumers",
			ConstLabels: config.ConstLabels,
		}),

		activeSessions: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "active_sessions",
			Help:        "Number of active WebSocket sessions",
			ConstLabels: config.ConstLabels,
		}),

		wsErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "websocket_errors_total",
			Help:        "Total WebSocket errors by type",
			ConstLabels: config.ConstLabels,
		}, []string{"type"}),
	}
}

// statusWriter captures the response status code for labeling.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// Prometheus creates HTTP middleware that collects request metrics.
//
// Metrics collected:
//   - substrate_requests_total: Counter of requests by path and status
//   - substrate_request_duration_seconds: Histogram of request duration
//   - substrate_store_writes_total: Counter of store writes (via RecordStoreWrite)
//   - substrate_notifications_total: Counter of notifications (via RecordNotifications)
//   - substrate_change_signals_total: Counter of change signals (via RecordChangeSignal)
//   - substrate_active_sessions: Gauge of WebSocket sessions (via session hooks)
//   - substrate_websocket_errors_total: Counter of WebSocket errors
//
// Example:
//
//	r := chi.NewRouter()
//	r.Use(middleware.Prometheus(
//	    middleware.WithNamespace("myapp"),
//	))
//	r.Handle("/metrics", promhttp.Handler())
func Prometheus(opts ...MetricsOption) func(http.Handler) http.Handler {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}

	// Initialize metrics once
	globalMetricsMu.Lock()
	if globalMetrics == nil {
		globalMetrics = initMetrics(config)
	}
	m := globalMetrics
	globalMetricsMu.Unlock()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := r.URL.Path
			if path == "" {
				path = "/"
			}

			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()

			next.ServeHTTP(sw, r)

			m.requestDuration.WithLabelValues(path).Observe(time.Since(start).Seconds())
			m.requestsTotal.WithLabelValues(path, strconv.Itoa(sw.status)).Inc()
		})
	}
}

// =============================================================================
// Metrics Recording Functions
// =============================================================================

// RecordStoreWrite records one store Set call.
func RecordStoreWrite() {
	if globalMetrics != nil {
		globalMetrics.storeWrites.Inc()
	}
}

// RecordNotifications records subscriber notifications delivered for one
// update.
func RecordNotifications(count int) {
	if globalMetrics != nil {
		globalMetrics.notificationsOut.Add(float64(count))
	}
}

// RecordChangeSignal records a binding change signal delivered to a consumer.
func RecordChangeSignal() {
	if globalMetrics != nil {
		globalMetrics.changeSignals.Inc()
	}
}

// RecordSessionStart records a new WebSocket session.
func RecordSessionStart() {
	if globalMetrics != nil {
		globalMetrics.activeSessions.Inc()
	}
}

// RecordSessionEnd records a WebSocket session ending.
func RecordSessionEnd() {
	if globalMetrics != nil {
		globalMetrics.activeSessions.Dec()
	}
}

// RecordWebSocketError records a WebSocket error.
func RecordWebSocketError(errorType string) {
	if globalMetrics != nil {
		globalMetrics.wsErrors.WithLabelValues(errorType).Inc()
	}
}
