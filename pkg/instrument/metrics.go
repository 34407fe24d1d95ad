package instrument

import (
	stderrors "errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/vango-dev/jst/internal/errors"
	"github.com/vango-dev/jst/pkg/dom"
	"github.com/vango-dev/jst/pkg/jst"
)

// MetricsConfig configures the Prometheus observer.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "jst").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for refresh duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus observer.
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

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "jst",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics is a jst.Observer that records engine activity in Prometheus.
type Metrics struct {
	refreshes       *prometheus.CounterVec
	refreshDuration *prometheus.HistogramVec
	refreshErrors   *prometheus.CounterVec
	targetOps       *prometheus.CounterVec
	teardowns       *prometheus.CounterVec
}

var _ jst.Observer = (*Metrics)(nil)

// NewMetrics registers the engine metrics and returns the observer feeding
// them. Registering twice on the same registry panics, as with promauto.
func NewMetrics(opts ...MetricsOption) *Metrics {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	return &Metrics{
		refreshes: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "refreshes_total",
			Help:        "Total number of component renders",
			ConstLabels: config.ConstLabels,
		}, []string{"component"}),

		refreshDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "refresh_duration_seconds",
			Help:        "Component render and reconcile duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"component"}),

		refreshErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "refresh_errors_total",
			Help:        "Total number of failed component renders",
			ConstLabels: config.ConstLabels,
		}, []string{"component", "code"}),

		targetOps: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "target_ops_total",
			Help:        "Total number of operations applied to the render target",
			ConstLabels: config.ConstLabels,
		}, []string{"op"}),

		teardowns: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "teardowns_total",
			Help:        "Total number of torn down components",
			ConstLabels: config.ConstLabels,
		}, []string{"component"}),
	}
}

// RefreshStarted times the render of c.
func (m *Metrics) RefreshStarted(c *jst.Component) func(error) {
	name := c.Name()
	start := time.Now()
	return func(err error) {
		m.refreshes.WithLabelValues(name).Inc()
		m.refreshDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
		if err != nil {
			m.refreshErrors.WithLabelValues(name, errorCode(err)).Inc()
		}
	}
}

// Mutated counts one render target operation.
func (m *Metrics) Mutated(op dom.Op) {
	m.targetOps.WithLabelValues(op.String()).Inc()
}

// TornDown counts a torn down component.
func (m *Metrics) TornDown(c *jst.Component) {
	m.teardowns.WithLabelValues(c.Name()).Inc()
}

// errorCode returns the engine error code of err, or "unknown".
func errorCode(err error) string {
	var je *errors.Error
	if stderrors.As(err, &je) && je.Code != "" {
		return je.Code
	}
	return "unknown"
}
