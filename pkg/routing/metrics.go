package routing

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsConfig configures the registry's Prometheus metrics.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "vango").
	Namespace string

	// Subsystem is the metrics subsystem (default: "routing").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the registry's Prometheus metrics.
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

// WithRegisterer sets the Prometheus registry.
func WithRegisterer(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "vango",
		Subsystem: "routing",
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Resolution sources, used as the "source" label.
const (
	sourceRegistry = "registry"
	sourceType     = "type"
	sourceNone     = "none"
)

// Metrics holds the Prometheus metrics of a Registry.
//
// Metrics collected (with the default namespace and subsystem):
//   - vango_routing_registrations_total: routes registered, by kind (factory, type)
//   - vango_routing_invalid_registrations_total: registrations rejected by validation
//   - vango_routing_resolutions_total: GetOrCreateContent calls, by source (registry, type, none)
//   - vango_routing_resolution_errors_total: factories that returned an error
//   - vango_routing_generated_routes_total: default routes synthesized by GetRoute
//   - vango_routing_routes: routes currently registered
//
// A nil *Metrics records nothing.
type Metrics struct {
	registrations        *prometheus.CounterVec
	invalidRegistrations prometheus.Counter
	resolutions          *prometheus.CounterVec
	resolutionErrors     prometheus.Counter
	generatedRoutes      prometheus.Counter
	routes               prometheus.Gauge
}

// NewMetrics creates and registers the registry metrics. Registering twice
// with the same Prometheus registry panics, as with promauto.
func NewMetrics(opts ...MetricsOption) *Metrics {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}

	factory := promauto.With(config.Registry)

	return &Metrics{
		registrations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "registrations_total",
			Help:        "Total number of routes registered",
			ConstLabels: config.ConstLabels,
		}, []string{"kind"}),

		invalidRegistrations: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "invalid_registrations_total",
			Help:        "Total number of route registrations rejected by validation",
			ConstLabels: config.ConstLabels,
		}),

		resolutions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "resolutions_total",
			Help:        "Total number of route resolutions by source",
			ConstLabels: config.ConstLabels,
		}, []string{"source"}),

		resolutionErrors: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "resolution_errors_total",
			Help:        "Total number of route factories that returned an error",
			ConstLabels: config.ConstLabels,
		}),

		generatedRoutes: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "generated_routes_total",
			Help:        "Total number of default routes generated for elements",
			ConstLabels: config.ConstLabels,
		}),

		routes: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "routes",
			Help:        "Number of routes currently registered",
			ConstLabels: config.ConstLabels,
		}),
	}
}

func (m *Metrics) recordRegistration(kind string, total int) {
	if m == nil {
		return
	}
	m.registrations.WithLabelValues(kind).Inc()
	m.routes.Set(float64(total))
}

func (m *Metrics) recordInvalid() {
	if m == nil {
		return
	}
	m.invalidRegistrations.Inc()
}

func (m *Metrics) recordResolution(source string) {
	if m == nil {
		return
	}
	m.resolutions.WithLabelValues(source).Inc()
}

func (m *Metrics) recordResolutionError() {
	if m == nil {
		return
	}
	m.resolutionErrors.Inc()
}

func (m *Metrics) recordGenerated() {
	if m == nil {
		return
	}
	m.generatedRoutes.Inc()
}

func (m *Metrics) setRoutes(total int) {
	if m == nil {
		return
	}
	m.routes.Set(float64(total))
}
