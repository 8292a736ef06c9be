// Package metrics exports the activity of an observe.System to Prometheus.
package metrics

import (
	"errors"
	"fmt"
	"io"

	"github.com/delaneyj/deptrack/observe"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
)

type Config struct {
	// Namespace is the metrics namespace (default: "deptrack").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// Registry receives the collectors. Default: a fresh registry, so several
	// systems in one process do not collide.
	Registry *prometheus.Registry
}

type Option func(*Config)

func WithNamespace(namespace string) Option {
	return func(c *Config) {
		c.Namespace = namespace
	}
}

func WithSubsystem(subsystem string) Option {
	return func(c *Config) {
		c.Subsystem = subsystem
	}
}

func WithRegistry(registry *prometheus.Registry) Option {
	return func(c *Config) {
		c.Registry = registry
	}
}

// Collector implements observe.Hooks with Prometheus counters. Pass it to
// observe.WithHooks.
type Collector struct {
	registry *prometheus.Registry

	dependencies  prometheus.Counter
	notifications *prometheus.CounterVec
	subscribers   prometheus.Histogram
	callbacks     prometheus.Counter
	failures      *prometheus.CounterVec
}

var _ observe.Hooks = (*Collector)(nil)

func NewCollector(opts ...Option) *Collector {
	cfg := Config{Namespace: "deptrack"}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Registry == nil {
		cfg.Registry = prometheus.NewRegistry()
	}

	factory := promauto.With(cfg.Registry)
	return &Collector{
		registry: cfg.Registry,
		dependencies: factory.NewCounter(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Subsystem: cfg.Subsystem,
			Name:      "dependencies_total",
			Help:      "Watcher subscriptions recorded during dependency collection.",
		}),
		notifications: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Subsystem: cfg.Subsystem,
			Name:      "notifications_total",
			Help:      "Notification passes started, by property key.",
		}, []string{"key"}),
		subscribers: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: cfg.Namespace,
			Subsystem: cfg.Subsystem,
			Name:      "notify_subscribers",
			Help:      "Subscribers updated per notification pass.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
		}),
		callbacks: factory.NewCounter(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Subsystem: cfg.Subsystem,
			Name:      "callbacks_total",
			Help:      "Watcher callbacks invoked after a value changed.",
		}),
		failures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Subsystem: cfg.Subsystem,
			Name:      "failures_total",
			Help:      "Failures isolated during notification passes, by kind.",
		}, []string{"kind"}),
	}
}

func (c *Collector) Tracked(*observe.Dep, *observe.Watcher) {
	c.dependencies.Inc()
}

func (c *Collector) Notified(dep *observe.Dep, subscribers int) {
	c.notifications.WithLabelValues(dep.Key()).Inc()
	c.subscribers.Observe(float64(subscribers))
}

func (c *Collector) Fired(*observe.Watcher) {
	c.callbacks.Inc()
}

func (c *Collector) Failed(_ *observe.Watcher, err error) {
	c.failures.WithLabelValues(failureKind(err)).Inc()
}

func failureKind(err error) string {
	var pathErr *observe.PathError
	var cbErr *observe.CallbackError
	switch {
	case errors.As(err, &cbErr):
		return "callback"
	case errors.As(err, &pathErr):
		return "path"
	default:
		return "other"
	}
}

func (c *Collector) Gatherer() prometheus.Gatherer {
	return c.registry
}

// WriteText writes every gathered family in the Prometheus text format.
func (c *Collector) WriteText(w io.Writer) error {
	families, err := c.registry.Gather()
	if err != nil {
		return fmt.Errorf("gathering metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("writing %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
