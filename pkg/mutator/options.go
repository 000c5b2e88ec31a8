package mutator

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ib-77/mutator/pkg/logging"
	"github.com/ib-77/mutator/pkg/metrics"
)

type options struct {
	logger   logging.Logger
	metrics  *metrics.Flows
	registry prometheus.Registerer
}

// Option configures a Mutator at construction.
type Option func(*options)

// WithLogger reports through l instead of a logger built from the
// configuration. The configured level still applies.
func WithLogger(l logging.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithMetrics records flow metrics on m.
func WithMetrics(m *metrics.Flows) Option {
	return func(o *options) {
		o.metrics = m
	}
}

// WithMetricsRegistry registers flow metrics on reg, named after the
// configured metrics namespace.
func WithMetricsRegistry(reg prometheus.Registerer) Option {
	return func(o *options) {
		o.registry = reg
	}
}
