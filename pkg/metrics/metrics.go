// Package metrics exports per-pipe flow counters to prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Flows holds the flow metrics. A nil *Flows is valid and records nothing.
type Flows struct {
	MessagesIn        *prometheus.CounterVec
	MessagesOut       *prometheus.CounterVec
	TransformFailures *prometheus.CounterVec
	SinkFailures      *prometheus.CounterVec
	ActiveFlows       *prometheus.GaugeVec
	Subscriptions     prometheus.Counter
}

// New registers the flow metrics on reg under namespace.
func New(reg prometheus.Registerer, namespace string) *Flows {
	factory := promauto.With(reg)

	return &Flows{
		MessagesIn: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "flow_messages_in_total",
				Help:      "Messages received from pipe sources",
			},
			[]string{"pipe"},
		),
		MessagesOut: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "flow_messages_out_total",
				Help:      "Sink results delivered by flows",
			},
			[]string{"pipe"},
		),
		TransformFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "flow_transform_failures_total",
				Help:      "Flows terminated by a transformer failure",
			},
			[]string{"pipe"},
		),
		SinkFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "flow_sink_failures_total",
				Help:      "Sink failures contained by flows",
			},
			[]string{"pipe"},
		),
		ActiveFlows: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "flows_active",
				Help:      "Flows currently consuming their source",
			},
			[]string{"pipe"},
		),
		Subscriptions: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "subscriptions_total",
				Help:      "Transformers registered",
			},
		),
	}
}

func (f *Flows) MessageIn(pipe string) {
	if f != nil {
		f.MessagesIn.WithLabelValues(pipe).Inc()
	}
}

func (f *Flows) MessageOut(pipe string) {
	if f != nil {
		f.MessagesOut.WithLabelValues(pipe).Inc()
	}
}

func (f *Flows) TransformFailed(pipe string) {
	if f != nil {
		f.TransformFailures.WithLabelValues(pipe).Inc()
	}
}

func (f *Flows) SinkFailed(pipe string) {
	if f != nil {
		f.SinkFailures.WithLabelValues(pipe).Inc()
	}
}

func (f *Flows) FlowStarted(pipe string) {
	if f != nil {
		f.ActiveFlows.WithLabelValues(pipe).Inc()
	}
}

func (f *Flows) FlowStopped(pipe string) {
	if f != nil {
		f.ActiveFlows.WithLabelValues(pipe).Dec()
	}
}

func (f *Flows) Subscribed() {
	if f != nil {
		f.Subscriptions.Inc()
	}
}
