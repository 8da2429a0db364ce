// Package metrics exposes the hub's counters to Prometheus.
package metrics

import (
	"net/http"

	"nearby/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

const namespace = "nearby"

// Prometheus implements service.HubMetrics on a private registry.
type Prometheus struct {
	registry *prometheus.Registry

	connections       *prometheus.GaugeVec
	connectionsTotal  *prometheus.CounterVec
	eventsReceived    *prometheus.CounterVec
	eventsDropped     *prometheus.CounterVec
	proximitySent     *prometheus.CounterVec
	acknowledgements  prometheus.Counter
	presencePublished *prometheus.CounterVec
}

var _ service.HubMetrics = (*Prometheus)(nil)

// NewPrometheus registers the hub collectors plus the Go and process collectors.
func NewPrometheus() *Prometheus {
	registry := prometheus.NewRegistry()
	p := &Prometheus{
		registry: registry,
		connections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "connections",
			Help:      "Currently open WebSocket connections by role.",
		}, []string{"role"}),
		connectionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "connections_total",
			Help:      "WebSocket connections accepted by role.",
		}, []string{"role"}),
		eventsReceived: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_received_total",
			Help:      "Inbound client events by name.",
		}, []string{"event"}),
		eventsDropped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_dropped_total",
			Help:      "Events dropped by the hub by reason.",
		}, []string{"reason"}),
		proximitySent: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "proximity_events_sent_total",
			Help:      "Proximity events delivered to consumers by type.",
		}, []string{"event"}),
		acknowledgements: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "acknowledgements_total",
			Help:      "Notification acknowledgements received.",
		}),
		presencePublished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "presence_published_total",
			Help:      "Presence events handed to the publisher by kind and result.",
		}, []string{"kind", "result"}),
	}

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		p.connections,
		p.connectionsTotal,
		p.eventsReceived,
		p.eventsDropped,
		p.proximitySent,
		p.acknowledgements,
		p.presencePublished,
	)

	return p
}

func (p *Prometheus) ConnectionOpened(role string) {
	p.connections.WithLabelValues(role).Inc()
	p.connectionsTotal.WithLabelValues(role).Inc()
}

func (p *Prometheus) ConnectionClosed(role string) {
	p.connections.WithLabelValues(role).Dec()
}

func (p *Prometheus) EventReceived(event string) {
	p.eventsReceived.WithLabelValues(event).Inc()
}

func (p *Prometheus) EventDropped(reason string) {
	p.eventsDropped.WithLabelValues(reason).Inc()
}

func (p *Prometheus) ProximitySent(event string) {
	p.proximitySent.WithLabelValues(event).Inc()
}

func (p *Prometheus) AcknowledgementReceived() {
	p.acknowledgements.Inc()
}

func (p *Prometheus) PresencePublished(kind string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	p.presencePublished.WithLabelValues(kind, result).Inc()
}

// Handler serves the registry in the text exposition format.
func (p *Prometheus) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{Registry: p.registry})
}

// Module provides the metrics FX module
var Module = fx.Options(
	fx.Provide(
		NewPrometheus,
		func(p *Prometheus) service.HubMetrics { return p },
	),
)
