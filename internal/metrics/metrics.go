package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Message outcomes
const (
	OutcomeScanned    = "scanned"
	OutcomeSkippedBot = "skipped_bot"
)

// Metrics holds the link-guard collectors on a private registry
type Metrics struct {
	registry *prometheus.Registry

	Messages       *prometheus.CounterVec
	Links          prometheus.Counter
	Warnings       *prometheus.CounterVec
	NotifyFailures prometheus.Counter
	StoreFailures  prometheus.Counter
}

// New creates and registers all collectors on a fresh registry
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		Messages: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "linkguard_messages_total",
				Help: "Messages received, by outcome",
			},
			[]string{"outcome"},
		),
		Links: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "linkguard_links_total",
			Help: "Links discovered in scanned messages",
		}),
		// Label cardinality is bounded by the watchlist size
		Warnings: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "linkguard_warnings_total",
				Help: "Lookalike links detected, by impersonated domain",
			},
			[]string{"lookalike"},
		),
		NotifyFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "linkguard_notify_failures_total",
			Help: "Warnings that could not be delivered to the channel",
		}),
		StoreFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "linkguard_store_failures_total",
			Help: "Warnings that could not be recorded",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.Messages,
		m.Links,
		m.Warnings,
		m.NotifyFailures,
		m.StoreFailures,
	)

	return m
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry exposes the underlying registry, mainly for tests
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
