// Package metrics exposes Prometheus collectors for the portfolio service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Metrics holds every collector the service updates.
type Metrics struct {
	Registry *prometheus.Registry

	HTTPRequests    *prometheus.CounterVec
	HTTPLatency     *prometheus.HistogramVec
	Searches        prometheus.Counter
	SearchResults   prometheus.Histogram
	ChatQuestions   *prometheus.CounterVec
	ContactOutcomes *prometheus.CounterVec
	DraftsGenerated *prometheus.CounterVec
}

// New registers collectors on a private registry so tests can build as
// many instances as they like.
func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),

		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "portfolio_http_requests_total",
			Help: "Total HTTP requests by route and status code",
		}, []string{"route", "status"}),

		HTTPLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "portfolio_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 2, 5},
		}, []string{"route"}),

		Searches: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "portfolio_project_searches_total",
			Help: "Total project finder queries",
		}),

		SearchResults: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "portfolio_project_search_results",
			Help:    "Number of projects returned per search",
			Buckets: []float64{0, 1, 2, 5, 10, 25, 50},
		}),

		ChatQuestions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "portfolio_chat_questions_total",
			Help: "Chat questions by matched intent",
		}, []string{"intent"}),

		ContactOutcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "portfolio_contact_submissions_total",
			Help: "Contact submissions by outcome (sent, invalid, failed, limited)",
		}, []string{"outcome"}),

		DraftsGenerated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "portfolio_drafts_generated_total",
			Help: "Message drafts generated by intent",
		}, []string{"intent"}),
	}

	m.Registry.MustRegister(
		collectors.NewGoCollector(),
		m.HTTPRequests,
		m.HTTPLatency,
		m.Searches,
		m.SearchResults,
		m.ChatQuestions,
		m.ContactOutcomes,
		m.DraftsGenerated,
	)
	return m
}

// RegisterGauge exposes a value computed on scrape, such as live chat
// sessions.
func (m *Metrics) RegisterGauge(name, help string, fn func() float64) {
	m.Registry.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: name,
		Help: help,
	}, fn))
}
