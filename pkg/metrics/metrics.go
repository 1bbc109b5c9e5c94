package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// FAQQueries counts resolved questions by question language and outcome.
	FAQQueries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "omx_faq_queries_total",
			Help: "Total number of FAQ questions resolved",
		},
		[]string{"language", "outcome"},
	)

	// FAQMatchScore observes the best similarity score of each question.
	FAQMatchScore = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "omx_faq_match_score",
			Help:    "Best catalog similarity score per question",
			Buckets: []float64{0, 0.2, 0.4, 0.5, 0.6, 0.8, 1},
		},
	)

	// CatalogEntries reports the size of the active catalog.
	CatalogEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "omx_faq_catalog_entries",
			Help: "Number of entries in the active FAQ catalog",
		},
	)

	// CatalogReloads counts catalog reload attempts by result.
	CatalogReloads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "omx_faq_catalog_reloads_total",
			Help: "Total number of catalog reload attempts",
		},
		[]string{"result"},
	)

	// ConversationQuestions counts session questions by outcome.
	ConversationQuestions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "omx_conversation_questions_total",
			Help: "Total number of questions submitted to sessions",
		},
		[]string{"outcome"},
	)

	// HTTPRequestDuration tracks request latency per route.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "omx_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
)

// WebsocketClients reports live session listeners.
var WebsocketClients = promauto.NewGauge(
	prometheus.GaugeOpts{
		Name: "omx_ws_clients",
		Help: "Number of connected websocket session listeners",
	},
)

var (
	// RateLimited counts requests rejected by the per-IP limiter.
	RateLimited = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "omx_http_rate_limited_total",
			Help: "Requests rejected by the rate limiter.",
		},
		[]string{"route"},
	)
	// HTTPRetries counts replayed attempts of retryable requests.
	HTTPRetries = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "omx_http_retries_total",
			Help: "Request attempts replayed after a 5xx response.",
		},
	)
)
