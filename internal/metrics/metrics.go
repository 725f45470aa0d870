package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ClaimsExtracted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "claimradar_claims_extracted_total",
			Help: "Total number of claims extracted from analyzed text",
		},
	)

	ProviderRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "claimradar_provider_requests_total",
			Help: "Total number of fact check provider calls",
		},
		[]string{"provider", "outcome"},
	)

	ProviderDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "claimradar_provider_duration_seconds",
			Help:    "Fact check provider call duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"provider"},
	)

	VerificationCache = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "claimradar_verification_cache_total",
			Help: "Fact check cache lookups by result",
		},
		[]string{"result"},
	)

	ClaimsTracked = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "claimradar_claims_tracked_total",
			Help: "Total number of claims folded into geo analytics",
		},
		[]string{"country", "risk_level"},
	)

	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "claimradar_http_requests_total",
			Help: "Total number of HTTP API requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "claimradar_http_request_duration_seconds",
			Help:    "HTTP API request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
)
