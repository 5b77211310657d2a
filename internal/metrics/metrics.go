package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// AnalysesTotal counts completed analyses by endpoint and verdict band.
	AnalysesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ecoscore_analyses_total",
		Help: "Completed analyses by endpoint and verdict.",
	}, []string{"endpoint", "summary"})

	// SignalsApplied counts score signals that fired.
	SignalsApplied = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ecoscore_signals_applied_total",
		Help: "Score bonus signals that were active during analysis.",
	}, []string{"signal"})

	// ExternalClientErrors counts failures talking to external services.
	ExternalClientErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ecoscore_external_client_errors_total",
		Help: "Errors from external classifier/search clients.",
	}, []string{"client"})

	// RequestDuration observes HTTP request latency.
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "ecoscore_http_request_duration_seconds",
		Help:    "HTTP request latency by route and status.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
)
