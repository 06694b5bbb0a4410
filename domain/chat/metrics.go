package chat

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeOK            = "ok"
	outcomeNotConfigured = "not_configured"
	outcomeInvalid       = "invalid"
	outcomeError         = "error"
)

var (
	repliesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "synctech",
		Subsystem: "chat",
		Name:      "replies_total",
		Help:      "Chat relay requests by language and outcome.",
	}, []string{"lang", "outcome"})

	providerSeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "synctech",
		Subsystem: "chat",
		Name:      "provider_duration_seconds",
		Help:      "Duration of the downstream generation call.",
		Buckets:   []float64{0.25, 0.5, 1, 2, 4, 8, 16, 32, 64},
	}, []string{"outcome"})
)
