package bitrix

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

//nolint:gochecknoglobals
var (
	callsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dealdesk",
		Subsystem: "bitrix",
		Name:      "calls_total",
		Help:      "Outbound Bitrix24 webhook calls.",
	}, []string{"method", "outcome"})

	callDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "dealdesk",
		Subsystem: "bitrix",
		Name:      "call_duration_seconds",
		Help:      "Outbound Bitrix24 webhook call duration.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method"})
)

func observeCall(method string, elapsed time.Duration, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}

	callsTotal.WithLabelValues(method, outcome).Inc()
	callDuration.WithLabelValues(method).Observe(elapsed.Seconds())
}
