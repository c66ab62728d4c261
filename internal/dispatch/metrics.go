package dispatch

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	sendTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hmnotify_send_total",
		Help: "Delivery outcomes by channel and status.",
	}, []string{"channel", "status"})

	sendAttempts = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "hmnotify_send_attempts",
		Help:    "Delivery attempts used per destination.",
		Buckets: prometheus.LinearBuckets(1, 1, 10),
	}, []string{"channel"})

	sendDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "hmnotify_send_duration_seconds",
		Help:    "Wall time spent delivering to one destination, retries included.",
		Buckets: prometheus.DefBuckets,
	}, []string{"channel"})
)
