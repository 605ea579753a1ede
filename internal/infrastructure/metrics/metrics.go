package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// LikesToggled counts toggle outcomes by post type and direction.
	LikesToggled = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "likes_toggled_total",
		Help: "Number of like toggles, labeled by post type and action (like/unlike).",
	}, []string{"post_type", "action"})

	// NotificationFailures counts like notifications that could not be
	// recorded. These never fail the toggle itself.
	NotificationFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "like_notifications_failed_total",
		Help: "Number of like notification dispatches that failed.",
	})

	// HTTPRequestDuration observes handler latency per route and status.
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
)
