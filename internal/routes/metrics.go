package routes

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	deriveDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "restaurant_insights",
		Name:      "derive_duration_seconds",
		Help:      "Time taken to compute the dashboard views for one request.",
		Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
	})

	emptySelections = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "restaurant_insights",
		Name:      "empty_selections_total",
		Help:      "Requests whose city filter matched no restaurants.",
	})
)
