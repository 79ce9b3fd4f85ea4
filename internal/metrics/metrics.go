package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PredictionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "placement_predictions_total",
			Help: "Total number of predictions served, by outcome label",
		},
		[]string{"label"},
	)

	PredictionScore = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "placement_prediction_score",
			Help:    "Distribution of computed placement scores",
			Buckets: prometheus.LinearBuckets(0, 10, 11),
		},
	)

	ValidationFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "placement_validation_failures_total",
			Help: "Total number of prediction requests rejected by validation",
		},
	)
)
