// Package metrics exposes Prometheus instrumentation for the recommendation pipeline
// and its catalog lookups.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for RecommendationsTotal.
const (
	OutcomeOK    = "ok"
	OutcomeEmpty = "empty"
	OutcomeError = "error"
)

var (
	RecommendationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "item_recommendation_duration_seconds",
			Help:    "Duration of item recommendation requests in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"outcome"},
	)

	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "item_recommendations_total",
			Help: "Total number of item recommendation requests by outcome",
		},
		[]string{"outcome"},
	)

	CandidateItems = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "item_recommendation_candidates",
			Help:    "Number of items surviving the candidate filter per request",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 200},
		},
	)

	ScalingTypesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "champion_scaling_types_total",
			Help: "Active champion classifications seen in recommendation requests",
		},
		[]string{"scaling_type"},
	)

	CatalogQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_query_duration_seconds",
			Help:    "Duration of catalog lookups in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	CatalogQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_query_errors_total",
			Help: "Total number of failed catalog lookups",
		},
		[]string{"operation"},
	)
)

// RecordRecommendation records one finished pipeline run. candidates is ignored on error.
func RecordRecommendation(outcome string, duration time.Duration, candidates int, scalingType string) {
	RecommendationDuration.WithLabelValues(outcome).Observe(duration.Seconds())
	RecommendationsTotal.WithLabelValues(outcome).Inc()
	if outcome == OutcomeError {
		return
	}
	CandidateItems.Observe(float64(candidates))
	ScalingTypesTotal.WithLabelValues(scalingType).Inc()
}

// RecordCatalogQuery records a catalog lookup and counts it as failed when err is set.
func RecordCatalogQuery(operation string, duration time.Duration, err error) {
	CatalogQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
	if err != nil {
		CatalogQueryErrors.WithLabelValues(operation).Inc()
	}
}
