// Package metrics exposes Prometheus instrumentation for the tracker.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tubestudy_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "route", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tubestudy_api_request_duration_seconds",
			Help:    "API request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// Tracking
	SyncEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tubestudy_sync_events_total",
			Help: "Sync events received from the extension, by outcome",
		},
		[]string{"outcome"}, // "created", "updated", "error"
	)

	StudySecondsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tubestudy_study_seconds_total",
			Help: "Study seconds accumulated across all videos",
		},
	)

	ClampedSyncsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tubestudy_sync_clamped_total",
			Help: "Sync events whose study delta exceeded the per-sync cap",
		},
	)

	DistractionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tubestudy_distractions_total",
			Help: "Sync events classified as distractions, by group",
		},
		[]string{"group"},
	)

	CurrentStreak = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "tubestudy_current_streak_days",
			Help: "Current consecutive study-day streak",
		},
	)
)

// RecordAPIRequest records one served HTTP request.
func RecordAPIRequest(method, route string, status int, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	APIRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordSync records the outcome of a sync event and the study time it added.
func RecordSync(outcome string, studySeconds float64) {
	SyncEventsTotal.WithLabelValues(outcome).Inc()
	if studySeconds > 0 {
		StudySecondsTotal.Add(studySeconds)
	}
}

// RecordDistraction counts a distraction match.
func RecordDistraction(group string) {
	DistractionsTotal.WithLabelValues(group).Inc()
}
