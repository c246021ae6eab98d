// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	DraftsSaved = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "portal_drafts_saved_total",
			Help: "Total number of drafts written to storage",
		},
	)

	DraftOperationsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portal_draft_operations_failed_total",
			Help: "Total number of failed draft store operations",
		},
		[]string{"operation", "error_code"},
	)

	DraftSaveDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "portal_draft_save_duration_seconds",
			Help:    "Duration of draft saves in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	FormTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portal_form_transitions_total",
			Help: "Form step transitions by direction and outcome",
		},
		[]string{"direction", "outcome"},
	)

	ApplicationsSubmitted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "portal_applications_submitted_total",
			Help: "Total number of submitted applications",
		},
	)

	SearchQueries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portal_search_queries_total",
			Help: "Search queries by result type filter",
		},
		[]string{"type"},
	)

	ChatMessages = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portal_chat_messages_total",
			Help: "Chat messages by responder rule",
		},
		[]string{"rule"},
	)

	VideoNotesChanged = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portal_video_notes_changed_total",
			Help: "Video note mutations by operation",
		},
		[]string{"operation"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "portal_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method", "status"},
	)

	HTTPRequestsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "portal_http_requests_active",
			Help: "Number of in-flight HTTP requests",
		},
	)
)
