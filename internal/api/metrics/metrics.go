// Package metrics defines and registers all custom Prometheus metrics for the
// portfolio API. It is the single source of truth for metric names, labels,
// and help strings. Metrics register with the default registry at import time
// via promauto; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "portfolio"

// ── Account metrics ───────────────────────────────────────────────────────────

// UsersRegisteredTotal counts successful registrations.
// Label:
//   - role: "artist" or "client"
var UsersRegisteredTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of accounts registered, by role.",
	},
	[]string{"role"},
)

// ── Catalog metrics ───────────────────────────────────────────────────────────

// ArtworksCreatedTotal counts published artworks.
// Label:
//   - category: the artwork's category name
var ArtworksCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "artworks_created_total",
		Help:      "Total number of artworks published, by category.",
	},
	[]string{"category"},
)

// ── Enquiry metrics ───────────────────────────────────────────────────────────

// EnquiriesCreatedTotal counts accepted enquiry submissions.
var EnquiriesCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "enquiries_created_total",
		Help:      "Total number of enquiries submitted.",
	},
)

// EnquiryTransitionsTotal counts enquiry status transitions, including the
// automatic pending→read transition on first read.
// Label:
//   - status: the status the enquiry moved to
var EnquiryTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "enquiry_transitions_total",
		Help:      "Total number of enquiry status transitions, by target status.",
	},
	[]string{"status"},
)

// ── Media metrics ─────────────────────────────────────────────────────────────

// MediaUploadsTotal counts successfully stored uploads.
// Label:
//   - kind: "profile" or "artwork"
var MediaUploadsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "media_uploads_total",
		Help:      "Total number of image uploads stored, by kind.",
	},
	[]string{"kind"},
)

// MediaUploadErrorsTotal counts rejected or failed uploads.
// Label:
//   - reason: "unsupported_type", "too_large", "decode_failed", "store_failed"
var MediaUploadErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "media_upload_errors_total",
		Help:      "Total number of image uploads rejected or failed, by reason.",
	},
	[]string{"reason"},
)

// MediaProcessingDuration measures decode-and-resize time for one upload.
// Label:
//   - kind: "profile" or "artwork"
var MediaProcessingDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "media_processing_duration_seconds",
		Help:      "Duration of image decoding and variant generation.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"kind"},
)
