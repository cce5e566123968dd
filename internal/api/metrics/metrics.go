// Package metrics defines all custom Prometheus metrics for the career-fair
// API. It is the single source of truth for metric names, labels, and help
// strings; metrics self-register with the default registry via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "careerfair"

// SubmissionsTotal counts resume submissions that were accepted and stored.
// Label:
//   - target: "booth" or "job"
var SubmissionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "resume_submissions_total",
		Help:      "Total number of resumes successfully submitted, by target kind.",
	},
	[]string{"target"},
)

// SubmissionErrorsTotal counts submissions rejected before storage.
// Label:
//   - reason: short failure tag ("missing_file", "file_type", "file_too_large",
//     "invalid_input", "store_failed")
var SubmissionErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "resume_submission_errors_total",
		Help:      "Total number of rejected resume submissions, by reason.",
	},
	[]string{"reason"},
)

// StatusUpdatesTotal counts resume status changes applied by employers.
// Label:
//   - status: the new status ("pending", "accepted", "rejected")
var StatusUpdatesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "resume_status_updates_total",
		Help:      "Total number of resume status updates, by resulting status.",
	},
	[]string{"status"},
)

// RegistrationsTotal counts successful career-fair registrations.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "fair_registrations_total",
		Help:      "Total number of career fair registrations created.",
	},
)

// UploadSizeBytes observes the size of stored resume files.
var UploadSizeBytes = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "resume_upload_size_bytes",
		Help:      "Size distribution of stored resume files.",
		Buckets:   prometheus.ExponentialBuckets(16*1024, 2, 9), // 16 KiB up to 4 MiB
	},
)
