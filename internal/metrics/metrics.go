package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SubmissionsReceived = promauto.NewCounter(prometheus.CounterOpts{
		Name: "carmarket_submissions_received_total",
		Help: "Submissions accepted through intake.",
	})

	SubmissionsApproved = promauto.NewCounter(prometheus.CounterOpts{
		Name: "carmarket_submissions_approved_total",
		Help: "Submissions published to the channel and deleted.",
	})

	SubmissionsRejected = promauto.NewCounter(prometheus.CounterOpts{
		Name: "carmarket_submissions_rejected_total",
		Help: "Submissions rejected and deleted.",
	})

	PublishFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "carmarket_publish_failures_total",
		Help: "Channel publish attempts that failed; the row is kept for retry.",
	})

	PhotoFetches = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "carmarket_photo_fetches_total",
		Help: "Photo proxy fetches by outcome.",
	}, []string{"outcome"})
)
