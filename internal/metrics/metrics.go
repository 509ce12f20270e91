package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// TicketsSubmitted counts tickets accepted by the helpdesk, by form kind.
	TicketsSubmitted = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "product_page",
		Name:      "tickets_submitted_total",
		Help:      "Tickets successfully handed to the helpdesk, labeled by form kind",
	}, []string{"kind"})

	// SubmissionFailures counts helpdesk transport failures, by form kind.
	SubmissionFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "product_page",
		Name:      "submission_failures_total",
		Help:      "Ticket submissions rejected by the helpdesk transport, labeled by form kind",
	}, []string{"kind"})

	// FormRejections counts submissions bounced by validation, by form kind.
	FormRejections = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "product_page",
		Name:      "form_rejections_total",
		Help:      "Submissions rejected by form validation, labeled by form kind",
	}, []string{"kind"})
)
