// Package metrics defines and registers all custom Prometheus metrics for
// the consultancy website. It is the single source of truth for metric
// names, labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "website"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts completed user registrations.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of successful user registrations.",
	},
)

// ContactMessagesTotal counts contact-form dispatch outcomes.
// Label:
//   - result: "sent" or "error"
var ContactMessagesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "contact_messages_total",
		Help:      "Total number of contact-form submissions, by dispatch result.",
	},
	[]string{"result"},
)

// ContentMutationsTotal counts admin create/update/delete operations.
// Labels:
//   - entity: "post" or "job"
//   - action: "create", "update", or "delete"
var ContentMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "content_mutations_total",
		Help:      "Total number of post and job mutations, by entity and action.",
	},
	[]string{"entity", "action"},
)

// ExportsTotal counts admin data downloads.
var ExportsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "exports_total",
		Help:      "Total number of full data exports downloaded.",
	},
)
