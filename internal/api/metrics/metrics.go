// Package metrics defines and registers the portal's custom Prometheus
// metrics. Request-level metrics come from the echoprometheus middleware.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "nyayasetu"

// ── Session metrics ───────────────────────────────────────────────────────────

// LoginsTotal counts completed logins.
// Label:
//   - role: citizen, lawyer or admin
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of successful logins, by role.",
	},
	[]string{"role"},
)

// RegistrationsTotal counts accepted registrations.
// Label:
//   - role: citizen or lawyer
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accepted registrations, by role.",
	},
	[]string{"role"},
)

var LogoutsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logouts_total",
		Help:      "Total number of logouts.",
	},
)

// SessionRestoresTotal counts startup restores.
// Label:
//   - result: "authenticated", "anonymous" or "error"
var SessionRestoresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_restores_total",
		Help:      "Total number of session restores, by result.",
	},
	[]string{"result"},
)

// SubmissionsRejectedTotal counts login/register calls refused while another
// submission was outstanding.
var SubmissionsRejectedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "submissions_rejected_total",
		Help:      "Total number of submissions refused because one was already in flight.",
	},
)

// ── Application metrics ───────────────────────────────────────────────────────

// ApplicationsReviewedTotal counts review decisions.
// Label:
//   - decision: "approved" or "rejected"
var ApplicationsReviewedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "applications_reviewed_total",
		Help:      "Total number of lawyer application reviews, by decision.",
	},
	[]string{"decision"},
)

// ── View metrics ──────────────────────────────────────────────────────────────

// ViewsComposedTotal counts composed screens.
// Label:
//   - screen: the screen id returned by the view composer
var ViewsComposedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "views_composed_total",
		Help:      "Total number of composed views, by screen.",
	},
	[]string{"screen"},
)
