// Package metrics defines and registers all custom Prometheus metrics for
// the blog platform. It is the single source of truth for metric names,
// labels, and help strings. Metrics self-register with the default registry
// via promauto at package load.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "blog"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// SignupsTotal counts account creations.
// Label:
//   - result: "ok", "duplicate", or "error"
var SignupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of signup attempts, by result.",
	},
	[]string{"result"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "ok", "not_found", "bad_password", or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// PasswordResetsTotal counts both halves of the reset flow.
// Labels:
//   - stage:  "requested" or "completed"
//   - result: "ok", "not_found", "invalid", "expired", "redeemed", or "error"
var PasswordResetsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "password_resets_total",
		Help:      "Total number of password reset operations, by stage and result.",
	},
	[]string{"stage", "result"},
)

// TokenVerificationsTotal counts token checks at the request gate and the
// reset flow.
// Labels:
//   - purpose: "access" or "reset"
//   - result:  "ok", "invalid", or "expired"
var TokenVerificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_verifications_total",
		Help:      "Total number of token verifications, by purpose and result.",
	},
	[]string{"purpose", "result"},
)

// ── Post metrics ──────────────────────────────────────────────────────────────

// PostMutationsTotal counts successful post mutations.
// Label:
//   - action: "created", "updated", "deleted", "liked", or "commented"
var PostMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "post_mutations_total",
		Help:      "Total number of successful post mutations, by action.",
	},
	[]string{"action"},
)

// ── Activity pipeline metrics ─────────────────────────────────────────────────

// ActivityProcessedTotal counts activity events persisted by the workers.
// Label:
//   - kind: the activity kind (e.g. "liked")
var ActivityProcessedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "activity_processed_total",
		Help:      "Total number of activity events successfully persisted.",
	},
	[]string{"kind"},
)

// ActivityErrorsTotal counts activity events that failed processing.
var ActivityErrorsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "activity_errors_total",
		Help:      "Total number of activity events that failed processing.",
	},
)

// ActivityQueueDepth tracks events waiting in each dispatcher worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var ActivityQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "activity_queue_depth",
		Help:      "Current number of activity events pending in each worker channel.",
	},
	[]string{"worker_id"},
)
