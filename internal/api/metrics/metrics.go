// Package metrics defines and registers all custom Prometheus metrics for the
// records API. It is the single source of truth for metric names, labels, and
// help strings.
//
// Metrics register with the default Prometheus registry at package init; the
// router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "records"

// UsersCreatedTotal counts successfully created user records.
var UsersCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_created_total",
		Help:      "Total number of user records created.",
	},
)

// ItemsCreatedTotal counts successfully created item records.
var ItemsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "items_created_total",
		Help:      "Total number of item records created.",
	},
)

// LoginAttemptsTotal counts token exchanges.
// Label:
//   - result: "success" or "failure"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of token exchange attempts, by result.",
	},
	[]string{"result"},
)

// AuditScheduledTotal counts background audit writes accepted for deferred
// execution.
var AuditScheduledTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_scheduled_total",
		Help:      "Total number of audit writes scheduled by the action endpoint.",
	},
)

// AuditWriteErrorsTotal counts deferred audit writes that failed. Failures
// are logged and dropped, never retried.
var AuditWriteErrorsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_write_errors_total",
		Help:      "Total number of deferred audit writes that failed.",
	},
)
