// Package metrics defines the business counters of the notes app. HTTP
// request metrics come from the echoprometheus middleware; these count
// what the handlers decide.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "mynotes"

// AuthAttemptsTotal counts register and login attempts.
// Labels:
//   - action: "register" or "login"
//   - result: "success", "duplicate_email", "invalid_credentials", "invalid_form" or "error"
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of register and login attempts, by outcome.",
	},
	[]string{"action", "result"},
)

// EntryOperationsTotal counts entry writes.
// Labels:
//   - operation: "create", "edit" or "delete"
//   - result: "success", "title_conflict", "forbidden", "not_found", "invalid" or "error"
var EntryOperationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "entry_operations_total",
		Help:      "Total number of entry create, edit and delete operations, by outcome.",
	},
	[]string{"operation", "result"},
)

// ExportsTotal counts CSV downloads.
var ExportsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "exports_total",
		Help:      "Total number of CSV exports served.",
	},
)
