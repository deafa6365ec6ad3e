// Package metrics defines the custom Prometheus metrics of the people and
// catalog API. It is the single source of truth for metric names, labels and
// help strings. Metrics register with the default registry on import.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "catalog"

// Outcome label values.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
	OutcomeInvalid = "invalid"
)

// ── Mutation metrics ──────────────────────────────────────────────────────────

// MutationsTotal counts write operations.
// Labels:
//   - operation: e.g. "registerCustomer", "editItem"
//   - outcome: "success", "failure" or "invalid"
var MutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "mutations_total",
		Help:      "Total number of write operations, by operation and outcome.",
	},
	[]string{"operation", "outcome"},
)

// ValidationFailuresTotal counts rejected fields.
// Label:
//   - field: logical field name that failed its type rule
var ValidationFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "validation_failures_total",
		Help:      "Total number of fields rejected by validation.",
	},
	[]string{"field"},
)

// RegistrationsTotal counts people registered.
// Label:
//   - role: "customer" or "employee"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of people registered, by role.",
	},
	[]string{"role"},
)

// ── Read metrics ──────────────────────────────────────────────────────────────

// QueryDuration measures list reads end to end.
// Label:
//   - entity: "people", "customers", "employees", "items" or "categories"
var QueryDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "query_duration_seconds",
		Help:      "Duration of list reads.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"entity"},
)

// CacheLookupsTotal counts query cache lookups.
// Label:
//   - result: "hit", "miss" or "error"
var CacheLookupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cache_lookups_total",
		Help:      "Total number of query cache lookups, by result.",
	},
	[]string{"result"},
)

// ── Audit metrics ─────────────────────────────────────────────────────────────

// AuditEventsTotal counts mutation events handled by the audit dispatcher.
// Label:
//   - result: "stored", "failed" or "dropped"
var AuditEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_events_total",
		Help:      "Total number of audit events, by result.",
	},
	[]string{"result"},
)

// AuditQueueDepth tracks the events waiting in each dispatcher worker channel.
// Label:
//   - worker_id: numeric worker index
var AuditQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "audit_queue_depth",
		Help:      "Current number of audit events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
