// Package metrics defines and registers all custom Prometheus metrics for the
// campus dining API. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "dining"

// ── Order metrics ─────────────────────────────────────────────────────────────

// OrdersCreatedTotal counts successfully placed orders.
var OrdersCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_created_total",
		Help:      "Total number of orders placed.",
	},
)

// OrderCreateFailuresTotal counts rejected or failed order submissions.
// Label:
//   - reason: "validation" or "store"
var OrderCreateFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "order_create_failures_total",
		Help:      "Total number of order submissions that were rejected or failed.",
	},
	[]string{"reason"},
)

// OrderStatusUpdatesTotal counts admin status changes.
// Label:
//   - status: the status applied (e.g. "Ready")
var OrderStatusUpdatesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "order_status_updates_total",
		Help:      "Total number of admin order status updates, by new status.",
	},
	[]string{"status"},
)

// ── Menu metrics ──────────────────────────────────────────────────────────────

// MenuMutationsTotal counts admin catalog changes.
// Label:
//   - op: "create", "update", or "delete"
var MenuMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "menu_mutations_total",
		Help:      "Total number of admin menu mutations, by operation.",
	},
	[]string{"op"},
)

// MenuCacheTotal counts menu listing cache decisions.
// Label:
//   - result: "hit" (served from cache) or "miss" (fell through to the store)
var MenuCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "menu_cache_total",
		Help:      "Total number of menu cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)
