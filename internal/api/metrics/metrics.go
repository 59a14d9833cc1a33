// Package metrics defines and registers all custom Prometheus metrics for the
// storefront console. It is the single source of truth for metric names,
// labels, and help strings.
//
// All metrics self-register with the default Prometheus registry via promauto
// at package init; the /metrics endpoint exposes them through echoprometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "storefront"

// ── Order metrics ─────────────────────────────────────────────────────────────

// OrdersPlacedTotal counts checkouts the backend accepted.
// Label:
//   - payment_method: the method sent with the order (e.g. "CREDIT_CARD")
var OrdersPlacedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_placed_total",
		Help:      "Total number of orders accepted by the backend, by payment method.",
	},
	[]string{"payment_method"},
)

// OrdersFailedTotal counts checkouts that did not go through.
// Label:
//   - reason: "backend_unavailable" or "rejected"
var OrdersFailedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_failed_total",
		Help:      "Total number of checkout attempts that failed, by reason.",
	},
	[]string{"reason"},
)

// ── Backend client metrics ────────────────────────────────────────────────────

// BackendRequestsTotal counts calls to the commerce backend.
// Labels:
//   - operation: logical call name (e.g. "list_products", "place_order")
//   - status: HTTP status code, or "network_error" when no answer arrived
var BackendRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "backend_requests_total",
		Help:      "Total number of requests sent to the commerce backend.",
	},
	[]string{"operation", "status"},
)

// BackendRequestDuration measures round-trip time per backend call.
// Label:
//   - operation: logical call name
var BackendRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "backend_request_duration_seconds",
		Help:      "Duration of requests to the commerce backend.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
	[]string{"operation"},
)

// ── Activity metrics ──────────────────────────────────────────────────────────

// ActivityQueueDepth tracks the current number of activity records waiting in
// each worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var ActivityQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "activity_queue_depth",
		Help:      "Current number of activity records pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// ActivityDroppedTotal counts activity records discarded because a worker
// queue was full. Recording is best-effort; the feed tolerates gaps.
var ActivityDroppedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "activity_dropped_total",
		Help:      "Total number of activity records dropped due to a full worker queue.",
	},
)
