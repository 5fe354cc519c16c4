// Package metrics defines and registers all custom Prometheus metrics for
// the rewards platform. It is the single source of truth for metric names,
// labels, and help strings; registration happens implicitly via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "rewards"

// ── Ledger metrics ───────────────────────────────────────────────────────────

// CoinsGrantedTotal counts successful grant operations.
var CoinsGrantedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "coins_granted_total",
		Help:      "Total number of successful coin grants.",
	},
)

// CoinsGrantedAmount sums the coins handed out by successful grants.
var CoinsGrantedAmount = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "coins_granted_amount_total",
		Help:      "Total amount of coins granted to students.",
	},
)

// PurchasesTotal counts successful purchases.
// Label:
//   - item_id: the purchased catalog item (small, admin-controlled set)
var PurchasesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "purchases_total",
		Help:      "Total number of successful item purchases, by item.",
	},
	[]string{"item_id"},
)

// LedgerErrorsTotal counts rejected or failed ledger operations.
// Label:
//   - reason: short failure class (e.g. "not_authorized", "insufficient_balance")
var LedgerErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ledger_errors_total",
		Help:      "Total number of ledger operations that failed, by reason.",
	},
	[]string{"reason"},
)

// ── Roster metrics ───────────────────────────────────────────────────────────

// StudentsEnrolledTotal counts students enrolled by teachers or signup.
var StudentsEnrolledTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "students_enrolled_total",
		Help:      "Total number of students enrolled.",
	},
)

// ── Catalog metrics ──────────────────────────────────────────────────────────

// ItemsCreatedTotal counts catalog items created by admins.
var ItemsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "items_created_total",
		Help:      "Total number of catalog items created.",
	},
)
