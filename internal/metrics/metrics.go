// Package metrics declares the Prometheus collectors of the pet-shop API.
// They register on the default registry at init through promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "petshop"

// AccessDenialsTotal counts requests stopped by the access guard.
// Label reason: unauthenticated, inactive, insufficient_role, missing_permission.
var AccessDenialsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "access_denials_total",
		Help:      "Requests denied by the access guard, by reason.",
	},
	[]string{"reason"},
)

// IdentityResolutionsTotal counts identity resolutions by the source that won.
// Label source: record, session, none.
var IdentityResolutionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "identity_resolutions_total",
		Help:      "Identity resolutions by authoritative source.",
	},
	[]string{"source"},
)

// RejectedRoleClaimsTotal counts role values that failed enum validation.
var RejectedRoleClaimsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rejected_role_claims_total",
		Help:      "Role claims rejected because they are not a known role.",
	},
)

// BackgroundTasksTotal counts finished background tasks.
// Labels task (e.g. "session_sync") and result: ok, error, dropped.
var BackgroundTasksTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "background_tasks_total",
		Help:      "Best-effort background tasks by name and result.",
	},
	[]string{"task", "result"},
)

// CheckoutsTotal counts checkout attempts.
// Label result: ok, or the business code of the failure, or "error".
var CheckoutsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "checkouts_total",
		Help:      "Cart checkouts by result.",
	},
	[]string{"result"},
)

// CheckoutBookingsTotal counts bookings created through checkout.
var CheckoutBookingsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "checkout_bookings_total",
		Help:      "Bookings confirmed through cart checkout.",
	},
)

// RoleAssignmentsTotal counts role assignment attempts.
// Label result: ok, or the denial reason.
var RoleAssignmentsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "role_assignments_total",
		Help:      "Role assignment attempts by result.",
	},
	[]string{"result"},
)

// CatalogChangesTotal counts back-office catalog writes.
// Labels action: create, update, delete; result: ok, or the business code.
var CatalogChangesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "catalog_changes_total",
		Help:      "Service catalog writes by action and result.",
	},
	[]string{"action", "result"},
)
