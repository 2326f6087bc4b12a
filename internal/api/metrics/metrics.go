// Package metrics defines and registers all custom Prometheus metrics for the
// members portal. It is the single source of truth for metric names, labels,
// and help strings. Metrics register with the default registry via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "members"

// SignupsTotal counts signup attempts.
// Label:
//   - result: "created", "rejected" (validation failure), or "duplicate"
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
//   - result: "success" or "failed" (one bucket for unknown email and wrong
//     password; the split is deliberately not observable)
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// LogoutsTotal counts explicit session destructions via /logout.
var LogoutsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logouts_total",
		Help:      "Total number of explicit logouts.",
	},
)

// RoleChangesTotal counts admin role mutations.
// Label:
//   - action: "promote" or "demote"
var RoleChangesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "role_changes_total",
		Help:      "Total number of promote/demote operations.",
	},
	[]string{"action"},
)
