// Package metrics exposes the service's prometheus counters.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Claim outcome label values.
const (
	ClaimAwarded         = "awarded"
	ClaimAlreadyAccepted = "already_accepted"
	ClaimWorkerUnknown   = "worker_unknown"
	ClaimOrderNotFound   = "order_not_found"
)

var (
	OrdersCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tradematch_orders_created_total",
		Help: "Total number of orders successfully created.",
	})

	ClaimsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tradematch_claims_total",
		Help: "Total number of claim attempts by outcome.",
	},
		[]string{"outcome"},
	)

	NotificationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tradematch_notifications_total",
		Help: "Total number of notification deliveries by status.",
	},
		[]string{"status"},
	)
)
