package metrics

import "github.com/prometheus/client_golang/prometheus"

// Prometheus metrics for payment flow health
var (
	OrdersCreatedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "payment_orders_created_total",
			Help: "Total number of gateway orders created successfully",
		},
	)

	OrderCreateFailuresTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "payment_order_create_failures_total",
			Help: "Total number of failed order creations",
		},
	)

	VerifyRequestsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "payment_verify_requests_total",
			Help: "Total number of verify-order requests",
		},
	)

	WebhooksReceivedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "payment_webhooks_received_total",
			Help: "Total number of webhook notifications received",
		},
	)

	WebhooksInvalidTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "payment_webhooks_invalid_total",
			Help: "Total number of webhooks rejected before reconciliation",
		},
	)

	WebhooksAppliedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "payment_webhooks_applied_total",
			Help: "Total number of webhooks merged into the payment store",
		},
	)

	TeamsMarkedPaidTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "payment_teams_marked_paid_total",
			Help: "Total number of paid-status projections onto teams",
		},
	)
)

// Register registers all Prometheus metrics
func Register() {
	prometheus.MustRegister(
		OrdersCreatedTotal,
		OrderCreateFailuresTotal,
		VerifyRequestsTotal,
		WebhooksReceivedTotal,
		WebhooksInvalidTotal,
		WebhooksAppliedTotal,
		TeamsMarkedPaidTotal,
	)
}
