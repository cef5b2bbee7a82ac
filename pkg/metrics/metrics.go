// Package metrics holds the Prometheus collectors shared by both services.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "billing_automation"

// Outcome label values.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
	OutcomeSkipped = "skipped"
)

var (
	// IntegrationCalls counts vendor side effects by integration and outcome.
	IntegrationCalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "integration_calls_total",
		Help:      "Vendor side effects by integration and outcome.",
	}, []string{"integration", "outcome"})

	TokenRefreshes = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_refreshes_total",
		Help:      "OAuth token refresh attempts by outcome.",
	}, []string{"outcome"})

	GoalDispatches = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "goal_dispatches_total",
		Help:      "CRM goal dispatches by method and outcome.",
	}, []string{"method", "outcome"})

	BillingCalculations = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "billing_calculations_total",
		Help:      "Billing dates calculated.",
	})

	LeaveComputations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "leave_computations_total",
		Help:      "Leave times computed by trigger source and outcome.",
	}, []string{"source", "outcome"})

	WebhookEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "webhook_events_total",
		Help:      "Inbound webhook events by event type and disposition.",
	}, []string{"event", "disposition"})
)

// Outcome maps an error to OutcomeSuccess or OutcomeFailure.
func Outcome(err error) string {
	if err != nil {
		return OutcomeFailure
	}
	return OutcomeSuccess
}
