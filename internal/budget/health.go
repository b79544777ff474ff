// Package budget classifies budget health, decides when budget alerts
// fire, and serves alert configuration and per-project budget summaries.
package budget

import (
	"math"
	"time"
)

type HealthStatus string

const (
	StatusHealthy    HealthStatus = "HEALTHY"
	StatusWarning    HealthStatus = "WARNING"
	StatusCritical   HealthStatus = "CRITICAL"
	StatusOverBudget HealthStatus = "OVER_BUDGET"
)

// Health is the derived view of an (allocated, spent) pair. Computed fresh
// on each call, never persisted.
type Health struct {
	Status     HealthStatus `json:"status"`
	Percentage float64      `json:"percentage"`
	Message    string       `json:"message"`
}

// AlertDedupWindow is the minimum gap between two notifications for the
// same alert.
const AlertDedupWindow = 24 * time.Hour

// CalculateHealth thresholds the spent/allocated ratio into a status.
// A zero allocation reports 0%, not a division error. Thresholds are
// boundary-exact: 75 is WARNING, 90 is CRITICAL, 100 is OVER_BUDGET.
func CalculateHealth(allocated, spent float64) Health {
	var percentage float64
	if allocated > 0 {
		percentage = spent / allocated * 100
	}

	var status HealthStatus
	var message string
	switch {
	case percentage >= 100:
		status = StatusOverBudget
		message = "Budget exceeded"
	case percentage >= 90:
		status = StatusCritical
		message = "Budget almost exhausted"
	case percentage >= 75:
		status = StatusWarning
		message = "Budget usage high"
	default:
		status = StatusHealthy
		message = "Budget on track"
	}

	return Health{
		Status:     status,
		Percentage: math.Round(percentage*10) / 10,
		Message:    message,
	}
}

// ShouldTriggerAlert decides whether an alert notification fires: the
// spent percentage must have reached the threshold and no notification for
// this alert may have gone out within the dedup window. This is a
// debounce, not a queue.
func ShouldTriggerAlert(allocated, spent, threshold float64, lastTriggeredAt *time.Time, now time.Time) bool {
	var percentage float64
	if allocated > 0 {
		percentage = spent / allocated * 100
	}

	if percentage < threshold {
		return false
	}

	if lastTriggeredAt != nil && now.Sub(*lastTriggeredAt) < AlertDedupWindow {
		return false
	}

	return true
}
