package expense

import (
	"log"
	"time"

	"github.com/OpenHorizon/pipeline-api/internal/budget"
	"github.com/OpenHorizon/pipeline-api/internal/notification"
	"github.com/OpenHorizon/pipeline-api/internal/project"
)

// AlertStore is the slice of the budget repository the alert check needs.
type AlertStore interface {
	ListEnabledByProject(projectID uint) ([]budget.Alert, error)
	MarkTriggered(id uint, at time.Time) error
}

// Notifier delivers budget alert notifications.
type Notifier interface {
	SendBudgetAlert(params notification.BudgetAlertParams)
}

// checkBudgetAlerts runs after an expense lands: every enabled alert on
// the project whose threshold is reached and whose dedup window has
// passed gets one notification and a fresh lastTriggeredAt.
func checkBudgetAlerts(store AlertStore, notifier Notifier, p *project.PipelineProject, now time.Time) {
	alerts, err := store.ListEnabledByProject(p.ID)
	if err != nil {
		log.Printf("failed to load budget alerts for project %d: %v", p.ID, err)
		return
	}

	for _, alert := range alerts {
		if !budget.ShouldTriggerAlert(p.BudgetTotal, p.BudgetSpent, alert.Threshold, alert.LastTriggeredAt, now) {
			continue
		}

		var percentage float64
		if p.BudgetTotal > 0 {
			percentage = p.BudgetSpent / p.BudgetTotal * 100
		}
		notifier.SendBudgetAlert(notification.BudgetAlertParams{
			ProjectName:     p.Name,
			ProjectID:       p.ID,
			BudgetTotal:     p.BudgetTotal,
			BudgetSpent:     p.BudgetSpent,
			BudgetRemaining: p.BudgetTotal - p.BudgetSpent,
			Percentage:      percentage,
			Threshold:       alert.Threshold,
			Recipients:      alert.Recipients(),
		})

		if err := store.MarkTriggered(alert.ID, now); err != nil {
			log.Printf("failed to record alert trigger for alert %d: %v", alert.ID, err)
		}
	}
}
