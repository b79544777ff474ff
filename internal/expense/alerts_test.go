package expense

import (
	"testing"
	"time"

	"github.com/OpenHorizon/pipeline-api/internal/budget"
	"github.com/OpenHorizon/pipeline-api/internal/notification"
	"github.com/OpenHorizon/pipeline-api/internal/project"
)

type mockAlertStore struct {
	alerts    []budget.Alert
	triggered []uint
}

func (m *mockAlertStore) ListEnabledByProject(projectID uint) ([]budget.Alert, error) {
	return m.alerts, nil
}

func (m *mockAlertStore) MarkTriggered(id uint, at time.Time) error {
	m.triggered = append(m.triggered, id)
	return nil
}

type mockNotifier struct {
	sent []notification.BudgetAlertParams
}

func (m *mockNotifier) SendBudgetAlert(params notification.BudgetAlertParams) {
	m.sent = append(m.sent, params)
}

func TestCheckBudgetAlertsTriggersAboveThreshold(t *testing.T) {
	store := &mockAlertStore{alerts: []budget.Alert{
		{Threshold: 80, EmailRecipients: "pm@openhorizon.eu"},
	}}
	store.alerts[0].ID = 1
	notifier := &mockNotifier{}

	p := &project.PipelineProject{Name: "Youth Exchange Berlin", BudgetTotal: 10000, BudgetSpent: 8500}

	checkBudgetAlerts(store, notifier, p, time.Now())

	if len(notifier.sent) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(notifier.sent))
	}
	sent := notifier.sent[0]
	if sent.Percentage != 85 {
		t.Errorf("expected percentage 85, got %v", sent.Percentage)
	}
	if sent.BudgetRemaining != 1500 {
		t.Errorf("expected remaining 1500, got %v", sent.BudgetRemaining)
	}
	if len(store.triggered) != 1 || store.triggered[0] != 1 {
		t.Errorf("expected alert 1 marked triggered, got %v", store.triggered)
	}
}

func TestCheckBudgetAlertsBelowThreshold(t *testing.T) {
	store := &mockAlertStore{alerts: []budget.Alert{{Threshold: 80}}}
	notifier := &mockNotifier{}

	p := &project.PipelineProject{BudgetTotal: 10000, BudgetSpent: 5000}

	checkBudgetAlerts(store, notifier, p, time.Now())

	if len(notifier.sent) != 0 {
		t.Errorf("expected no notifications, got %d", len(notifier.sent))
	}
	if len(store.triggered) != 0 {
		t.Errorf("expected no triggers, got %v", store.triggered)
	}
}

func TestCheckBudgetAlertsDeduplicatesWithinWindow(t *testing.T) {
	now := time.Now()
	recent := now.Add(-2 * time.Hour)
	store := &mockAlertStore{alerts: []budget.Alert{
		{Threshold: 80, LastTriggeredAt: &recent},
	}}
	notifier := &mockNotifier{}

	p := &project.PipelineProject{BudgetTotal: 10000, BudgetSpent: 9000}

	checkBudgetAlerts(store, notifier, p, now)

	if len(notifier.sent) != 0 {
		t.Errorf("expected dedup to suppress notification, got %d", len(notifier.sent))
	}
}

func TestCheckBudgetAlertsFiresAgainAfterWindow(t *testing.T) {
	now := time.Now()
	stale := now.Add(-25 * time.Hour)
	store := &mockAlertStore{alerts: []budget.Alert{
		{Threshold: 80, LastTriggeredAt: &stale},
	}}
	notifier := &mockNotifier{}

	p := &project.PipelineProject{BudgetTotal: 10000, BudgetSpent: 9000}

	checkBudgetAlerts(store, notifier, p, now)

	if len(notifier.sent) != 1 {
		t.Errorf("expected notification after dedup window, got %d", len(notifier.sent))
	}
}

func TestCheckBudgetAlertsMultipleThresholds(t *testing.T) {
	a1 := budget.Alert{Threshold: 75}
	a1.ID = 1
	a2 := budget.Alert{Threshold: 90}
	a2.ID = 2
	a3 := budget.Alert{Threshold: 100}
	a3.ID = 3
	store := &mockAlertStore{alerts: []budget.Alert{a1, a2, a3}}
	notifier := &mockNotifier{}

	p := &project.PipelineProject{BudgetTotal: 10000, BudgetSpent: 9200}

	checkBudgetAlerts(store, notifier, p, time.Now())

	if len(notifier.sent) != 2 {
		t.Fatalf("expected 75%% and 90%% alerts to fire, got %d", len(notifier.sent))
	}
	if len(store.triggered) != 2 {
		t.Errorf("expected 2 triggers, got %v", store.triggered)
	}
}
