package budget

import (
	"testing"
	"time"
)

func TestCalculateHealthBoundaries(t *testing.T) {
	cases := []struct {
		allocated float64
		spent     float64
		status    HealthStatus
	}{
		{10000, 0, StatusHealthy},
		{10000, 7499.9, StatusHealthy},
		{10000, 7500, StatusWarning},
		{10000, 8999, StatusWarning},
		{10000, 9000, StatusCritical},
		{10000, 9999, StatusCritical},
		{10000, 10000, StatusOverBudget},
		{10000, 15000, StatusOverBudget},
	}
	for _, c := range cases {
		h := CalculateHealth(c.allocated, c.spent)
		if h.Status != c.status {
			t.Errorf("allocated=%.0f spent=%.1f: expected %s, got %s", c.allocated, c.spent, c.status, h.Status)
		}
	}
}

func TestCalculateHealthZeroAllocation(t *testing.T) {
	h := CalculateHealth(0, 5000)
	if h.Percentage != 0 {
		t.Errorf("expected 0%% for zero allocation, got %.1f", h.Percentage)
	}
	if h.Status != StatusHealthy {
		t.Errorf("expected HEALTHY for zero allocation, got %s", h.Status)
	}
}

func TestCalculateHealthRoundsToOneDecimal(t *testing.T) {
	h := CalculateHealth(3, 1)
	if h.Percentage != 33.3 {
		t.Errorf("expected 33.3, got %v", h.Percentage)
	}
}

func TestShouldTriggerAlertBelowThreshold(t *testing.T) {
	if ShouldTriggerAlert(10000, 7000, 80, nil, time.Now()) {
		t.Error("alert must not fire below the threshold")
	}
}

func TestShouldTriggerAlertFirstTime(t *testing.T) {
	if !ShouldTriggerAlert(10000, 8500, 80, nil, time.Now()) {
		t.Error("alert must fire when threshold reached and never triggered before")
	}
}

func TestShouldTriggerAlertDedupWindow(t *testing.T) {
	now := time.Now()

	recent := now.Add(-23 * time.Hour)
	if ShouldTriggerAlert(10000, 8500, 80, &recent, now) {
		t.Error("alert must not re-fire 23 hours after the last trigger")
	}

	stale := now.Add(-(24*time.Hour + time.Second))
	if !ShouldTriggerAlert(10000, 8500, 80, &stale, now) {
		t.Error("alert must fire 24 hours and 1 second after the last trigger")
	}
}

func TestShouldTriggerAlertZeroAllocation(t *testing.T) {
	if ShouldTriggerAlert(0, 5000, 80, nil, time.Now()) {
		t.Error("alert must not fire when nothing is allocated")
	}
}
