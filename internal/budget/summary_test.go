package budget

import (
	"testing"

	"github.com/OpenHorizon/pipeline-api/internal/phase"
	"github.com/OpenHorizon/pipeline-api/internal/project"
)

func TestBuildSummary(t *testing.T) {
	p := &project.PipelineProject{BudgetTotal: 20000, BudgetSpent: 9200}
	phases := []phase.Phase{
		{Name: "Hostel", Type: phase.TypeAccommodation, BudgetAllocated: 8000, BudgetSpent: 6000},
		{Name: "Flights", Type: phase.TypeTravel, BudgetAllocated: 0, BudgetSpent: 3200},
	}

	s := BuildSummary(p, phases)

	if s.TotalRemaining != 10800 {
		t.Errorf("remaining = %v, want 10800", s.TotalRemaining)
	}
	if s.Health.Status != StatusHealthy {
		t.Errorf("health = %v, want HEALTHY at 46%%", s.Health.Status)
	}
	if len(s.Phases) != 2 {
		t.Fatalf("expected 2 phase rows, got %d", len(s.Phases))
	}
	if s.Phases[0].Percentage != 75 {
		t.Errorf("hostel percentage = %v, want 75", s.Phases[0].Percentage)
	}
	// No allocation means no percentage, not a division by zero.
	if s.Phases[1].Percentage != 0 {
		t.Errorf("flights percentage = %v, want 0", s.Phases[1].Percentage)
	}
}

func TestBuildSummaryNoPhases(t *testing.T) {
	p := &project.PipelineProject{BudgetTotal: 5000, BudgetSpent: 5000}

	s := BuildSummary(p, nil)

	if s.Health.Status != StatusOverBudget {
		t.Errorf("health = %v, want OVER_BUDGET", s.Health.Status)
	}
	if s.Phases == nil || len(s.Phases) != 0 {
		t.Errorf("phases should be an empty slice, got %v", s.Phases)
	}
}
