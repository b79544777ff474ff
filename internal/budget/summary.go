package budget

import (
	"github.com/OpenHorizon/pipeline-api/internal/phase"
	"github.com/OpenHorizon/pipeline-api/internal/project"
)

// PhaseBreakdown is one phase's slice of the budget summary.
type PhaseBreakdown struct {
	ID         uint    `json:"id"`
	Name       string  `json:"name"`
	Type       string  `json:"type"`
	Allocated  float64 `json:"allocated"`
	Spent      float64 `json:"spent"`
	Remaining  float64 `json:"remaining"`
	Percentage float64 `json:"percentage"`
}

// Summary is the project budget dashboard view.
type Summary struct {
	TotalBudget    float64          `json:"totalBudget"`
	TotalSpent     float64          `json:"totalSpent"`
	TotalRemaining float64          `json:"totalRemaining"`
	Health         Health           `json:"health"`
	Phases         []PhaseBreakdown `json:"phases"`
}

// BuildSummary derives the budget summary from current totals. Computed
// fresh each call, nothing persisted.
func BuildSummary(p *project.PipelineProject, phases []phase.Phase) Summary {
	s := Summary{
		TotalBudget:    p.BudgetTotal,
		TotalSpent:     p.BudgetSpent,
		TotalRemaining: p.BudgetTotal - p.BudgetSpent,
		Health:         CalculateHealth(p.BudgetTotal, p.BudgetSpent),
		Phases:         make([]PhaseBreakdown, 0, len(phases)),
	}

	for _, ph := range phases {
		var percentage float64
		if ph.BudgetAllocated > 0 {
			percentage = ph.BudgetSpent / ph.BudgetAllocated * 100
		}
		s.Phases = append(s.Phases, PhaseBreakdown{
			ID:         ph.ID,
			Name:       ph.Name,
			Type:       ph.Type,
			Allocated:  ph.BudgetAllocated,
			Spent:      ph.BudgetSpent,
			Remaining:  ph.BudgetAllocated - ph.BudgetSpent,
			Percentage: percentage,
		})
	}

	return s
}
