package export

import (
	"testing"
	"time"

	"github.com/OpenHorizon/pipeline-api/internal/expense"
	"github.com/OpenHorizon/pipeline-api/internal/phase"
	"github.com/OpenHorizon/pipeline-api/internal/project"
)

func TestBuildWorkbookSheets(t *testing.T) {
	grant := 34675.0
	p := &project.PipelineProject{
		Reference:              "ab12cd34",
		Name:                   "Youth Exchange Malmo",
		Type:                   project.TypeStudentExchange,
		Status:                 project.StatusInProgress,
		StartDate:              time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:                time.Date(2026, 6, 14, 0, 0, 0, 0, time.UTC),
		ParticipantCount:       20,
		BudgetTotal:            40000,
		BudgetSpent:            12000,
		ErasmusGrantCalculated: &grant,
	}
	phases := []phase.Phase{
		{Name: "Hostel", Type: phase.TypeAccommodation, Status: phase.StatusInProgress, BudgetAllocated: 15000, BudgetSpent: 8000},
		{Name: "Flights", Type: phase.TypeTravel, Status: phase.StatusCompleted, BudgetAllocated: 10000, BudgetSpent: 4000},
	}
	expenses := []expense.Expense{
		{Date: time.Date(2026, 5, 2, 0, 0, 0, 0, time.UTC), Category: expense.CategoryTravel, Description: "Group flight deposit", Amount: 4000, Currency: "EUR"},
	}

	f, err := BuildWorkbook(p, phases, expenses)
	if err != nil {
		t.Fatalf("BuildWorkbook: %v", err)
	}
	defer f.Close()

	for _, sheet := range []string{sheetOverview, sheetPhases, sheetExpenses} {
		if idx, _ := f.GetSheetIndex(sheet); idx < 0 {
			t.Errorf("missing sheet %q", sheet)
		}
	}

	name, err := f.GetCellValue(sheetOverview, "B2")
	if err != nil {
		t.Fatalf("GetCellValue: %v", err)
	}
	if name != "Youth Exchange Malmo" {
		t.Errorf("overview B2 = %q, want project name", name)
	}

	ph, _ := f.GetCellValue(sheetPhases, "A2")
	if ph != "Hostel" {
		t.Errorf("phases A2 = %q", ph)
	}

	total, _ := f.GetCellValue(sheetExpenses, "D3")
	if total != "4000" {
		t.Errorf("expenses total = %q", total)
	}
}

func TestBuildWorkbookNilGrantShowsDash(t *testing.T) {
	p := &project.PipelineProject{Name: "No grant yet", Reference: "ref"}

	f, err := BuildWorkbook(p, nil, nil)
	if err != nil {
		t.Fatalf("BuildWorkbook: %v", err)
	}
	defer f.Close()

	v, _ := f.GetCellValue(sheetOverview, "B17")
	if v != "-" {
		t.Errorf("expected dash for uncalculated grant, got %q", v)
	}
}
