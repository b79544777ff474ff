// Package export renders a project and its phases and expenses into an
// .xlsx workbook for sharing with partner organisations and auditors.
package export

import (
	"fmt"

	"github.com/OpenHorizon/pipeline-api/internal/budget"
	"github.com/OpenHorizon/pipeline-api/internal/expense"
	"github.com/OpenHorizon/pipeline-api/internal/phase"
	"github.com/OpenHorizon/pipeline-api/internal/project"
	"github.com/xuri/excelize/v2"
)

const (
	sheetOverview = "Overview"
	sheetPhases   = "Phases"
	sheetExpenses = "Expenses"
)

// BuildWorkbook assembles the three report sheets. The caller owns the
// returned file and must Close it.
func BuildWorkbook(p *project.PipelineProject, phases []phase.Phase, expenses []expense.Expense) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", sheetOverview); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(sheetPhases); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(sheetExpenses); err != nil {
		return nil, err
	}

	writeOverview(f, p)
	writePhases(f, phases)
	writeExpenses(f, expenses)

	return f, nil
}

func writeOverview(f *excelize.File, p *project.PipelineProject) {
	health := budget.CalculateHealth(p.BudgetTotal, p.BudgetSpent)

	rows := []struct {
		label string
		value interface{}
	}{
		{"Reference", p.Reference},
		{"Name", p.Name},
		{"Type", p.Type},
		{"Status", p.Status},
		{"Start date", p.StartDate.Format("2006-01-02")},
		{"End date", p.EndDate.Format("2006-01-02")},
		{"Participants", p.ParticipantCount},
		{"Activity days", p.ActivityDays},
		{"Travel days", p.TravelDays},
		{"Origin city", p.OriginCity},
		{"Destination", p.Location},
		{"Host country", p.HostCountry},
		{"Budget total", p.BudgetTotal},
		{"Budget spent", p.BudgetSpent},
		{"Budget remaining", p.BudgetTotal - p.BudgetSpent},
		{"Budget health", fmt.Sprintf("%s (%.1f%%)", health.Status, health.Percentage)},
		{"Grant (calculated)", floatOrDash(p.ErasmusGrantCalculated)},
		{"Grant (actual)", floatOrDash(p.ErasmusGrantActual)},
	}

	for i, r := range rows {
		row := i + 1
		_ = f.SetCellValue(sheetOverview, fmt.Sprintf("A%d", row), r.label)
		_ = f.SetCellValue(sheetOverview, fmt.Sprintf("B%d", row), r.value)
	}
	_ = f.SetColWidth(sheetOverview, "A", "A", 22)
	_ = f.SetColWidth(sheetOverview, "B", "B", 40)
}

func writePhases(f *excelize.File, phases []phase.Phase) {
	headers := []string{"Name", "Type", "Status", "Allocated", "Spent", "Remaining"}
	for i, h := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		_ = f.SetCellValue(sheetPhases, col+"1", h)
	}

	for i, ph := range phases {
		row := i + 2
		_ = f.SetCellValue(sheetPhases, fmt.Sprintf("A%d", row), ph.Name)
		_ = f.SetCellValue(sheetPhases, fmt.Sprintf("B%d", row), ph.Type)
		_ = f.SetCellValue(sheetPhases, fmt.Sprintf("C%d", row), ph.Status)
		_ = f.SetCellValue(sheetPhases, fmt.Sprintf("D%d", row), ph.BudgetAllocated)
		_ = f.SetCellValue(sheetPhases, fmt.Sprintf("E%d", row), ph.BudgetSpent)
		_ = f.SetCellValue(sheetPhases, fmt.Sprintf("F%d", row), ph.BudgetAllocated-ph.BudgetSpent)
	}
	_ = f.SetColWidth(sheetPhases, "A", "C", 20)
}

func writeExpenses(f *excelize.File, expenses []expense.Expense) {
	headers := []string{"Date", "Category", "Description", "Amount", "Currency", "Receipt"}
	for i, h := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		_ = f.SetCellValue(sheetExpenses, col+"1", h)
	}

	var total float64
	for i, e := range expenses {
		row := i + 2
		_ = f.SetCellValue(sheetExpenses, fmt.Sprintf("A%d", row), e.Date.Format("2006-01-02"))
		_ = f.SetCellValue(sheetExpenses, fmt.Sprintf("B%d", row), e.Category)
		_ = f.SetCellValue(sheetExpenses, fmt.Sprintf("C%d", row), e.Description)
		_ = f.SetCellValue(sheetExpenses, fmt.Sprintf("D%d", row), e.Amount)
		_ = f.SetCellValue(sheetExpenses, fmt.Sprintf("E%d", row), e.Currency)
		_ = f.SetCellValue(sheetExpenses, fmt.Sprintf("F%d", row), e.ReceiptURL)
		total += e.Amount
	}

	sumRow := len(expenses) + 2
	_ = f.SetCellValue(sheetExpenses, fmt.Sprintf("C%d", sumRow), "Total")
	_ = f.SetCellValue(sheetExpenses, fmt.Sprintf("D%d", sumRow), total)
	_ = f.SetColWidth(sheetExpenses, "C", "C", 40)
}

func floatOrDash(v *float64) interface{} {
	if v == nil {
		return "-"
	}
	return *v
}
