package profit

import "testing"

func f(v float64) *float64 { return &v }

func TestDeriveWithGrantAndCosts(t *testing.T) {
	data := Derive(1, "Youth Exchange Malmö", 20, f(20000), 15000)
	if data.Profit == nil || *data.Profit != 5000 {
		t.Fatalf("expected profit 5000, got %v", data.Profit)
	}
	if data.ProfitMargin == nil || *data.ProfitMargin != 25 {
		t.Fatalf("expected margin 25, got %v", data.ProfitMargin)
	}
}

func TestDeriveNilGrantKeepsProfitNil(t *testing.T) {
	data := Derive(2, "Uncalculated", 15, nil, 3000)
	if data.Profit != nil {
		t.Errorf("expected nil profit, got %v", *data.Profit)
	}
	if data.ProfitMargin != nil {
		t.Errorf("expected nil margin, got %v", *data.ProfitMargin)
	}
	if data.EstimatedCosts == nil || *data.EstimatedCosts != 3000 {
		t.Errorf("costs stay known even when the grant is not")
	}
}

func TestDeriveZeroGrantHasNilMargin(t *testing.T) {
	data := Derive(3, "Zero grant", 10, f(0), 500)
	if data.Profit == nil || *data.Profit != -500 {
		t.Fatalf("expected profit -500, got %v", data.Profit)
	}
	if data.ProfitMargin != nil {
		t.Errorf("expected nil margin on zero grant, got %v", *data.ProfitMargin)
	}
}

func TestDeriveNoExpensesMeansZeroCost(t *testing.T) {
	data := Derive(4, "Fresh project", 25, f(10000), 0)
	if data.EstimatedCosts == nil || *data.EstimatedCosts != 0 {
		t.Fatal("expected zero costs, not unknown")
	}
	if data.Profit == nil || *data.Profit != 10000 {
		t.Fatalf("expected profit 10000, got %v", data.Profit)
	}
}

func TestSummarizeExcludesNilGrants(t *testing.T) {
	items := []ProfitData{
		Derive(1, "A", 20, f(20000), 15000),
		Derive(2, "B", 10, nil, 8000),
		Derive(3, "C", 30, f(30000), 20000),
	}
	s := Summarize(items)
	if s.TotalGrants != 50000 {
		t.Errorf("expected grants 50000, got %.2f", s.TotalGrants)
	}
	if s.TotalCosts != 35000 {
		t.Errorf("expected costs 35000 (project B excluded), got %.2f", s.TotalCosts)
	}
	if s.TotalProfit != 15000 {
		t.Errorf("expected profit 15000, got %.2f", s.TotalProfit)
	}
	if s.AverageMargin != 30 {
		t.Errorf("expected average margin 30, got %.2f", s.AverageMargin)
	}
	if s.ProjectCount != 3 || s.ProjectsWithGrant != 2 {
		t.Errorf("expected 3 projects, 2 with grant, got %d/%d", s.ProjectCount, s.ProjectsWithGrant)
	}
}

func TestSummarizeNoGrantsIsZeroNotNaN(t *testing.T) {
	items := []ProfitData{
		Derive(1, "A", 20, nil, 5000),
		Derive(2, "B", 10, nil, 0),
	}
	s := Summarize(items)
	if s.AverageMargin != 0 {
		t.Errorf("expected average margin 0, got %v", s.AverageMargin)
	}
	if s.TotalGrants != 0 || s.TotalCosts != 0 {
		t.Errorf("expected zero totals, got %.2f/%.2f", s.TotalGrants, s.TotalCosts)
	}
}

func TestSortByNameCaseInsensitive(t *testing.T) {
	items := []ProfitData{
		{ProjectID: 1, ProjectName: "berlin exchange"},
		{ProjectID: 2, ProjectName: "Athens training"},
		{ProjectID: 3, ProjectName: "Cyprus seminar"},
	}
	Sort(items, SortByName, false)
	if items[0].ProjectID != 2 || items[1].ProjectID != 1 || items[2].ProjectID != 3 {
		t.Errorf("unexpected order: %v %v %v", items[0].ProjectName, items[1].ProjectName, items[2].ProjectName)
	}
}

func TestSortNilSortsAsZero(t *testing.T) {
	items := []ProfitData{
		{ProjectID: 1, Profit: f(100)},
		{ProjectID: 2, Profit: nil},
		{ProjectID: 3, Profit: f(-50)},
	}
	Sort(items, SortByProfit, false)
	if items[0].ProjectID != 3 || items[1].ProjectID != 2 || items[2].ProjectID != 1 {
		t.Errorf("unexpected order: %d %d %d", items[0].ProjectID, items[1].ProjectID, items[2].ProjectID)
	}
}

func TestSortIsStableOnTies(t *testing.T) {
	items := []ProfitData{
		{ProjectID: 1, GrantAmount: f(1000)},
		{ProjectID: 2, GrantAmount: nil},
		{ProjectID: 3, GrantAmount: f(0)},
		{ProjectID: 4, GrantAmount: f(1000)},
	}
	Sort(items, SortByGrant, false)
	// nil and 0 tie at zero and keep their original relative order.
	if items[0].ProjectID != 2 || items[1].ProjectID != 3 {
		t.Errorf("expected tie order 2,3 first, got %d,%d", items[0].ProjectID, items[1].ProjectID)
	}
	if items[2].ProjectID != 1 || items[3].ProjectID != 4 {
		t.Errorf("expected tie order 1,4 last, got %d,%d", items[2].ProjectID, items[3].ProjectID)
	}
}

func TestSortDescending(t *testing.T) {
	items := []ProfitData{
		{ProjectID: 1, ParticipantCount: 10},
		{ProjectID: 2, ParticipantCount: 30},
		{ProjectID: 3, ParticipantCount: 20},
	}
	Sort(items, SortByParticipants, true)
	if items[0].ProjectID != 2 || items[1].ProjectID != 3 || items[2].ProjectID != 1 {
		t.Errorf("unexpected order: %d %d %d", items[0].ProjectID, items[1].ProjectID, items[2].ProjectID)
	}
}
