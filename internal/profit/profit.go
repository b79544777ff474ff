// Package profit derives per-project profit figures from calculated
// grants and recorded expenses, and aggregates them into a portfolio
// summary for the dashboard.
package profit

// ProfitData is the per-project profit view. GrantAmount is nil until a
// grant has been calculated; a missing grant means "unknown", not zero.
// EstimatedCosts is the sum of recorded expenses, where no expenses means
// a cost of zero, not unknown. Profit and ProfitMargin stay nil whenever
// the grant is unknown, even when costs are known.
type ProfitData struct {
	ProjectID        uint     `json:"projectId"`
	ProjectName      string   `json:"projectName"`
	ParticipantCount int      `json:"participantCount"`
	GrantAmount      *float64 `json:"grantAmount"`
	EstimatedCosts   *float64 `json:"estimatedCosts"`
	Profit           *float64 `json:"profit"`
	ProfitMargin     *float64 `json:"profitMargin"`
}

// ProfitSummary aggregates across all projects with a known grant.
type ProfitSummary struct {
	TotalGrants       float64 `json:"totalGrants"`
	TotalCosts        float64 `json:"totalCosts"`
	TotalProfit       float64 `json:"totalProfit"`
	AverageMargin     float64 `json:"averageMargin"`
	ProjectCount      int     `json:"projectCount"`
	ProjectsWithGrant int     `json:"projectsWithGrant"`
}

// Derive builds the profit view for one project. estimatedCosts is the
// expense sum, zero when nothing is recorded yet.
func Derive(projectID uint, name string, participantCount int, grantAmount *float64, estimatedCosts float64) ProfitData {
	data := ProfitData{
		ProjectID:        projectID,
		ProjectName:      name,
		ParticipantCount: participantCount,
		GrantAmount:      grantAmount,
		EstimatedCosts:   &estimatedCosts,
	}

	if grantAmount == nil {
		return data
	}

	p := *grantAmount - estimatedCosts
	data.Profit = &p

	// Margin is undefined on a zero grant, not a division by zero.
	if *grantAmount != 0 {
		margin := p / *grantAmount * 100
		data.ProfitMargin = &margin
	}

	return data
}

// Summarize totals grants and costs across projects with a known grant;
// projects whose grant was never calculated are excluded, not counted as
// zero. The average margin is 0 when no grants are known.
func Summarize(items []ProfitData) ProfitSummary {
	summary := ProfitSummary{ProjectCount: len(items)}

	for _, item := range items {
		if item.GrantAmount == nil {
			continue
		}
		summary.ProjectsWithGrant++
		summary.TotalGrants += *item.GrantAmount
		if item.EstimatedCosts != nil {
			summary.TotalCosts += *item.EstimatedCosts
		}
	}

	summary.TotalProfit = summary.TotalGrants - summary.TotalCosts
	if summary.TotalGrants > 0 {
		summary.AverageMargin = summary.TotalProfit / summary.TotalGrants * 100
	}

	return summary
}
