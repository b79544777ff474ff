package profit

import (
	"sort"
	"strings"
)

// Sortable columns of the profit table.
const (
	SortByName         = "name"
	SortByParticipants = "participants"
	SortByGrant        = "grant"
	SortByCosts        = "costs"
	SortByProfit       = "profit"
	SortByMargin       = "margin"
)

// Sort orders the profit table in place. The sort is stable so that ties
// keep their original relative order; nil numeric values sort as zero and
// names compare case-insensitively. Unknown fields leave the order as is.
func Sort(items []ProfitData, field string, descending bool) {
	var less func(a, b ProfitData) bool

	switch field {
	case SortByName:
		less = func(a, b ProfitData) bool {
			return strings.ToLower(a.ProjectName) < strings.ToLower(b.ProjectName)
		}
	case SortByParticipants:
		less = func(a, b ProfitData) bool { return a.ParticipantCount < b.ParticipantCount }
	case SortByGrant:
		less = func(a, b ProfitData) bool { return orZero(a.GrantAmount) < orZero(b.GrantAmount) }
	case SortByCosts:
		less = func(a, b ProfitData) bool { return orZero(a.EstimatedCosts) < orZero(b.EstimatedCosts) }
	case SortByProfit:
		less = func(a, b ProfitData) bool { return orZero(a.Profit) < orZero(b.Profit) }
	case SortByMargin:
		less = func(a, b ProfitData) bool { return orZero(a.ProfitMargin) < orZero(b.ProfitMargin) }
	default:
		return
	}

	sort.SliceStable(items, func(i, j int) bool {
		if descending {
			return less(items[j], items[i])
		}
		return less(items[i], items[j])
	})
}

func orZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
