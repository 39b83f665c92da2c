package usecase

import (
	"sort"

	"propmarketing/internal/domain/entities"
)

// Dashboard aggregates. All monetary rollups sum the effective price of
// selected line items only; deselected items contribute nothing.

// CountBudgetsByStatus counts budgets per lifecycle status. Every status key
// is present in the result even when its count is zero.
func CountBudgetsByStatus(budgets []entities.Budget) map[entities.BudgetStatus]int {
	counts := make(map[entities.BudgetStatus]int, 4)
	for _, s := range entities.AllStatuses() {
		counts[s] = 0
	}
	for _, b := range budgets {
		counts[b.Status]++
	}
	return counts
}

// TotalSpendByCategory sums selected line-item spend per service category.
// Spend on a service id that is missing from the catalog is attributed to
// CategoryOther rather than dropped. All known categories are zero-filled.
func TotalSpendByCategory(budgets []entities.Budget, services []entities.Service) map[entities.ServiceCategory]float64 {
	categoryByService := make(map[string]entities.ServiceCategory, len(services))
	for _, s := range services {
		categoryByService[s.ID] = s.Category
	}

	totals := make(map[entities.ServiceCategory]float64, len(entities.KnownCategories()))
	for _, c := range entities.KnownCategories() {
		totals[c] = 0
	}
	for _, b := range budgets {
		for _, item := range b.LineItems {
			if !item.IsSelected {
				continue
			}
			category, ok := categoryByService[item.ServiceID]
			if !ok {
				category = entities.CategoryOther
			}
			totals[category] += EffectivePrice(item)
		}
	}
	return totals
}

// TotalSpendByTier sums budget spend bucketed by suburb tier, zero-filled.
func TotalSpendByTier(budgets []entities.Budget) map[entities.SuburbTier]float64 {
	totals := make(map[entities.SuburbTier]float64, 3)
	for _, t := range entities.AllTiers() {
		totals[t] = 0
	}
	for _, b := range budgets {
		totals[b.SuburbTier] += budgetSpend(b)
	}
	return totals
}

// MonthlySpend is one point of the monthly trend.
type MonthlySpend struct {
	Month string  `json:"month"`
	Total float64 `json:"total"`
	Count int     `json:"count"`
}

// MonthlySpendTrend groups budgets by creation month (YYYY-MM) and returns
// the points sorted ascending by month. Months without budgets are omitted;
// the trend is sparse by design. Lexicographic order is chronological order
// because the key is zero-padded.
func MonthlySpendTrend(budgets []entities.Budget) []MonthlySpend {
	byMonth := make(map[string]*MonthlySpend)
	for _, b := range budgets {
		month := b.CreatedAt.Format("2006-01")
		point, ok := byMonth[month]
		if !ok {
			point = &MonthlySpend{Month: month}
			byMonth[month] = point
		}
		point.Total += budgetSpend(b)
		point.Count++
	}

	trend := make([]MonthlySpend, 0, len(byMonth))
	for _, point := range byMonth {
		trend = append(trend, *point)
	}
	sort.Slice(trend, func(i, j int) bool { return trend[i].Month < trend[j].Month })
	return trend
}

// SpendSummary is the overall dashboard headline.
type SpendSummary struct {
	TotalBudgets int     `json:"total_budgets"`
	TotalSpend   float64 `json:"total_spend"`
	AverageSpend float64 `json:"average_spend"`
}

// OverallSpendSummary totals spend across all budgets. The average is zero
// for empty input, never a division by zero.
func OverallSpendSummary(budgets []entities.Budget) SpendSummary {
	s := SpendSummary{TotalBudgets: len(budgets)}
	for _, b := range budgets {
		s.TotalSpend += budgetSpend(b)
	}
	if s.TotalBudgets > 0 {
		s.AverageSpend = s.TotalSpend / float64(s.TotalBudgets)
	}
	return s
}

func budgetSpend(b entities.Budget) float64 {
	var total float64
	for _, item := range b.LineItems {
		if item.IsSelected {
			total += EffectivePrice(item)
		}
	}
	return total
}
