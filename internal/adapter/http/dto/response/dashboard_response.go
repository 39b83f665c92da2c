package response

import "propmarketing/internal/usecase"

type MonthlySpendResponse struct {
	Month string  `json:"month"`
	Total float64 `json:"total"`
	Count int     `json:"count"`
}

type SpendSummaryResponse struct {
	TotalBudgets int     `json:"total_budgets"`
	TotalSpend   float64 `json:"total_spend"`
	AverageSpend float64 `json:"average_spend"`
}

type DashboardResponse struct {
	StatusCounts    map[string]int         `json:"status_counts"`
	SpendByCategory map[string]float64     `json:"spend_by_category"`
	SpendByTier     map[string]float64     `json:"spend_by_tier"`
	MonthlyTrend    []MonthlySpendResponse `json:"monthly_trend"`
	Summary         SpendSummaryResponse   `json:"summary"`
}

func FromDashboardOverview(o usecase.DashboardOverview) DashboardResponse {
	statusCounts := make(map[string]int, len(o.StatusCounts))
	for status, count := range o.StatusCounts {
		statusCounts[string(status)] = count
	}
	spendByCategory := make(map[string]float64, len(o.SpendByCategory))
	for category, total := range o.SpendByCategory {
		spendByCategory[string(category)] = total
	}
	spendByTier := make(map[string]float64, len(o.SpendByTier))
	for tier, total := range o.SpendByTier {
		spendByTier[string(tier)] = total
	}
	trend := make([]MonthlySpendResponse, len(o.MonthlyTrend))
	for i, p := range o.MonthlyTrend {
		trend[i] = MonthlySpendResponse{Month: p.Month, Total: p.Total, Count: p.Count}
	}
	return DashboardResponse{
		StatusCounts:    statusCounts,
		SpendByCategory: spendByCategory,
		SpendByTier:     spendByTier,
		MonthlyTrend:    trend,
		Summary: SpendSummaryResponse{
			TotalBudgets: o.Summary.TotalBudgets,
			TotalSpend:   o.Summary.TotalSpend,
			AverageSpend: o.Summary.AverageSpend,
		},
	}
}
