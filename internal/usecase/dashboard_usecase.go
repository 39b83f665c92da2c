package usecase

import (
	"context"

	"propmarketing/internal/domain/entities"
	"propmarketing/internal/usecase/interfaces"
)

// DashboardOverview composes every rollup the dashboard renders.
type DashboardOverview struct {
	StatusCounts    map[entities.BudgetStatus]int        `json:"status_counts"`
	SpendByCategory map[entities.ServiceCategory]float64 `json:"spend_by_category"`
	SpendByTier     map[entities.SuburbTier]float64      `json:"spend_by_tier"`
	MonthlyTrend    []MonthlySpend                       `json:"monthly_trend"`
	Summary         SpendSummary                         `json:"summary"`
}

type IDashboardUseCase interface {
	Overview(ctx context.Context) (DashboardOverview, error)
}

type DashboardUseCase struct {
	budgetRepo  interfaces.IBudgetRepository
	serviceRepo interfaces.IServiceRepository
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(budgetRepo interfaces.IBudgetRepository, serviceRepo interfaces.IServiceRepository) *DashboardUseCase {
	return &DashboardUseCase{budgetRepo: budgetRepo, serviceRepo: serviceRepo}
}

func (u *DashboardUseCase) Overview(ctx context.Context) (DashboardOverview, error) {
	budgets, err := u.budgetRepo.List(ctx, interfaces.BudgetFilter{})
	if err != nil {
		return DashboardOverview{}, err
	}
	services, err := u.serviceRepo.List(ctx)
	if err != nil {
		return DashboardOverview{}, err
	}

	return DashboardOverview{
		StatusCounts:    CountBudgetsByStatus(budgets),
		SpendByCategory: TotalSpendByCategory(budgets, services),
		SpendByTier:     TotalSpendByTier(budgets),
		MonthlyTrend:    MonthlySpendTrend(budgets),
		Summary:         OverallSpendSummary(budgets),
	}, nil
}
