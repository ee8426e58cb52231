package services

import (
	"context"

	"github.com/SscSPs/finance_dashboard_app/internal/core/domain"
	"github.com/SscSPs/finance_dashboard_app/internal/utils/analytics"
)

// AnalyticsSvcFacade computes derived views over a user's full ledger
// snapshot. Every method is read-only; results are never persisted.
type AnalyticsSvcFacade interface {
	// GetSummary returns overall income, expense and savings totals.
	GetSummary(ctx context.Context, userID string) (*domain.Summary, error)

	// GetMonthlyAggregates returns per-month rollups in chronological order.
	GetMonthlyAggregates(ctx context.Context, userID string) ([]domain.MonthlyAggregate, error)

	// GetCategorySummaries returns per-label totals sorted by label.
	GetCategorySummaries(ctx context.Context, userID string) ([]domain.CategorySummary, error)

	// GetRecurringPatterns returns detected recurring payment groups.
	GetRecurringPatterns(ctx context.Context, userID string) ([]domain.RecurringPattern, error)

	// GetAnomalies returns expense outliers graded by z-score against the
	// supplied thresholds.
	GetAnomalies(ctx context.Context, userID string, cfg analytics.AnomalyConfig) ([]domain.AnomalyResult, error)

	// GetForecast projects the next month from a moving average over the
	// trailing window. Returns nil when there is no history to project.
	GetForecast(ctx context.Context, userID string, window int) (*domain.ForecastPoint, error)

	// GetDashboard computes every derived view from a single snapshot so
	// all sections of the report agree with each other.
	GetDashboard(ctx context.Context, userID string, cfg analytics.AnomalyConfig, forecastWindow int) (*domain.DashboardReport, error)
}
