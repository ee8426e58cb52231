package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/finance_dashboard_app/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_dashboard_app/internal/core/ports/repositories"
	"github.com/SscSPs/finance_dashboard_app/internal/utils/analytics"
)

type analyticsService struct {
	BaseService
	repo portsrepo.TransactionRepository
}

// NewAnalyticsService creates an analytics service backed by the given
// repository.
func NewAnalyticsService(repo portsrepo.TransactionRepository) *analyticsService {
	return &analyticsService{repo: repo}
}

func (s *analyticsService) snapshot(ctx context.Context, userID string) ([]domain.Transaction, error) {
	txns, err := s.repo.ListAllTransactions(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load ledger snapshot", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	return txns, nil
}

func (s *analyticsService) GetSummary(ctx context.Context, userID string) (*domain.Summary, error) {
	txns, err := s.snapshot(ctx, userID)
	if err != nil {
		return nil, err
	}
	summary := analytics.Summarize(txns)
	return &summary, nil
}

func (s *analyticsService) GetMonthlyAggregates(ctx context.Context, userID string) ([]domain.MonthlyAggregate, error) {
	txns, err := s.snapshot(ctx, userID)
	if err != nil {
		return nil, err
	}
	return analytics.AggregateMonthly(txns), nil
}

func (s *analyticsService) GetCategorySummaries(ctx context.Context, userID string) ([]domain.CategorySummary, error) {
	txns, err := s.snapshot(ctx, userID)
	if err != nil {
		return nil, err
	}
	return analytics.AggregateCategories(txns), nil
}

func (s *analyticsService) GetRecurringPatterns(ctx context.Context, userID string) ([]domain.RecurringPattern, error) {
	txns, err := s.snapshot(ctx, userID)
	if err != nil {
		return nil, err
	}
	_, patterns := analytics.DetectRecurring(txns)
	return patterns, nil
}

func (s *analyticsService) GetAnomalies(ctx context.Context, userID string, cfg analytics.AnomalyConfig) ([]domain.AnomalyResult, error) {
	txns, err := s.snapshot(ctx, userID)
	if err != nil {
		return nil, err
	}
	return analytics.DetectAnomalies(txns, cfg), nil
}

func (s *analyticsService) GetForecast(ctx context.Context, userID string, window int) (*domain.ForecastPoint, error) {
	txns, err := s.snapshot(ctx, userID)
	if err != nil {
		return nil, err
	}
	point, ok := analytics.BuildForecast(txns, window)
	if !ok {
		return nil, nil
	}
	return &point, nil
}

// GetDashboard computes every derived view from one snapshot so all sections
// of the report describe the same ledger state.
func (s *analyticsService) GetDashboard(ctx context.Context, userID string, cfg analytics.AnomalyConfig, forecastWindow int) (*domain.DashboardReport, error) {
	txns, err := s.snapshot(ctx, userID)
	if err != nil {
		return nil, err
	}

	annotated, patterns := analytics.DetectRecurring(txns)
	report := &domain.DashboardReport{
		Summary:      analytics.Summarize(annotated),
		Monthly:      analytics.AggregateMonthly(annotated),
		Categories:   analytics.AggregateCategories(annotated),
		Recurring:    patterns,
		Transactions: annotated,
		Anomalies:    analytics.DetectAnomalies(annotated, cfg),
	}
	if point, ok := analytics.BuildForecast(annotated, forecastWindow); ok {
		report.Forecast = &point
	}

	s.LogDebug(ctx, "Dashboard computed",
		slog.String("user_id", userID),
		slog.Int("transactions", len(annotated)),
		slog.Int("recurring_patterns", len(patterns)),
		slog.Int("anomalies", len(report.Anomalies)))
	return report, nil
}
