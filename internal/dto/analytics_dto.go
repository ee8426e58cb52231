package dto

import (
	"github.com/SscSPs/finance_dashboard_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SummaryResponse reports the overall ledger totals.
type SummaryResponse struct {
	TotalIncome   decimal.Decimal `json:"totalIncome"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	NetSavings    decimal.Decimal `json:"netSavings"`
}

// MonthlyAggregateResponse is one month's income/expense/savings rollup.
type MonthlyAggregateResponse struct {
	Month   string          `json:"month" example:"2025-03"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Savings decimal.Decimal `json:"savings"`
}

// CategorySummaryResponse is one category label's totals.
type CategorySummaryResponse struct {
	Category string          `json:"category" example:"FOOD"`
	Income   decimal.Decimal `json:"income"`
	Expense  decimal.Decimal `json:"expense"`
}

// RecurringPatternResponse describes one detected recurring payment group.
type RecurringPatternResponse struct {
	Key             string  `json:"key" example:"netflix"`
	Count           int     `json:"count"`
	AvgIntervalDays float64 `json:"avgIntervalDays"`
	LastDate        string  `json:"lastDate" example:"2025-03-01"`
}

// AnomalyResponse flags one expense that is an outlier within its category.
type AnomalyResponse struct {
	TransactionID *int64          `json:"transactionId,omitempty"`
	Date          string          `json:"date" example:"2025-03-01"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	Category      string          `json:"category"`
	ZScore        float64         `json:"zScore"`
	Severity      string          `json:"severity" example:"severe"`
}

// ForecastResponse projects the month after the latest observed month.
type ForecastResponse struct {
	Month            string          `json:"month" example:"2025-04"`
	ProjectedIncome  decimal.Decimal `json:"projectedIncome"`
	ProjectedExpense decimal.Decimal `json:"projectedExpense"`
	ProjectedSavings decimal.Decimal `json:"projectedSavings"`
	Method           string          `json:"method" example:"moving_average"`
}

// DashboardResponse bundles every derived view for one ledger snapshot.
type DashboardResponse struct {
	Summary      SummaryResponse            `json:"summary"`
	Monthly      []MonthlyAggregateResponse `json:"monthly"`
	Categories   []CategorySummaryResponse  `json:"categories"`
	Recurring    []RecurringPatternResponse `json:"recurring"`
	Transactions []TransactionResponse      `json:"transactions"`
	Anomalies    []AnomalyResponse          `json:"anomalies"`
	Forecast     *ForecastResponse          `json:"forecast,omitempty"`
}

// ToSummaryResponse converts domain totals to their API shape.
func ToSummaryResponse(s domain.Summary) SummaryResponse {
	return SummaryResponse{
		TotalIncome:   s.TotalIncome,
		TotalExpenses: s.TotalExpenses,
		NetSavings:    s.NetSavings,
	}
}

// ToMonthlyAggregateResponses converts the monthly rollup slice.
func ToMonthlyAggregateResponses(aggs []domain.MonthlyAggregate) []MonthlyAggregateResponse {
	resps := make([]MonthlyAggregateResponse, len(aggs))
	for i, a := range aggs {
		resps[i] = MonthlyAggregateResponse{
			Month:   a.MonthKey,
			Income:  a.Income,
			Expense: a.Expense,
			Savings: a.Savings,
		}
	}
	return resps
}

// ToCategorySummaryResponses converts the per-category totals slice.
func ToCategorySummaryResponses(sums []domain.CategorySummary) []CategorySummaryResponse {
	resps := make([]CategorySummaryResponse, len(sums))
	for i, s := range sums {
		resps[i] = CategorySummaryResponse{
			Category: s.Category,
			Income:   s.Income,
			Expense:  s.Expense,
		}
	}
	return resps
}

// ToRecurringPatternResponses converts the detected recurring groups.
func ToRecurringPatternResponses(pats []domain.RecurringPattern) []RecurringPatternResponse {
	resps := make([]RecurringPatternResponse, len(pats))
	for i, p := range pats {
		resps[i] = RecurringPatternResponse{
			Key:             p.Key,
			Count:           p.Count,
			AvgIntervalDays: p.AvgIntervalDays,
			LastDate:        p.LastDate,
		}
	}
	return resps
}

// ToAnomalyResponses converts the flagged outliers.
func ToAnomalyResponses(anoms []domain.AnomalyResult) []AnomalyResponse {
	resps := make([]AnomalyResponse, len(anoms))
	for i, a := range anoms {
		resps[i] = AnomalyResponse{
			TransactionID: a.TransactionID,
			Date:          a.Date,
			Description:   a.Description,
			Amount:        a.Amount,
			Category:      a.Category,
			ZScore:        a.ZScore,
			Severity:      string(a.Severity),
		}
	}
	return resps
}

// ToForecastResponse converts a forecast point; nil stays nil when there was
// not enough history to project.
func ToForecastResponse(f *domain.ForecastPoint) *ForecastResponse {
	if f == nil {
		return nil
	}
	return &ForecastResponse{
		Month:            f.Month,
		ProjectedIncome:  f.ProjectedIncome,
		ProjectedExpense: f.ProjectedExpense,
		ProjectedSavings: f.ProjectedSavings,
		Method:           f.Method,
	}
}

// ToDashboardResponse converts the full dashboard report.
func ToDashboardResponse(r domain.DashboardReport) DashboardResponse {
	return DashboardResponse{
		Summary:      ToSummaryResponse(r.Summary),
		Monthly:      ToMonthlyAggregateResponses(r.Monthly),
		Categories:   ToCategorySummaryResponses(r.Categories),
		Recurring:    ToRecurringPatternResponses(r.Recurring),
		Transactions: ToTransactionResponses(r.Transactions),
		Anomalies:    ToAnomalyResponses(r.Anomalies),
		Forecast:     ToForecastResponse(r.Forecast),
	}
}
