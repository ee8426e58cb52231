package domain

import (
	"github.com/shopspring/decimal"
)

// Summary holds the overall income/expense totals for a ledger snapshot.
// TotalExpenses is an absolute value; NetSavings = TotalIncome - TotalExpenses.
type Summary struct {
	TotalIncome   decimal.Decimal `json:"totalIncome"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	NetSavings    decimal.Decimal `json:"netSavings"`
}

// MonthlyAggregate is the per-month rollup of a ledger. MonthKey is the
// fixed-width YYYY-MM prefix of the canonical date, so lexicographic order
// is chronological order.
type MonthlyAggregate struct {
	MonthKey string          `json:"month"`
	Income   decimal.Decimal `json:"income"`
	Expense  decimal.Decimal `json:"expense"`
	Savings  decimal.Decimal `json:"savings"`
}

// CategorySummary accumulates income and expense per category label. A
// multi-label transaction contributes its full amount to every one of its
// labels, so category totals intentionally do not sum to the ledger total.
type CategorySummary struct {
	Category string          `json:"category"`
	Income   decimal.Decimal `json:"income"`
	Expense  decimal.Decimal `json:"expense"`
}

// RecurringPattern describes a group of transactions with a shared
// normalized description and regular spacing, e.g. rent or payroll.
type RecurringPattern struct {
	Key             string  `json:"key"`
	Count           int     `json:"count"`
	AvgIntervalDays float64 `json:"avgIntervalDays"`
	LastDate        string  `json:"lastDate"`
}

// AnomalySeverity grades how far an expense sits from its category mean.
type AnomalySeverity string

const (
	SeverityModerate AnomalySeverity = "moderate"
	SeveritySevere   AnomalySeverity = "severe"
)

// AnomalyResult flags one expense transaction whose absolute amount is an
// outlier within its category.
type AnomalyResult struct {
	TransactionID *int64          `json:"transactionId,omitempty"`
	Date          string          `json:"date"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	Category      string          `json:"category"`
	ZScore        float64         `json:"zScore"`
	Severity      AnomalySeverity `json:"severity"`
}

// ForecastPoint projects income, expense and savings for the month after the
// latest observed month. Method names the projection technique so the
// dashboard can label it as advisory.
type ForecastPoint struct {
	Month            string          `json:"month"`
	ProjectedIncome  decimal.Decimal `json:"projectedIncome"`
	ProjectedExpense decimal.Decimal `json:"projectedExpense"`
	ProjectedSavings decimal.Decimal `json:"projectedSavings"`
	Method           string          `json:"method"`
}

// DashboardReport bundles every derived view computed from one ledger
// snapshot. All fields are pure functions of the snapshot; nothing here is
// persisted.
type DashboardReport struct {
	Summary      Summary            `json:"summary"`
	Monthly      []MonthlyAggregate `json:"monthly"`
	Categories   []CategorySummary  `json:"categories"`
	Recurring    []RecurringPattern `json:"recurring"`
	Transactions []Transaction      `json:"transactions"` // annotated with Recurring flags
	Anomalies    []AnomalyResult    `json:"anomalies"`
	Forecast     *ForecastPoint     `json:"forecast,omitempty"`
}
