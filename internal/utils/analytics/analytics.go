// Package analytics computes the derived views of a transaction ledger:
// summary totals, monthly rollups, category breakdowns, recurrence and
// anomaly detection, and a short-horizon forecast.
//
// Every function is a pure computation over the snapshot it is given.
// Nothing is cached and nothing is mutated in place; repeated calls over the
// same snapshot are deterministic.
package analytics

import (
	"sort"

	"github.com/SscSPs/finance_dashboard_app/internal/core/domain"
	"github.com/SscSPs/finance_dashboard_app/internal/utils/categorize"
	"github.com/SscSPs/finance_dashboard_app/internal/utils/dates"
	"github.com/shopspring/decimal"
)

// Summarize totals income, expenses and net savings over the ledger.
// Expenses are reported as a positive magnitude.
func Summarize(txns []domain.Transaction) domain.Summary {
	summary := domain.Summary{
		TotalIncome:   decimal.Zero,
		TotalExpenses: decimal.Zero,
	}
	for i := range txns {
		if txns[i].IsExpense() {
			summary.TotalExpenses = summary.TotalExpenses.Add(txns[i].Amount.Abs())
		} else {
			summary.TotalIncome = summary.TotalIncome.Add(txns[i].Amount)
		}
	}
	summary.NetSavings = summary.TotalIncome.Sub(summary.TotalExpenses)
	return summary
}

// AggregateMonthly groups transactions by the YYYY-MM prefix of their
// canonical date and sums income and expense per month. Rows whose date is
// not canonical are excluded. Keys sort ascending lexicographically, which
// is chronological because the format is fixed-width and zero-padded.
func AggregateMonthly(txns []domain.Transaction) []domain.MonthlyAggregate {
	byMonth := make(map[string]*domain.MonthlyAggregate)
	for i := range txns {
		if !dates.IsCanonical(txns[i].Date) {
			continue
		}
		key := txns[i].Date[:7]
		agg, ok := byMonth[key]
		if !ok {
			agg = &domain.MonthlyAggregate{
				MonthKey: key,
				Income:   decimal.Zero,
				Expense:  decimal.Zero,
			}
			byMonth[key] = agg
		}
		if txns[i].IsExpense() {
			agg.Expense = agg.Expense.Add(txns[i].Amount.Abs())
		} else {
			agg.Income = agg.Income.Add(txns[i].Amount)
		}
	}

	keys := make([]string, 0, len(byMonth))
	for key := range byMonth {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	result := make([]domain.MonthlyAggregate, 0, len(keys))
	for _, key := range keys {
		agg := byMonth[key]
		agg.Savings = agg.Income.Sub(agg.Expense)
		result = append(result, *agg)
	}
	return result
}

// AggregateCategories accumulates income and expense per category label
// after splitting multi-label categories. A transaction with two labels
// contributes its full amount to both: totals across categories are facet
// views and intentionally exceed the ledger total.
func AggregateCategories(txns []domain.Transaction) []domain.CategorySummary {
	byLabel := make(map[string]*domain.CategorySummary)
	for i := range txns {
		for _, label := range categorize.SplitLabels(txns[i].Category) {
			summary, ok := byLabel[label]
			if !ok {
				summary = &domain.CategorySummary{
					Category: label,
					Income:   decimal.Zero,
					Expense:  decimal.Zero,
				}
				byLabel[label] = summary
			}
			if txns[i].IsExpense() {
				summary.Expense = summary.Expense.Add(txns[i].Amount.Abs())
			} else {
				summary.Income = summary.Income.Add(txns[i].Amount)
			}
		}
	}

	labels := make([]string, 0, len(byLabel))
	for label := range byLabel {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	result := make([]domain.CategorySummary, 0, len(labels))
	for _, label := range labels {
		result = append(result, *byLabel[label])
	}
	return result
}
