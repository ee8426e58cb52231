package analytics

import (
	"testing"

	"github.com/SscSPs/finance_dashboard_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ledgerTxn(date, desc, category string, amount int64) domain.Transaction {
	t := domain.Transaction{Date: date, Description: desc, Category: category}
	t.SetAmount(decimal.NewFromInt(amount))
	return t
}

func TestSummarize(t *testing.T) {
	txns := []domain.Transaction{
		ledgerTxn("2025-01-05", "SALARY", "SALARY", 100000),
		ledgerTxn("2025-01-10", "GROCERY", "GROCERY SHOPPING", -3500),
	}

	summary := Summarize(txns)
	assert.True(t, summary.TotalIncome.Equal(decimal.NewFromInt(100000)))
	assert.True(t, summary.TotalExpenses.Equal(decimal.NewFromInt(3500)))
	assert.True(t, summary.NetSavings.Equal(decimal.NewFromInt(96500)))
}

func TestSummarize_Empty(t *testing.T) {
	summary := Summarize(nil)
	assert.True(t, summary.TotalIncome.IsZero())
	assert.True(t, summary.TotalExpenses.IsZero())
	assert.True(t, summary.NetSavings.IsZero())
}

func TestAggregateMonthly(t *testing.T) {
	txns := []domain.Transaction{
		ledgerTxn("2025-02-15", "SALARY", "SALARY", 120000),
		ledgerTxn("2025-01-05", "SALARY", "SALARY", 100000),
		ledgerTxn("2025-01-20", "RENT", "HOUSING", -50000),
		ledgerTxn("2025-02-20", "RENT", "HOUSING", -60000),
		ledgerTxn("bad-date", "NOISE", "Other", -999), // excluded
	}

	monthly := AggregateMonthly(txns)
	require.Len(t, monthly, 2)

	assert.Equal(t, "2025-01", monthly[0].MonthKey)
	assert.True(t, monthly[0].Income.Equal(decimal.NewFromInt(100000)))
	assert.True(t, monthly[0].Expense.Equal(decimal.NewFromInt(50000)))
	assert.True(t, monthly[0].Savings.Equal(decimal.NewFromInt(50000)))

	assert.Equal(t, "2025-02", monthly[1].MonthKey)
	assert.True(t, monthly[1].Savings.Equal(decimal.NewFromInt(60000)))
}

func TestAggregateCategories_MultiLabelDoubleCounts(t *testing.T) {
	txns := []domain.Transaction{
		ledgerTxn("2025-01-05", "FOOD WORLD GROCERY", "FOOD-GROCERY SHOPPING", -1000),
	}

	categories := AggregateCategories(txns)
	require.Len(t, categories, 2)

	// The full amount lands in both facets; non-conservation is expected.
	assert.Equal(t, "FOOD", categories[0].Category)
	assert.True(t, categories[0].Expense.Equal(decimal.NewFromInt(1000)))
	assert.Equal(t, "GROCERY SHOPPING", categories[1].Category)
	assert.True(t, categories[1].Expense.Equal(decimal.NewFromInt(1000)))
}

func TestAggregateCategories_BlankCategoryFallsBackToOther(t *testing.T) {
	txns := []domain.Transaction{
		ledgerTxn("2025-01-05", "MYSTERY", "", -250),
		ledgerTxn("2025-01-06", "DEPOSIT", "Other", 400),
	}

	categories := AggregateCategories(txns)
	require.Len(t, categories, 1)
	assert.Equal(t, "Other", categories[0].Category)
	assert.True(t, categories[0].Expense.Equal(decimal.NewFromInt(250)))
	assert.True(t, categories[0].Income.Equal(decimal.NewFromInt(400)))
}
