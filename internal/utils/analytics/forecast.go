package analytics

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/SscSPs/finance_dashboard_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DefaultForecastWindow is the number of trailing months averaged when the
// caller does not specify a window.
const DefaultForecastWindow = 3

// ForecastMethod identifies the projection technique in results.
const ForecastMethod = "moving_average"

// BuildForecast projects income, expense and savings for the calendar month
// after the latest observed month, as an unweighted moving average over the
// trailing window of monthly aggregates. Forecasting is advisory: with no
// monthly data, or a malformed latest month key, it returns ok=false rather
// than guessing.
func BuildForecast(txns []domain.Transaction, window int) (domain.ForecastPoint, bool) {
	if window <= 0 {
		window = DefaultForecastWindow
	}

	monthly := AggregateMonthly(txns)
	if len(monthly) == 0 {
		return domain.ForecastPoint{}, false
	}

	nextMonth, ok := monthAfter(monthly[len(monthly)-1].MonthKey)
	if !ok {
		return domain.ForecastPoint{}, false
	}

	start := len(monthly) - window
	if start < 0 {
		start = 0
	}
	tail := monthly[start:]

	income := decimal.Zero
	expense := decimal.Zero
	for _, m := range tail {
		income = income.Add(m.Income)
		expense = expense.Add(m.Expense)
	}
	n := decimal.NewFromInt(int64(len(tail)))
	projectedIncome := income.Div(n)
	projectedExpense := expense.Div(n)

	return domain.ForecastPoint{
		Month:            nextMonth,
		ProjectedIncome:  projectedIncome,
		ProjectedExpense: projectedExpense,
		ProjectedSavings: projectedIncome.Sub(projectedExpense),
		Method:           ForecastMethod,
	}, true
}

// monthAfter advances a YYYY-MM key by one month, rolling December into
// January of the next year.
func monthAfter(key string) (string, bool) {
	parts := strings.Split(key, "-")
	if len(parts) != 2 {
		return "", false
	}
	year, errY := strconv.Atoi(parts[0])
	month, errM := strconv.Atoi(parts[1])
	if errY != nil || errM != nil || month < 1 || month > 12 {
		return "", false
	}

	if month == 12 {
		year++
		month = 1
	} else {
		month++
	}
	return fmt.Sprintf("%04d-%02d", year, month), true
}
