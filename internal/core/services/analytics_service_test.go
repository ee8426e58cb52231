package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/finance_dashboard_app/internal/core/domain"
	portssvc "github.com/SscSPs/finance_dashboard_app/internal/core/ports/services"
	"github.com/SscSPs/finance_dashboard_app/internal/core/services"
	"github.com/SscSPs/finance_dashboard_app/internal/utils/analytics"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func monthOfPayroll(date string) domain.Transaction {
	t := domain.Transaction{UserID: "user-1", Date: date, Description: "PAYROLL ACME", Category: "SALARY"}
	t.SetAmount(decimal.NewFromInt(100000))
	return t
}

func monthOfRent(date string) domain.Transaction {
	t := domain.Transaction{UserID: "user-1", Date: date, Description: "RENT TRANSFER", Category: "HOUSING"}
	t.SetAmount(decimal.NewFromInt(-30000))
	return t
}

func sampleLedger() []domain.Transaction {
	return []domain.Transaction{
		monthOfPayroll("2025-01-01"),
		monthOfRent("2025-01-05"),
		monthOfPayroll("2025-02-01"),
		monthOfRent("2025-02-05"),
		monthOfPayroll("2025-03-01"),
		monthOfRent("2025-03-05"),
	}
}

// --- Test Suite ---
type AnalyticsServiceTestSuite struct {
	suite.Suite
	mockRepo *MockTransactionRepository
	service  portssvc.AnalyticsSvcFacade
}

func (suite *AnalyticsServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockTransactionRepository)
	suite.service = services.NewAnalyticsService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *AnalyticsServiceTestSuite) TestGetSummary() {
	ctx := context.Background()
	suite.mockRepo.On("ListAllTransactions", ctx, "user-1").Return(sampleLedger(), nil).Once()

	summary, err := suite.service.GetSummary(ctx, "user-1")

	suite.Require().NoError(err)
	suite.Require().NotNil(summary)
	suite.True(summary.TotalIncome.Equal(decimal.NewFromInt(300000)))
	suite.True(summary.TotalExpenses.Equal(decimal.NewFromInt(90000)))
	suite.True(summary.NetSavings.Equal(decimal.NewFromInt(210000)))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AnalyticsServiceTestSuite) TestGetSummary_RepoError() {
	ctx := context.Background()
	suite.mockRepo.On("ListAllTransactions", ctx, "user-1").Return(nil, context.DeadlineExceeded).Once()

	summary, err := suite.service.GetSummary(ctx, "user-1")

	suite.Require().Error(err)
	suite.Nil(summary)
	suite.ErrorIs(err, context.DeadlineExceeded)
}

func (suite *AnalyticsServiceTestSuite) TestGetMonthlyAggregates_Chronological() {
	ctx := context.Background()
	suite.mockRepo.On("ListAllTransactions", ctx, "user-1").Return(sampleLedger(), nil).Once()

	monthly, err := suite.service.GetMonthlyAggregates(ctx, "user-1")

	suite.Require().NoError(err)
	suite.Require().Len(monthly, 3)
	suite.Equal("2025-01", monthly[0].MonthKey)
	suite.Equal("2025-03", monthly[2].MonthKey)
	suite.True(monthly[0].Savings.Equal(decimal.NewFromInt(70000)))
}

func (suite *AnalyticsServiceTestSuite) TestGetRecurringPatterns() {
	ctx := context.Background()
	suite.mockRepo.On("ListAllTransactions", ctx, "user-1").Return(sampleLedger(), nil).Once()

	patterns, err := suite.service.GetRecurringPatterns(ctx, "user-1")

	suite.Require().NoError(err)
	suite.Require().Len(patterns, 2)
	suite.Equal("payroll acme", patterns[0].Key)
	suite.Equal("rent transfer", patterns[1].Key)
}

func (suite *AnalyticsServiceTestSuite) TestGetForecast_NoHistory() {
	ctx := context.Background()
	suite.mockRepo.On("ListAllTransactions", ctx, "user-1").Return([]domain.Transaction{}, nil).Once()

	point, err := suite.service.GetForecast(ctx, "user-1", 3)

	suite.Require().NoError(err)
	suite.Nil(point)
}

func (suite *AnalyticsServiceTestSuite) TestGetForecast_ProjectsNextMonth() {
	ctx := context.Background()
	suite.mockRepo.On("ListAllTransactions", ctx, "user-1").Return(sampleLedger(), nil).Once()

	point, err := suite.service.GetForecast(ctx, "user-1", 3)

	suite.Require().NoError(err)
	suite.Require().NotNil(point)
	suite.Equal("2025-04", point.Month)
	suite.True(point.ProjectedIncome.Equal(decimal.NewFromInt(100000)))
	suite.True(point.ProjectedExpense.Equal(decimal.NewFromInt(30000)))
}

func (suite *AnalyticsServiceTestSuite) TestGetDashboard_SectionsAgree() {
	ctx := context.Background()
	suite.mockRepo.On("ListAllTransactions", ctx, "user-1").Return(sampleLedger(), nil).Once()

	report, err := suite.service.GetDashboard(ctx, "user-1", analytics.DefaultAnomalyConfig(), analytics.DefaultForecastWindow)

	suite.Require().NoError(err)
	suite.Require().NotNil(report)
	suite.Len(report.Transactions, 6)
	suite.Len(report.Monthly, 3)
	suite.Len(report.Recurring, 2)
	suite.Require().NotNil(report.Forecast)
	suite.Equal("2025-04", report.Forecast.Month)

	// The transactions section carries the recurring annotations the
	// patterns section was computed from.
	for _, txn := range report.Transactions {
		suite.True(txn.Recurring, "every ledger row here belongs to a recurring group")
	}
}

func (suite *AnalyticsServiceTestSuite) TestGetDashboard_SingleSnapshotRead() {
	ctx := context.Background()
	suite.mockRepo.On("ListAllTransactions", ctx, "user-1").Return(sampleLedger(), nil).Once()

	_, err := suite.service.GetDashboard(ctx, "user-1", analytics.DefaultAnomalyConfig(), analytics.DefaultForecastWindow)

	suite.Require().NoError(err)
	suite.mockRepo.AssertNumberOfCalls(suite.T(), "ListAllTransactions", 1)
}

func TestAnalyticsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AnalyticsServiceTestSuite))
}
