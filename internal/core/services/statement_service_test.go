package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/finance_dashboard_app/internal/apperrors"
	"github.com/SscSPs/finance_dashboard_app/internal/core/domain"
	portssvc "github.com/SscSPs/finance_dashboard_app/internal/core/ports/services"
	"github.com/SscSPs/finance_dashboard_app/internal/core/services"
	"github.com/SscSPs/finance_dashboard_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

func statementRows() [][]string {
	return [][]string{
		{"Account Statement"},
		{"Generated on 2025-04-01"},
		{},
		{"Date", "Narration", "Withdrawal Amt.", "Deposit Amt."},
		{"01/03/2025", "ATM WDL", "5000", ""},
		{"02/03/2025", "SALARY MARCH", "", "100000"},
	}
}

// --- Test Suite ---
type StatementServiceTestSuite struct {
	suite.Suite
	mockRepo *MockTransactionRepository
	service  portssvc.StatementSvcFacade
}

func (suite *StatementServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockTransactionRepository)
	suite.service = services.NewStatementService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *StatementServiceTestSuite) TestProcessStatement_Success() {
	ctx := context.Background()

	suite.mockRepo.On("ListAllTransactions", ctx, "user-1").Return([]domain.Transaction{}, nil).Once()

	staged, err := suite.service.ProcessStatement(ctx, "user-1", statementRows())

	suite.Require().NoError(err)
	suite.Require().NotNil(staged)
	suite.NotEmpty(staged.StatementID)
	suite.Equal(2, staged.ParsedCount)
	suite.Equal(0, staged.DuplicateCount)
	suite.Require().Len(staged.Transactions, 2)
	suite.Equal("user-1", staged.Transactions[0].UserID)
	suite.Equal("2025-03-01", staged.Transactions[0].Date)
	suite.Equal(domain.Debit, staged.Transactions[0].Type)
	suite.Equal("CASH WITHDRAWAL", staged.Transactions[0].Category)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveTransactions")
}

func (suite *StatementServiceTestSuite) TestProcessStatement_MarksExistingDuplicates() {
	ctx := context.Background()
	existing := domain.Transaction{
		UserID:      "user-1",
		Date:        "2025-03-01",
		Description: "ATM WDL",
	}
	existing.SetAmount(decimal.NewFromInt(-5000))

	suite.mockRepo.On("ListAllTransactions", ctx, "user-1").Return([]domain.Transaction{existing}, nil).Once()

	staged, err := suite.service.ProcessStatement(ctx, "user-1", statementRows())

	suite.Require().NoError(err)
	suite.Equal(2, staged.ParsedCount)
	suite.Equal(1, staged.DuplicateCount)
	suite.Require().Len(staged.Transactions, 1)
	suite.Equal("SALARY MARCH", staged.Transactions[0].Description)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *StatementServiceTestSuite) TestProcessStatement_HeaderMissing() {
	ctx := context.Background()
	rows := [][]string{
		{"just", "some", "cells"},
		{"nothing", "that", "looks", "like", "a", "header"},
	}

	staged, err := suite.service.ProcessStatement(ctx, "user-1", rows)

	suite.Require().Error(err)
	suite.Nil(staged)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "ListAllTransactions")
}

func (suite *StatementServiceTestSuite) TestCommitStatement_SavesFreshRows() {
	ctx := context.Background()
	req := dto.CommitStatementRequest{
		Transactions: []dto.StagedTransactionRequest{
			{Date: "2025-03-01", Description: "ATM WDL", Amount: decimal.NewFromInt(-5000)},
			{Date: "2025-03-02", Description: "SALARY MARCH", Amount: decimal.NewFromInt(100000)},
		},
	}

	suite.mockRepo.On("ListAllTransactions", ctx, "user-1").Return([]domain.Transaction{}, nil).Once()
	suite.mockRepo.On("SaveTransactions", ctx, mock.MatchedBy(func(txns []domain.Transaction) bool {
		return len(txns) == 2 && txns[0].UserID == "user-1" && txns[0].Category == "CASH WITHDRAWAL"
	})).Return(echoSaved([]domain.Transaction{
		{UserID: "user-1", Date: "2025-03-01", Description: "ATM WDL"},
		{UserID: "user-1", Date: "2025-03-02", Description: "SALARY MARCH"},
	}), nil).Once()

	result, err := suite.service.CommitStatement(ctx, "user-1", req)

	suite.Require().NoError(err)
	suite.Require().NotNil(result)
	suite.Len(result.Saved, 2)
	suite.Equal(0, result.DuplicateCount)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *StatementServiceTestSuite) TestCommitStatement_DoubleSubmitSavesNothing() {
	ctx := context.Background()
	already := domain.Transaction{
		UserID:      "user-1",
		Date:        "2025-03-01",
		Description: "ATM WDL",
	}
	already.SetAmount(decimal.NewFromInt(-5000))

	req := dto.CommitStatementRequest{
		Transactions: []dto.StagedTransactionRequest{
			{Date: "2025-03-01", Description: "ATM WDL", Amount: decimal.NewFromInt(-5000)},
		},
	}

	suite.mockRepo.On("ListAllTransactions", ctx, "user-1").Return([]domain.Transaction{already}, nil).Once()

	result, err := suite.service.CommitStatement(ctx, "user-1", req)

	suite.Require().NoError(err)
	suite.Empty(result.Saved)
	suite.Equal(1, result.DuplicateCount)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveTransactions")
}

func (suite *StatementServiceTestSuite) TestCommitStatement_BadDateRejectsWholeBatch() {
	ctx := context.Background()
	req := dto.CommitStatementRequest{
		Transactions: []dto.StagedTransactionRequest{
			{Date: "2025-03-01", Description: "OK", Amount: decimal.NewFromInt(-100)},
			{Date: "never", Description: "BAD", Amount: decimal.NewFromInt(-100)},
		},
	}

	result, err := suite.service.CommitStatement(ctx, "user-1", req)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveTransactions")
}

func TestStatementServiceTestSuite(t *testing.T) {
	suite.Run(t, new(StatementServiceTestSuite))
}
