package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/finance_dashboard_app/internal/apperrors"
	"github.com/SscSPs/finance_dashboard_app/internal/core/domain"
	portssvc "github.com/SscSPs/finance_dashboard_app/internal/core/ports/services"
	"github.com/SscSPs/finance_dashboard_app/internal/dto"
	"github.com/SscSPs/finance_dashboard_app/internal/handlers"
	"github.com/SscSPs/finance_dashboard_app/internal/platform/config"
	"github.com/SscSPs/finance_dashboard_app/internal/utils/analytics"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock StatementService ---
type MockStatementService struct {
	mock.Mock
}

func (m *MockStatementService) ProcessStatement(ctx context.Context, userID string, rows [][]string) (*domain.StagedStatement, error) {
	args := m.Called(ctx, userID, rows)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StagedStatement), args.Error(1)
}

func (m *MockStatementService) CommitStatement(ctx context.Context, userID string, req dto.CommitStatementRequest) (*domain.CommitResult, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CommitResult), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.StatementSvcFacade = (*MockStatementService)(nil)

// --- Mock TransactionService ---
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) GetTransactionByID(ctx context.Context, userID string, id int64) (*domain.Transaction, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) ListTransactions(ctx context.Context, userID string, limit int, nextToken string) ([]domain.Transaction, string, error) {
	args := m.Called(ctx, userID, limit, nextToken)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]domain.Transaction), args.String(1), args.Error(2)
}

func (m *MockTransactionService) UpdateTransaction(ctx context.Context, userID string, id int64, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, userID, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) DeleteTransaction(ctx context.Context, userID string, id int64) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.TransactionSvcFacade = (*MockTransactionService)(nil)

// --- Mock AnalyticsService ---
type MockAnalyticsService struct {
	mock.Mock
}

func (m *MockAnalyticsService) GetSummary(ctx context.Context, userID string) (*domain.Summary, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Summary), args.Error(1)
}

func (m *MockAnalyticsService) GetMonthlyAggregates(ctx context.Context, userID string) ([]domain.MonthlyAggregate, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MonthlyAggregate), args.Error(1)
}

func (m *MockAnalyticsService) GetCategorySummaries(ctx context.Context, userID string) ([]domain.CategorySummary, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CategorySummary), args.Error(1)
}

func (m *MockAnalyticsService) GetRecurringPatterns(ctx context.Context, userID string) ([]domain.RecurringPattern, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RecurringPattern), args.Error(1)
}

func (m *MockAnalyticsService) GetAnomalies(ctx context.Context, userID string, cfg analytics.AnomalyConfig) ([]domain.AnomalyResult, error) {
	args := m.Called(ctx, userID, cfg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AnomalyResult), args.Error(1)
}

func (m *MockAnalyticsService) GetForecast(ctx context.Context, userID string, window int) (*domain.ForecastPoint, error) {
	args := m.Called(ctx, userID, window)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ForecastPoint), args.Error(1)
}

func (m *MockAnalyticsService) GetDashboard(ctx context.Context, userID string, cfg analytics.AnomalyConfig, forecastWindow int) (*domain.DashboardReport, error) {
	args := m.Called(ctx, userID, cfg, forecastWindow)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardReport), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.AnalyticsSvcFacade = (*MockAnalyticsService)(nil)

// --- Test Suite ---
type StatementHandlerTestSuite struct {
	suite.Suite
	router               *gin.Engine
	mockStatementService *MockStatementService
	jwtSecret            string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *StatementHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "fda-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedString, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signedString
}

func (suite *StatementHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.mockStatementService = new(MockStatementService)

	cfg := &config.Config{
		JWTSecret:         suite.jwtSecret,
		IsProduction:      true, // skip swagger wiring in tests
		AnomalyModerateZ:  2.0,
		AnomalySevereZ:    3.0,
		AnomalyMinSamples: 5,
		ForecastWindow:    3,
		UploadRateLimit:   "100-S",
	}

	container := &portssvc.ServiceContainer{
		Transaction: new(MockTransactionService),
		Statement:   suite.mockStatementService,
		Analytics:   new(MockAnalyticsService),
	}
	handlers.RegisterRoutes(suite.router, cfg, container)
}

func (suite *StatementHandlerTestSuite) doJSON(method, path, token string, body any) *httptest.ResponseRecorder {
	payload, err := json.Marshal(body)
	suite.Require().NoError(err)

	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *StatementHandlerTestSuite) TestProcessStatement_Success() {
	userID := "user-1"
	rows := [][]string{
		{"Date", "Narration", "Withdrawal Amt.", "Deposit Amt."},
		{"01/03/2025", "ATM WDL", "5000", ""},
	}

	staged := domain.Transaction{UserID: userID, Date: "2025-03-01", Description: "ATM WDL", Category: "CASH WITHDRAWAL"}
	staged.SetAmount(decimal.NewFromInt(-5000))

	suite.mockStatementService.On("ProcessStatement", mock.Anything, userID, rows).Return(&domain.StagedStatement{
		StatementID:    "stmt-1",
		Transactions:   []domain.Transaction{staged},
		ParsedCount:    1,
		DuplicateCount: 0,
	}, nil).Once()

	w := suite.doJSON(http.MethodPost, "/api/v1/statements", suite.generateTestToken(userID), dto.ProcessStatementRequest{Rows: rows})

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.StagedStatementResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("stmt-1", resp.StatementID)
	suite.Require().Len(resp.Transactions, 1)
	suite.Equal("2025-03-01", resp.Transactions[0].Date)
	suite.Equal("03/01/2025", resp.Transactions[0].DisplayDate)
	suite.Equal("debit", resp.Transactions[0].Type)
	suite.mockStatementService.AssertExpectations(suite.T())
}

func (suite *StatementHandlerTestSuite) TestProcessStatement_Unauthorized() {
	w := suite.doJSON(http.MethodPost, "/api/v1/statements", "", dto.ProcessStatementRequest{Rows: [][]string{{"x"}}})
	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockStatementService.AssertNotCalled(suite.T(), "ProcessStatement")
}

func (suite *StatementHandlerTestSuite) TestProcessStatement_UnparseableStatement() {
	userID := "user-1"
	rows := [][]string{{"garbage"}}

	suite.mockStatementService.On("ProcessStatement", mock.Anything, userID, rows).
		Return(nil, apperrors.ErrValidation).Once()

	w := suite.doJSON(http.MethodPost, "/api/v1/statements", suite.generateTestToken(userID), dto.ProcessStatementRequest{Rows: rows})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockStatementService.AssertExpectations(suite.T())
}

func (suite *StatementHandlerTestSuite) TestUploadStatement_CSV() {
	userID := "user-1"
	csvBody := "Date,Narration,Withdrawal Amt.,Deposit Amt.\n01/03/2025,ATM WDL,5000,\n"

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "statement.csv")
	suite.Require().NoError(err)
	_, err = part.Write([]byte(csvBody))
	suite.Require().NoError(err)
	suite.Require().NoError(mw.Close())

	suite.mockStatementService.On("ProcessStatement", mock.Anything, userID, mock.MatchedBy(func(rows [][]string) bool {
		return len(rows) == 2 && rows[1][1] == "ATM WDL"
	})).Return(&domain.StagedStatement{StatementID: "stmt-2", Transactions: []domain.Transaction{}}, nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/statements/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockStatementService.AssertExpectations(suite.T())
}

func (suite *StatementHandlerTestSuite) TestCommitStatement_Success() {
	userID := "user-1"
	req := dto.CommitStatementRequest{
		Transactions: []dto.StagedTransactionRequest{
			{Date: "2025-03-01", Description: "ATM WDL", Amount: decimal.NewFromInt(-5000)},
		},
	}

	id := int64(1)
	saved := domain.Transaction{ID: &id, UserID: userID, Date: "2025-03-01", Description: "ATM WDL", Category: "CASH WITHDRAWAL"}
	saved.SetAmount(decimal.NewFromInt(-5000))

	suite.mockStatementService.On("CommitStatement", mock.Anything, userID, req).
		Return(&domain.CommitResult{Saved: []domain.Transaction{saved}, DuplicateCount: 0}, nil).Once()

	w := suite.doJSON(http.MethodPost, "/api/v1/statements/commit", suite.generateTestToken(userID), req)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.CommitStatementResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(1, resp.SavedCount)
	suite.Equal(0, resp.DuplicateCount)
	suite.mockStatementService.AssertExpectations(suite.T())
}

func TestStatementHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(StatementHandlerTestSuite))
}
