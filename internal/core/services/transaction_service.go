package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/finance_dashboard_app/internal/apperrors"
	"github.com/SscSPs/finance_dashboard_app/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_dashboard_app/internal/core/ports/repositories"
	"github.com/SscSPs/finance_dashboard_app/internal/dto"
	"github.com/SscSPs/finance_dashboard_app/internal/utils/categorize"
	"github.com/SscSPs/finance_dashboard_app/internal/utils/dates"
)

const defaultListLimit = 50
const maxListLimit = 500

type transactionService struct {
	BaseService
	repo  portsrepo.TransactionRepository
	table categorize.Table
}

// TransactionServiceOption configures the transaction service.
type TransactionServiceOption func(*transactionService)

// WithCategoryTable overrides the keyword table used to categorize
// descriptions.
func WithCategoryTable(table categorize.Table) TransactionServiceOption {
	return func(s *transactionService) {
		s.table = table
	}
}

// NewTransactionService creates a transaction service backed by the given
// repository.
func NewTransactionService(repo portsrepo.TransactionRepository, opts ...TransactionServiceOption) *transactionService {
	s := &transactionService{
		repo:  repo,
		table: categorize.DefaultTable(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *transactionService) CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	parsed, ok := dates.ParseDate(req.Date)
	if !ok {
		return nil, fmt.Errorf("%w: unrecognized date %q", apperrors.ErrValidation, req.Date)
	}

	txn := domain.Transaction{
		UserID:      userID,
		Date:        dates.FormatDate(parsed),
		Description: req.Description,
		Category:    categorize.Categorize(req.Description, s.table),
	}
	txn.SetAmount(req.Amount)

	saved, err := s.repo.SaveTransactions(ctx, []domain.Transaction{txn})
	if err != nil {
		s.LogError(ctx, err, "Failed to save transaction", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction created", slog.String("user_id", userID), slog.String("date", saved[0].Date))
	return &saved[0], nil
}

func (s *transactionService) GetTransactionByID(ctx context.Context, userID string, id int64) (*domain.Transaction, error) {
	txn, err := s.repo.FindTransactionByID(ctx, userID, id)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find transaction", slog.Int64("transaction_id", id))
		}
		return nil, err
	}
	return txn, nil
}

func (s *transactionService) ListTransactions(ctx context.Context, userID string, limit int, nextToken string) ([]domain.Transaction, string, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	txns, token, err := s.repo.ListTransactions(ctx, userID, limit, nextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions", slog.String("user_id", userID))
		return nil, "", fmt.Errorf("failed to list transactions: %w", err)
	}
	if txns == nil {
		txns = []domain.Transaction{}
	}
	return txns, token, nil
}

func (s *transactionService) UpdateTransaction(ctx context.Context, userID string, id int64, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	existing, err := s.repo.FindTransactionByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	parsed, ok := dates.ParseDate(req.Date)
	if !ok {
		return nil, fmt.Errorf("%w: unrecognized date %q", apperrors.ErrValidation, req.Date)
	}

	existing.Date = dates.FormatDate(parsed)
	existing.Description = req.Description
	existing.Category = categorize.Categorize(req.Description, s.table)
	existing.SetAmount(req.Amount)

	if err := s.repo.UpdateTransaction(ctx, *existing); err != nil {
		s.LogError(ctx, err, "Failed to update transaction", slog.Int64("transaction_id", id))
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction updated", slog.Int64("transaction_id", id))
	return existing, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, userID string, id int64) error {
	if err := s.repo.DeleteTransaction(ctx, userID, id); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete transaction", slog.Int64("transaction_id", id))
		}
		return err
	}
	s.LogInfo(ctx, "Transaction deleted", slog.Int64("transaction_id", id))
	return nil
}
