package repositories

import (
	"context"

	"github.com/SscSPs/finance_dashboard_app/internal/core/domain"
)

// TransactionRepository defines persistence operations for ledger
// transactions. Every operation is scoped to a single user; the repository
// must never return another user's rows.
type TransactionRepository interface {
	// SaveTransactions persists staged candidates and returns them with
	// their assigned IDs, in input order.
	SaveTransactions(ctx context.Context, txns []domain.Transaction) ([]domain.Transaction, error)

	// FindTransactionByID returns a single transaction, or apperrors.ErrNotFound.
	FindTransactionByID(ctx context.Context, userID string, id int64) (*domain.Transaction, error)

	// ListTransactions returns one page of the ledger, newest date first,
	// with a token for the next page (empty when exhausted).
	ListTransactions(ctx context.Context, userID string, limit int, nextToken string) ([]domain.Transaction, string, error)

	// ListAllTransactions returns the full ledger snapshot for a user, used
	// by analytics and duplicate detection.
	ListAllTransactions(ctx context.Context, userID string) ([]domain.Transaction, error)

	// UpdateTransaction replaces all mutable fields of an existing row.
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error

	// DeleteTransaction removes a row, or returns apperrors.ErrNotFound.
	DeleteTransaction(ctx context.Context, userID string, id int64) error
}
