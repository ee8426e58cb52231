package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/finance_dashboard_app/internal/apperrors"
	"github.com/SscSPs/finance_dashboard_app/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_dashboard_app/internal/core/ports/repositories"
	"github.com/SscSPs/finance_dashboard_app/internal/models"
	"github.com/SscSPs/finance_dashboard_app/internal/utils/mapping"
	"github.com/SscSPs/finance_dashboard_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for ledger data.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepository {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.TransactionRepository = (*PgxTransactionRepository)(nil)

const transactionColumns = `id, user_id, transaction_date, description, amount, category, created_at, updated_at`

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.ID,
		&m.UserID,
		&m.TransactionDate,
		&m.Description,
		&m.Amount,
		&m.Category,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return m, err
}

// SaveTransactions inserts all candidates in a single database transaction
// and returns them with their assigned IDs, in input order.
func (r *PgxTransactionRepository) SaveTransactions(ctx context.Context, txns []domain.Transaction) ([]domain.Transaction, error) {
	if len(txns) == 0 {
		return []domain.Transaction{}, nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx) // no-op after commit

	query := `
		INSERT INTO transactions (user_id, transaction_date, description, amount, category)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at;
	`

	saved := make([]domain.Transaction, 0, len(txns))
	for _, txn := range txns {
		m := mapping.ToModelTransaction(txn)
		if m.TransactionDate.IsZero() {
			return nil, fmt.Errorf("%w: transaction %q has no usable date", apperrors.ErrValidation, txn.Description)
		}

		err := tx.QueryRow(ctx, query,
			m.UserID,
			mapping.CivilDate(m.TransactionDate),
			m.Description,
			m.Amount,
			m.Category,
		).Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to insert transaction: %w", err)
		}
		saved = append(saved, mapping.ToDomainTransaction(m))
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return saved, nil
}

// FindTransactionByID retrieves a single transaction scoped to the user.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, userID string, id int64) (*domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE id = $1 AND user_id = $2;
	`
	m, err := scanTransaction(r.Pool.QueryRow(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction %d: %w", id, err)
	}

	d := mapping.ToDomainTransaction(m)
	return &d, nil
}

// ListTransactions retrieves one page of the ledger, newest date first. The
// cursor is the (transaction_date, id) pair of the last row on the previous
// page.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, userID string, limit int, nextToken string) ([]domain.Transaction, string, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE user_id = $1
	`
	args := []any{userID}

	if nextToken != "" {
		cursorDate, cursorID, err := pagination.DecodeCursor(nextToken)
		if err != nil {
			return nil, "", fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		query += ` AND (transaction_date, id) < ($2, $3)`
		args = append(args, cursorDate, cursorID)
	}

	// Fetch one extra row to know whether another page exists.
	query += fmt.Sprintf(` ORDER BY transaction_date DESC, id DESC LIMIT %d;`, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, "", fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	modelTxns, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Transaction, error) {
		return scanTransaction(row)
	})
	if err != nil {
		return nil, "", fmt.Errorf("failed to scan transactions: %w", err)
	}

	token := ""
	if len(modelTxns) > limit {
		modelTxns = modelTxns[:limit]
		last := modelTxns[len(modelTxns)-1]
		token = pagination.EncodeCursor(last.TransactionDate, last.ID)
	}

	return mapping.ToDomainTransactionSlice(modelTxns), token, nil
}

// ListAllTransactions retrieves the full ledger snapshot in chronological
// order.
func (r *PgxTransactionRepository) ListAllTransactions(ctx context.Context, userID string) ([]domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE user_id = $1
		ORDER BY transaction_date ASC, id ASC;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query ledger: %w", err)
	}
	defer rows.Close()

	modelTxns, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Transaction, error) {
		return scanTransaction(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan ledger: %w", err)
	}

	return mapping.ToDomainTransactionSlice(modelTxns), nil
}

// UpdateTransaction replaces all mutable fields of an existing row.
func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	if txn.ID == nil {
		return fmt.Errorf("%w: transaction has no ID", apperrors.ErrValidation)
	}
	m := mapping.ToModelTransaction(txn)
	if m.TransactionDate.IsZero() {
		return fmt.Errorf("%w: transaction %d has no usable date", apperrors.ErrValidation, m.ID)
	}

	query := `
		UPDATE transactions
		SET transaction_date = $1, description = $2, amount = $3, category = $4, updated_at = now()
		WHERE id = $5 AND user_id = $6;
	`
	tag, err := r.Pool.Exec(ctx, query,
		mapping.CivilDate(m.TransactionDate),
		m.Description,
		m.Amount,
		m.Category,
		m.ID,
		m.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction %d: %w", m.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteTransaction removes a row scoped to the user.
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, userID string, id int64) error {
	query := `DELETE FROM transactions WHERE id = $1 AND user_id = $2;`
	tag, err := r.Pool.Exec(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
