package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/finance_dashboard_app/internal/apperrors"
	"github.com/SscSPs/finance_dashboard_app/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_dashboard_app/internal/core/ports/repositories"
	"github.com/SscSPs/finance_dashboard_app/internal/dto"
	"github.com/SscSPs/finance_dashboard_app/internal/utils/categorize"
	"github.com/SscSPs/finance_dashboard_app/internal/utils/dates"
	"github.com/SscSPs/finance_dashboard_app/internal/utils/statement"
	"github.com/google/uuid"
)

type statementService struct {
	BaseService
	repo  portsrepo.TransactionRepository
	table categorize.Table
}

// StatementServiceOption configures the statement service.
type StatementServiceOption func(*statementService)

// WithStatementCategoryTable overrides the keyword table used to categorize
// parsed rows.
func WithStatementCategoryTable(table categorize.Table) StatementServiceOption {
	return func(s *statementService) {
		s.table = table
	}
}

// NewStatementService creates a statement service backed by the given
// repository.
func NewStatementService(repo portsrepo.TransactionRepository, opts ...StatementServiceOption) *statementService {
	s := &statementService{
		repo:  repo,
		table: categorize.DefaultTable(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ProcessStatement parses raw rows into staged candidates. Duplicates against
// the existing ledger are filtered out and counted; nothing is persisted.
func (s *statementService) ProcessStatement(ctx context.Context, userID string, rows [][]string) (*domain.StagedStatement, error) {
	parsed, err := statement.Parse(rows, s.table)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	existing, err := s.repo.ListAllTransactions(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load ledger for duplicate check", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to load existing transactions: %w", err)
	}

	fresh, dupCount := statement.FilterDuplicates(parsed, statement.KeySet(existing))
	for i := range fresh {
		fresh[i].UserID = userID
	}

	staged := &domain.StagedStatement{
		StatementID:    uuid.NewString(),
		Transactions:   fresh,
		ParsedCount:    len(parsed),
		DuplicateCount: dupCount,
	}

	s.LogInfo(ctx, "Statement processed",
		slog.String("statement_id", staged.StatementID),
		slog.Int("parsed", staged.ParsedCount),
		slog.Int("duplicates", staged.DuplicateCount),
		slog.Int("staged", len(fresh)))
	return staged, nil
}

// CommitStatement persists reviewed candidates. Every candidate is rebuilt
// from its raw fields and re-checked against a fresh ledger snapshot, so a
// stale or double-submitted review cannot duplicate rows.
func (s *statementService) CommitStatement(ctx context.Context, userID string, req dto.CommitStatementRequest) (*domain.CommitResult, error) {
	candidates := make([]domain.Transaction, 0, len(req.Transactions))
	for i, tr := range req.Transactions {
		parsed, ok := dates.ParseDate(tr.Date)
		if !ok {
			return nil, fmt.Errorf("%w: transaction %d has unrecognized date %q", apperrors.ErrValidation, i, tr.Date)
		}
		txn := domain.Transaction{
			UserID:      userID,
			Date:        dates.FormatDate(parsed),
			Description: tr.Description,
			Category:    categorize.Categorize(tr.Description, s.table),
		}
		txn.SetAmount(tr.Amount)
		candidates = append(candidates, txn)
	}

	existing, err := s.repo.ListAllTransactions(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load ledger for commit", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to load existing transactions: %w", err)
	}

	fresh, dupCount := statement.FilterDuplicates(candidates, statement.KeySet(existing))
	if len(fresh) == 0 {
		s.LogInfo(ctx, "Statement commit had nothing new", slog.Int("duplicates", dupCount))
		return &domain.CommitResult{Saved: []domain.Transaction{}, DuplicateCount: dupCount}, nil
	}

	saved, err := s.repo.SaveTransactions(ctx, fresh)
	if err != nil {
		s.LogError(ctx, err, "Failed to save committed transactions", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to save transactions: %w", err)
	}

	s.LogInfo(ctx, "Statement committed",
		slog.String("user_id", userID),
		slog.Int("saved", len(saved)),
		slog.Int("duplicates", dupCount))
	return &domain.CommitResult{Saved: saved, DuplicateCount: dupCount}, nil
}
