package services

import (
	"context"

	"github.com/SscSPs/finance_dashboard_app/internal/core/domain"
	"github.com/SscSPs/finance_dashboard_app/internal/dto"
)

// StatementSvcFacade defines the two-phase statement ingestion flow: parse a
// raw document into staged candidates, then commit the reviewed candidates.
type StatementSvcFacade interface {
	// ProcessStatement parses raw statement rows into normalized,
	// categorized candidates and marks duplicates against the user's
	// existing ledger. Nothing is persisted.
	ProcessStatement(ctx context.Context, userID string, rows [][]string) (*domain.StagedStatement, error)

	// CommitStatement persists reviewed candidates, re-checking each one
	// against a fresh ledger snapshot so a double-submit cannot duplicate
	// rows.
	CommitStatement(ctx context.Context, userID string, req dto.CommitStatementRequest) (*domain.CommitResult, error)
}
