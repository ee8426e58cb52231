package dto

import (
	"github.com/SscSPs/finance_dashboard_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ProcessStatementRequest carries a raw statement as rows of cells, exactly
// as decoded from the source document. Preamble rows before the header line
// are fine; the parser locates the header itself.
type ProcessStatementRequest struct {
	Rows [][]string `json:"rows" binding:"required"`
}

// StagedTransactionRequest is one reviewed candidate sent back for commit.
type StagedTransactionRequest struct {
	Date        string          `json:"date" binding:"required,txndate" example:"2025-03-01"`
	Description string          `json:"description" binding:"required" example:"ATM WDL"`
	Amount      decimal.Decimal `json:"amount" binding:"required" example:"-5000"`
}

// CommitStatementRequest carries the candidates the user chose to save.
type CommitStatementRequest struct {
	Transactions []StagedTransactionRequest `json:"transactions" binding:"required,dive"`
}

// StagedStatementResponse is the result of parsing a statement: candidates
// awaiting review, never yet persisted.
type StagedStatementResponse struct {
	StatementID    string                `json:"statementId"`
	Transactions   []TransactionResponse `json:"transactions"`
	ParsedCount    int                   `json:"parsedCount"`
	DuplicateCount int                   `json:"duplicateCount"`
}

// CommitStatementResponse reports what a commit actually saved.
type CommitStatementResponse struct {
	Transactions   []TransactionResponse `json:"transactions"`
	SavedCount     int                   `json:"savedCount"`
	DuplicateCount int                   `json:"duplicateCount"`
}

// ToStagedStatementResponse converts a staged statement to its API shape.
func ToStagedStatementResponse(s domain.StagedStatement) StagedStatementResponse {
	return StagedStatementResponse{
		StatementID:    s.StatementID,
		Transactions:   ToTransactionResponses(s.Transactions),
		ParsedCount:    s.ParsedCount,
		DuplicateCount: s.DuplicateCount,
	}
}

// ToCommitStatementResponse converts a commit result to its API shape.
func ToCommitStatementResponse(r domain.CommitResult) CommitStatementResponse {
	return CommitStatementResponse{
		Transactions:   ToTransactionResponses(r.Saved),
		SavedCount:     len(r.Saved),
		DuplicateCount: r.DuplicateCount,
	}
}
