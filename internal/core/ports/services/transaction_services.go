package services

import (
	"context"

	"github.com/SscSPs/finance_dashboard_app/internal/core/domain"
	"github.com/SscSPs/finance_dashboard_app/internal/dto"
)

// TransactionReaderSvc defines read operations for the ledger
type TransactionReaderSvc interface {
	// GetTransactionByID retrieves a single transaction owned by the user.
	GetTransactionByID(ctx context.Context, userID string, id int64) (*domain.Transaction, error)

	// ListTransactions retrieves one page of the ledger, newest first.
	ListTransactions(ctx context.Context, userID string, limit int, nextToken string) ([]domain.Transaction, string, error)
}

// TransactionWriterSvc defines write operations for the ledger
type TransactionWriterSvc interface {
	// CreateTransaction persists a single manually entered transaction.
	// The type and category are derived server-side.
	CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error)

	// UpdateTransaction replaces the editable fields of an existing
	// transaction and re-derives its type and category.
	UpdateTransaction(ctx context.Context, userID string, id int64, req dto.UpdateTransactionRequest) (*domain.Transaction, error)

	// DeleteTransaction removes a transaction owned by the user.
	DeleteTransaction(ctx context.Context, userID string, id int64) error
}

// TransactionSvcFacade combines all transaction-related service interfaces
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
