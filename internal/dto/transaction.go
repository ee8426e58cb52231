package dto

import (
	"github.com/SscSPs/finance_dashboard_app/internal/core/domain"
	"github.com/SscSPs/finance_dashboard_app/internal/utils/dates"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the payload for manually adding a single
// transaction to the ledger. Category and type are computed server-side.
type CreateTransactionRequest struct {
	Date        string          `json:"date" binding:"required,txndate" example:"2025-03-01"`
	Description string          `json:"description" binding:"required" example:"ATM WDL"`
	Amount      decimal.Decimal `json:"amount" binding:"required" example:"-5000"`
}

// UpdateTransactionRequest defines the payload for replacing a transaction's
// editable fields. Type and category are recomputed from the new values.
type UpdateTransactionRequest struct {
	Date        string          `json:"date" binding:"required,txndate" example:"2025-03-01"`
	Description string          `json:"description" binding:"required" example:"ATM WDL"`
	Amount      decimal.Decimal `json:"amount" binding:"required" example:"-5000"`
}

// TransactionResponse is the API representation of a ledger transaction.
type TransactionResponse struct {
	ID          int64           `json:"id"`
	Date        string          `json:"date" example:"2025-03-01"`
	DisplayDate string          `json:"displayDate" example:"03/01/2025"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type" example:"debit"`
	Category    string          `json:"category" example:"CASH WITHDRAWAL"`
	Recurring   bool            `json:"recurring"`
}

// ListTransactionsResponse is one page of the ledger plus the token for the
// next page.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    string                `json:"nextToken,omitempty"`
}

// ToTransactionResponse converts a domain Transaction to its API shape.
func ToTransactionResponse(t domain.Transaction) TransactionResponse {
	resp := TransactionResponse{
		Date:        t.Date,
		DisplayDate: dates.FormatDisplayDate(t.Date),
		Description: t.Description,
		Amount:      t.Amount,
		Type:        string(t.Type),
		Category:    t.Category,
		Recurring:   t.Recurring,
	}
	if t.ID != nil {
		resp.ID = *t.ID
	}
	return resp
}

// ToTransactionResponses converts a slice of domain Transactions.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	resps := make([]TransactionResponse, len(txns))
	for i, t := range txns {
		resps[i] = ToTransactionResponse(t)
	}
	return resps
}
