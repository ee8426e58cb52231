package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether a transaction is income or an expense.
// It is derived from the sign of the amount and never stored independently.
type TransactionType string

const (
	Credit TransactionType = "credit"
	Debit  TransactionType = "debit"
)

// Transaction is a single ledger record. Candidates parsed from a statement
// look the same but carry a nil ID until the persistence layer assigns one.
type Transaction struct {
	ID          *int64          `json:"id,omitempty"`
	UserID      string          `json:"userID"`
	Date        string          `json:"date"` // canonical YYYY-MM-DD civil date
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"` // signed; positive = credit, negative = debit
	Type        TransactionType `json:"type"`
	Category    string          `json:"category"`  // possibly multi-label, labels joined by "-"
	Recurring   bool            `json:"recurring"` // derived display hint, recomputed per analysis
}

// TypeForAmount derives the transaction type from the sign of an amount.
// Zero counts as credit.
func TypeForAmount(amount decimal.Decimal) TransactionType {
	if amount.IsNegative() {
		return Debit
	}
	return Credit
}

// SetAmount replaces the amount and recomputes the type so the two can never
// disagree. All code paths that change an amount must go through here.
func (t *Transaction) SetAmount(amount decimal.Decimal) {
	t.Amount = amount
	t.Type = TypeForAmount(amount)
}

// IsExpense reports whether the transaction is a debit.
func (t *Transaction) IsExpense() bool {
	return t.Type == Debit
}

// DedupKey builds the structural identity used to detect duplicate imports:
// date, normalized description and the amount at two decimal places. Two
// transactions with equal keys are treated as the same economic event. The
// assigned ID is deliberately excluded since staged candidates have none,
// and so is the category, which is derived data re-derivable at any time.
//
// This is a heuristic, not a fingerprint: two genuinely distinct transactions
// on the same day with the same description and amount are indistinguishable.
func (t *Transaction) DedupKey() string {
	return strings.TrimSpace(t.Date) + "|" +
		strings.ToLower(strings.TrimSpace(t.Description)) + "|" +
		t.Amount.StringFixed(2)
}
