// Package mapping adapts between the persistence-shaped models and the
// canonical domain shapes. The hosted backend this service replaced stored
// dates as strings and leaked its column casing into clients; here the
// reconciliation lives in one place and the core only ever sees the
// canonical Transaction.
package mapping

import (
	"time"

	"github.com/SscSPs/finance_dashboard_app/internal/core/domain"
	"github.com/SscSPs/finance_dashboard_app/internal/models"
	"github.com/SscSPs/finance_dashboard_app/internal/utils/dates"
)

// ToModelTransaction converts a domain Transaction to a model Transaction.
// The date must be canonical; a non-canonical date maps to the zero time,
// which the repository rejects on write.
func ToModelTransaction(d domain.Transaction) models.Transaction {
	m := models.Transaction{
		UserID:      d.UserID,
		Description: d.Description,
		Amount:      d.Amount,
		Category:    d.Category,
	}
	if d.ID != nil {
		m.ID = *d.ID
	}
	if parsed, ok := dates.ParseDate(d.Date); ok {
		m.TransactionDate = parsed
	}
	return m
}

// ToDomainTransaction converts a model Transaction to a domain Transaction,
// re-deriving the type from the amount sign so the two always agree.
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	d := domain.Transaction{
		UserID:      m.UserID,
		Date:        dates.FormatDate(m.TransactionDate),
		Description: m.Description,
		Category:    m.Category,
	}
	if m.ID != 0 {
		id := m.ID
		d.ID = &id
	}
	d.SetAmount(m.Amount)
	return d
}

// ToDomainTransactionSlice converts a slice of model Transactions.
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}

// CivilDate truncates a timestamp to its UTC civil date. Repository writes
// go through this so a DATE column can never shift by the server timezone.
func CivilDate(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
