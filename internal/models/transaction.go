package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the persistence-shaped transaction row. The date is a real
// DATE column and the type column does not exist: type is derived from the
// amount sign on the way back into the domain. Converting between this and
// the canonical domain shape happens exclusively in utils/mapping, so the
// core never sees storage concerns.
type Transaction struct {
	ID              int64
	UserID          string
	TransactionDate time.Time
	Description     string
	Amount          decimal.Decimal
	Category        string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
