package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry is the database representation of one committed ledger mutation.
// Rows are append-only; nothing updates or deletes them.
type LedgerEntry struct {
	EntryID       string          `db:"entry_id"`
	EntryType     string          `db:"entry_type"`
	AccountNumber string          `db:"account_number"`
	Amount        decimal.Decimal `db:"amount"`
	Status        string          `db:"status"`
	CreatedAt     time.Time       `db:"created_at"`
}
