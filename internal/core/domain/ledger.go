package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryType indicates whether a ledger entry credits or debits an account.
type EntryType string

const (
	Credit EntryType = "CREDIT"
	Debit  EntryType = "DEBIT"
)

// EntryStatus is the recorded outcome of a ledger entry. Only committed
// mutations are ever recorded, so entries carry StatusSuccess; rejected
// preconditions (unknown account, insufficient balance) never reach the log.
type EntryStatus string

const EntryStatusSuccess EntryStatus = "SUCCESS"

// LedgerEntry is the immutable record of one committed balance mutation.
// A transfer produces two entries: a DEBIT on the source and a CREDIT on the
// destination, written in the same database transaction as the balance
// updates themselves.
type LedgerEntry struct {
	EntryID       string          `json:"entryID"`
	EntryType     EntryType       `json:"entryType"`
	AccountNumber string          `json:"accountNumber"`
	Amount        decimal.Decimal `json:"amount"`
	Status        EntryStatus     `json:"status"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// Leg is one half of a ledger mutation: the account it touches, the
// direction, and the positive amount. A credit or debit is a single leg;
// a transfer is a debit leg plus a credit leg.
type Leg struct {
	AccountNumber string
	EntryType     EntryType
	Amount        decimal.Decimal
}

// SignedAmount returns the balance delta this leg applies: positive for a
// credit, negative for a debit.
func (l Leg) SignedAmount() decimal.Decimal {
	if l.EntryType == Debit {
		return l.Amount.Neg()
	}
	return l.Amount
}
