package repositories

import (
	"context"
	"time"

	"github.com/Monique-199/BankingApplication/internal/core/domain"
)

// LedgerRepository owns the transactional boundary for balance mutations and
// the append-only ledger entry log.
type LedgerRepository interface {
	// ApplyMutation applies all legs atomically: it locks every affected
	// account row (in ascending account-number order), verifies debit legs
	// against current balances with exact decimal comparison, updates the
	// balances, and appends one SUCCESS ledger entry per leg. Either every leg
	// commits or none does.
	//
	// Returns apperrors.ErrNotFound if any account is missing and
	// apperrors.ErrInsufficientBalance if a debit leg cannot be covered; in
	// both cases nothing is persisted.
	ApplyMutation(ctx context.Context, legs []domain.Leg, now time.Time) (map[string]domain.Account, error)

	// ListEntries returns the ledger entries for an account whose creation
	// date falls within [from, to], oldest first.
	ListEntries(ctx context.Context, accountNumber string, from, to time.Time) ([]domain.LedgerEntry, error)
}
