package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Monique-199/BankingApplication/internal/core/domain"
	"github.com/Monique-199/BankingApplication/internal/utils/accounting"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LedgerRepository is an in-memory ledger used by tests and local runs. A
// single mutation lock serializes all mutations, which is the in-memory
// equivalent of the pgsql repository's row locks.
type LedgerRepository struct {
	mu          sync.Mutex
	accountRepo *AccountRepository
	entries     []domain.LedgerEntry
}

func NewLedgerRepository(accountRepo *AccountRepository) *LedgerRepository {
	return &LedgerRepository{accountRepo: accountRepo}
}

func (r *LedgerRepository) ApplyMutation(ctx context.Context, legs []domain.Leg, now time.Time) (map[string]domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	deltas, err := accounting.BalanceDeltas(legs)
	if err != nil {
		return nil, err
	}

	accountNumbers := make([]string, 0, len(deltas))
	for number := range deltas {
		accountNumbers = append(accountNumbers, number)
	}
	sort.Strings(accountNumbers)

	current := make(map[string]domain.Account, len(accountNumbers))
	balances := make(map[string]decimal.Decimal, len(accountNumbers))
	for _, number := range accountNumbers {
		acc, err := r.accountRepo.FindByAccountNumber(ctx, number)
		if err != nil {
			return nil, err
		}
		current[number] = *acc
		balances[number] = acc.Balance
	}

	if err := accounting.CheckSufficientBalances(legs, balances); err != nil {
		return nil, err
	}

	updated := make(map[string]domain.Account, len(accountNumbers))
	for _, number := range accountNumbers {
		acc := current[number]
		acc.Balance = acc.Balance.Add(deltas[number])
		acc.ModifiedAt = now
		r.accountRepo.replaceBalance(acc)
		updated[number] = acc
	}

	for _, leg := range legs {
		r.entries = append(r.entries, domain.LedgerEntry{
			EntryID:       uuid.NewString(),
			EntryType:     leg.EntryType,
			AccountNumber: leg.AccountNumber,
			Amount:        leg.Amount,
			Status:        domain.EntryStatusSuccess,
			CreatedAt:     now,
		})
	}

	return updated, nil
}

func (r *LedgerRepository) ListEntries(ctx context.Context, accountNumber string, from, to time.Time) ([]domain.LedgerEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := []domain.LedgerEntry{}
	for _, e := range r.entries {
		if e.AccountNumber != accountNumber {
			continue
		}
		if e.CreatedAt.Before(from) || e.CreatedAt.After(to) {
			continue
		}
		result = append(result, e)
	}
	return result, nil
}
