package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/Monique-199/BankingApplication/internal/apperrors"
	"github.com/Monique-199/BankingApplication/internal/core/domain"
)

// AccountRepository is an in-memory account store used by tests and local runs.
type AccountRepository struct {
	mu         sync.RWMutex
	accounts   map[string]domain.Account
	emailIndex map[string]string
}

func NewAccountRepository() *AccountRepository {
	return &AccountRepository{
		accounts:   make(map[string]domain.Account),
		emailIndex: make(map[string]string),
	}
}

func (r *AccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.accounts[account.AccountNumber]; exists {
		return fmt.Errorf("%w: account %s", apperrors.ErrDuplicate, account.AccountNumber)
	}
	if _, exists := r.emailIndex[account.Email]; exists {
		return fmt.Errorf("%w: email already registered", apperrors.ErrDuplicate)
	}

	r.accounts[account.AccountNumber] = account
	r.emailIndex[account.Email] = account.AccountNumber
	return nil
}

func (r *AccountRepository) FindByAccountNumber(ctx context.Context, accountNumber string) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, exists := r.accounts[accountNumber]
	if !exists {
		return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountNumber)
	}
	return &account, nil
}

func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	number, exists := r.emailIndex[email]
	if !exists {
		return nil, fmt.Errorf("%w: no account for email", apperrors.ErrNotFound)
	}
	account := r.accounts[number]
	return &account, nil
}

func (r *AccountRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, exists := r.emailIndex[email]
	return exists, nil
}

func (r *AccountRepository) ExistsByAccountNumber(ctx context.Context, accountNumber string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, exists := r.accounts[accountNumber]
	return exists, nil
}

// replaceBalance is used by the memory ledger repository while holding its own
// mutation lock.
func (r *AccountRepository) replaceBalance(account domain.Account) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.accounts[account.AccountNumber] = account
}
