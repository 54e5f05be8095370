package repositories

import (
	"context"

	"github.com/Monique-199/BankingApplication/internal/core/domain"
)

// AccountRepository persists customer account records keyed by account number.
type AccountRepository interface {
	// SaveAccount inserts a new account. Returns apperrors.ErrDuplicate if the
	// account number or email is already taken.
	SaveAccount(ctx context.Context, account domain.Account) error

	// FindByAccountNumber returns apperrors.ErrNotFound if no account exists.
	FindByAccountNumber(ctx context.Context, accountNumber string) (*domain.Account, error)

	// FindByEmail returns apperrors.ErrNotFound if no account exists.
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)

	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByAccountNumber(ctx context.Context, accountNumber string) (bool, error)
}
