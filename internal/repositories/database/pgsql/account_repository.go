package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Monique-199/BankingApplication/internal/apperrors"
	"github.com/Monique-199/BankingApplication/internal/core/domain"
	portsrepo "github.com/Monique-199/BankingApplication/internal/core/ports/repositories"
	"github.com/Monique-199/BankingApplication/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool *pgxpool.Pool) *PgxAccountRepository {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AccountRepository = (*PgxAccountRepository)(nil)

func toModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountNumber:    d.AccountNumber,
		FirstName:        d.FirstName,
		LastName:         d.LastName,
		OtherName:        d.OtherName,
		Gender:           d.Gender,
		Address:          d.Address,
		StateOfOrigin:    d.StateOfOrigin,
		Email:            d.Email,
		PhoneNumber:      d.PhoneNumber,
		AlternativePhone: d.AlternativePhone,
		PasswordHash:     d.PasswordHash,
		Status:           string(d.Status),
		Balance:          d.Balance,
		CreatedAt:        d.CreatedAt,
		ModifiedAt:       d.ModifiedAt,
	}
}

func toDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountNumber:    m.AccountNumber,
		FirstName:        m.FirstName,
		LastName:         m.LastName,
		OtherName:        m.OtherName,
		Gender:           m.Gender,
		Address:          m.Address,
		StateOfOrigin:    m.StateOfOrigin,
		Email:            m.Email,
		PhoneNumber:      m.PhoneNumber,
		AlternativePhone: m.AlternativePhone,
		PasswordHash:     m.PasswordHash,
		Status:           domain.AccountStatus(m.Status),
		Balance:          m.Balance,
		AuditFields: domain.AuditFields{
			CreatedAt:  m.CreatedAt,
			ModifiedAt: m.ModifiedAt,
		},
	}
}

const accountColumns = `account_number, first_name, last_name, other_name, gender, address, state_of_origin,
	       email, phone_number, alternative_phone_number, password_hash, status, balance, created_at, modified_at`

func scanAccount(row pgx.Row) (models.Account, error) {
	var m models.Account
	err := row.Scan(
		&m.AccountNumber,
		&m.FirstName,
		&m.LastName,
		&m.OtherName,
		&m.Gender,
		&m.Address,
		&m.StateOfOrigin,
		&m.Email,
		&m.PhoneNumber,
		&m.AlternativePhone,
		&m.PasswordHash,
		&m.Status,
		&m.Balance,
		&m.CreatedAt,
		&m.ModifiedAt,
	)
	return m, err
}

// SaveAccount inserts a new account.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	m := toModelAccount(account)

	query := `
		INSERT INTO accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.AccountNumber,
		m.FirstName,
		m.LastName,
		m.OtherName,
		m.Gender,
		m.Address,
		m.StateOfOrigin,
		m.Email,
		m.PhoneNumber,
		m.AlternativePhone,
		m.PasswordHash,
		m.Status,
		m.Balance,
		m.CreatedAt,
		m.ModifiedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique violation
			return fmt.Errorf("%w: account %s", apperrors.ErrDuplicate, m.AccountNumber)
		}
		return apperrors.NewAppError(500, "failed to save account "+m.AccountNumber, err)
	}
	return nil
}

// FindByAccountNumber retrieves an account by its account number.
func (r *PgxAccountRepository) FindByAccountNumber(ctx context.Context, accountNumber string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_number = $1;`

	m, err := scanAccount(r.Pool.QueryRow(ctx, query, accountNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find account by number "+accountNumber, err)
	}

	acc := toDomainAccount(m)
	return &acc, nil
}

// FindByEmail retrieves an account by the owner's email.
func (r *PgxAccountRepository) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE email = $1;`

	m, err := scanAccount(r.Pool.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find account by email", err)
	}

	acc := toDomainAccount(m)
	return &acc, nil
}

// ExistsByEmail reports whether any account uses the given email.
func (r *PgxAccountRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.Pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM accounts WHERE email = $1);`, email).Scan(&exists)
	if err != nil {
		return false, apperrors.NewAppError(500, "failed to check account existence by email", err)
	}
	return exists, nil
}

// ExistsByAccountNumber reports whether an account with the given number exists.
func (r *PgxAccountRepository) ExistsByAccountNumber(ctx context.Context, accountNumber string) (bool, error) {
	var exists bool
	err := r.Pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM accounts WHERE account_number = $1);`, accountNumber).Scan(&exists)
	if err != nil {
		return false, apperrors.NewAppError(500, "failed to check account existence by number "+accountNumber, err)
	}
	return exists, nil
}

// findForUpdate retrieves the given accounts and locks their rows for the
// duration of tx. Account numbers must be pre-sorted by the caller so that
// concurrent transfers acquire locks in a consistent order.
func (r *PgxAccountRepository) findForUpdate(ctx context.Context, tx pgx.Tx, accountNumbers []string) (map[string]domain.Account, error) {
	if len(accountNumbers) == 0 {
		return map[string]domain.Account{}, nil
	}

	accounts := make(map[string]domain.Account, len(accountNumbers))
	// Lock row by row in the caller-supplied order; ANY($1) would leave the
	// lock order to the planner.
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_number = $1 FOR UPDATE;`
	for _, number := range accountNumbers {
		m, err := scanAccount(tx.QueryRow(ctx, query, number))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, number)
			}
			return nil, apperrors.NewAppError(500, "failed to lock account "+number, err)
		}
		accounts[m.AccountNumber] = toDomainAccount(m)
	}
	return accounts, nil
}

// updateBalanceInTx writes the new balance of one locked account row.
func (r *PgxAccountRepository) updateBalanceInTx(ctx context.Context, tx pgx.Tx, accountNumber string, newBalance decimal.Decimal, now time.Time) error {
	cmdTag, err := tx.Exec(ctx,
		`UPDATE accounts SET balance = $2, modified_at = $3 WHERE account_number = $1;`,
		accountNumber, newBalance, now,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update balance for account "+accountNumber, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: account %s vanished during balance update", apperrors.ErrNotFound, accountNumber)
	}
	return nil
}
