package pgsql

import (
	"context"
	"sort"
	"time"

	"github.com/Monique-199/BankingApplication/internal/apperrors"
	"github.com/Monique-199/BankingApplication/internal/core/domain"
	portsrepo "github.com/Monique-199/BankingApplication/internal/core/ports/repositories"
	"github.com/Monique-199/BankingApplication/internal/models"
	"github.com/Monique-199/BankingApplication/internal/utils/accounting"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxLedgerRepository struct {
	BaseRepository
	accountRepo *PgxAccountRepository
}

// newPgxLedgerRepository creates a new repository for ledger mutations and entries.
func newPgxLedgerRepository(pool *pgxpool.Pool, accountRepo *PgxAccountRepository) *PgxLedgerRepository {
	return &PgxLedgerRepository{
		BaseRepository: BaseRepository{Pool: pool},
		accountRepo:    accountRepo,
	}
}

var _ portsrepo.LedgerRepository = (*PgxLedgerRepository)(nil)

func accountBalances(accounts map[string]domain.Account) map[string]decimal.Decimal {
	balances := make(map[string]decimal.Decimal, len(accounts))
	for number, acc := range accounts {
		balances[number] = acc.Balance
	}
	return balances
}

// ApplyMutation applies all legs within a single database transaction:
// lock account rows in ascending account-number order, verify debit legs
// against the locked balances, update balances, append one SUCCESS entry per
// leg, commit. Any failure rolls the whole mutation back.
func (r *PgxLedgerRepository) ApplyMutation(ctx context.Context, legs []domain.Leg, now time.Time) (map[string]domain.Account, error) {
	deltas, err := accounting.BalanceDeltas(legs)
	if err != nil {
		return nil, err
	}

	accountNumbers := make([]string, 0, len(deltas))
	for number := range deltas {
		accountNumbers = append(accountNumbers, number)
	}
	// Consistent lock order across concurrent transfers avoids deadlock.
	sort.Strings(accountNumbers)

	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	lockedAccounts, err := r.accountRepo.findForUpdate(ctx, tx, accountNumbers)
	if err != nil {
		return nil, err
	}

	if err := accounting.CheckSufficientBalances(legs, accountBalances(lockedAccounts)); err != nil {
		return nil, err
	}

	for _, number := range accountNumbers {
		acc := lockedAccounts[number]
		acc.Balance = acc.Balance.Add(deltas[number])
		acc.ModifiedAt = now
		if err := r.accountRepo.updateBalanceInTx(ctx, tx, number, acc.Balance, now); err != nil {
			return nil, err
		}
		lockedAccounts[number] = acc
	}

	batch := &pgx.Batch{}
	entryQuery := `
		INSERT INTO ledger_entries (entry_id, entry_type, account_number, amount, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	for _, leg := range legs {
		entry := models.LedgerEntry{
			EntryID:       uuid.NewString(),
			EntryType:     string(leg.EntryType),
			AccountNumber: leg.AccountNumber,
			Amount:        leg.Amount,
			Status:        string(domain.EntryStatusSuccess),
			CreatedAt:     now,
		}
		batch.Queue(entryQuery,
			entry.EntryID,
			entry.EntryType,
			entry.AccountNumber,
			entry.Amount,
			entry.Status,
			entry.CreatedAt,
		)
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to append ledger entries", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	return lockedAccounts, nil
}

// ListEntries returns the ledger entries for an account whose creation date
// falls within [from, to], oldest first.
func (r *PgxLedgerRepository) ListEntries(ctx context.Context, accountNumber string, from, to time.Time) ([]domain.LedgerEntry, error) {
	query := `
		SELECT entry_id, entry_type, account_number, amount, status, created_at
		FROM ledger_entries
		WHERE account_number = $1 AND created_at >= $2 AND created_at <= $3
		ORDER BY created_at;
	`
	rows, err := r.Pool.Query(ctx, query, accountNumber, from, to)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query ledger entries for account "+accountNumber, err)
	}
	defer rows.Close()

	entries := []domain.LedgerEntry{}
	for rows.Next() {
		var m models.LedgerEntry
		if err := rows.Scan(
			&m.EntryID,
			&m.EntryType,
			&m.AccountNumber,
			&m.Amount,
			&m.Status,
			&m.CreatedAt,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan ledger entry row", err)
		}
		entries = append(entries, domain.LedgerEntry{
			EntryID:       m.EntryID,
			EntryType:     domain.EntryType(m.EntryType),
			AccountNumber: m.AccountNumber,
			Amount:        m.Amount,
			Status:        domain.EntryStatus(m.Status),
			CreatedAt:     m.CreatedAt,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating ledger entry rows", err)
	}

	return entries, nil
}
