package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Monique-199/BankingApplication/internal/apperrors"
	"github.com/Monique-199/BankingApplication/internal/core/domain"
)

func seedAccounts(t *testing.T, repo *AccountRepository, balances map[string]string) {
	t.Helper()
	now := time.Now()
	for number, balance := range balances {
		require.NoError(t, repo.SaveAccount(context.Background(), domain.Account{
			AccountNumber: number,
			FirstName:     "Holder",
			LastName:      number,
			Email:         number + "@example.com",
			Status:        domain.StatusActive,
			Balance:       decimal.RequireFromString(balance),
			AuditFields:   domain.AuditFields{CreatedAt: now, ModifiedAt: now},
		}))
	}
}

func TestAccountRepositoryDuplicates(t *testing.T) {
	ctx := context.Background()
	repo := NewAccountRepository()
	seedAccounts(t, repo, map[string]string{"2026111111": "0"})

	err := repo.SaveAccount(ctx, domain.Account{AccountNumber: "2026111111", Email: "other@example.com"})
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)

	err = repo.SaveAccount(ctx, domain.Account{AccountNumber: "2026222222", Email: "2026111111@example.com"})
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)

	_, err = repo.FindByAccountNumber(ctx, "2026999999")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestApplyMutationAtomicity(t *testing.T) {
	ctx := context.Background()
	accountRepo := NewAccountRepository()
	ledgerRepo := NewLedgerRepository(accountRepo)
	seedAccounts(t, accountRepo, map[string]string{"2026111111": "100", "2026222222": "20"})

	// Destination does not exist: the source leg must not apply either.
	_, err := ledgerRepo.ApplyMutation(ctx, []domain.Leg{
		{AccountNumber: "2026111111", EntryType: domain.Debit, Amount: decimal.NewFromInt(30)},
		{AccountNumber: "2026999999", EntryType: domain.Credit, Amount: decimal.NewFromInt(30)},
	}, time.Now())
	require.ErrorIs(t, err, apperrors.ErrNotFound)

	source, err := accountRepo.FindByAccountNumber(ctx, "2026111111")
	require.NoError(t, err)
	assert.True(t, source.Balance.Equal(decimal.NewFromInt(100)))

	entries, err := ledgerRepo.ListEntries(ctx, "2026111111", time.Now().Add(-time.Hour), time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestApplyMutationListEntriesWindow(t *testing.T) {
	ctx := context.Background()
	accountRepo := NewAccountRepository()
	ledgerRepo := NewLedgerRepository(accountRepo)
	seedAccounts(t, accountRepo, map[string]string{"2026111111": "0"})

	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	for day := 0; day < 3; day++ {
		_, err := ledgerRepo.ApplyMutation(ctx, []domain.Leg{
			{AccountNumber: "2026111111", EntryType: domain.Credit, Amount: decimal.NewFromInt(10)},
		}, base.AddDate(0, 0, day))
		require.NoError(t, err)
	}

	entries, err := ledgerRepo.ListEntries(ctx, "2026111111", base, base.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestBalanceReconcilesWithLedgerEntries(t *testing.T) {
	ctx := context.Background()
	accountRepo := NewAccountRepository()
	ledgerRepo := NewLedgerRepository(accountRepo)
	seedAccounts(t, accountRepo, map[string]string{"2026111111": "250.00", "2026222222": "10.00"})

	// Mixed sequence: credits, debits and transfer legs, with fractional
	// amounts, plus one rejected debit that must leave no entry behind.
	mutations := [][]domain.Leg{
		{{AccountNumber: "2026111111", EntryType: domain.Credit, Amount: decimal.RequireFromString("100.10")}},
		{{AccountNumber: "2026111111", EntryType: domain.Debit, Amount: decimal.RequireFromString("0.57")}},
		{
			{AccountNumber: "2026111111", EntryType: domain.Debit, Amount: decimal.RequireFromString("42.42")},
			{AccountNumber: "2026222222", EntryType: domain.Credit, Amount: decimal.RequireFromString("42.42")},
		},
		{{AccountNumber: "2026111111", EntryType: domain.Credit, Amount: decimal.RequireFromString("7.03")}},
		{{AccountNumber: "2026222222", EntryType: domain.Debit, Amount: decimal.RequireFromString("12.01")}},
	}
	for _, legs := range mutations {
		_, err := ledgerRepo.ApplyMutation(ctx, legs, time.Now())
		require.NoError(t, err)
	}
	_, err := ledgerRepo.ApplyMutation(ctx, []domain.Leg{
		{AccountNumber: "2026222222", EntryType: domain.Debit, Amount: decimal.NewFromInt(99999)},
	}, time.Now())
	require.ErrorIs(t, err, apperrors.ErrInsufficientBalance)

	initial := map[string]decimal.Decimal{
		"2026111111": decimal.RequireFromString("250.00"),
		"2026222222": decimal.RequireFromString("10.00"),
	}
	for number, start := range initial {
		entries, err := ledgerRepo.ListEntries(ctx, number, time.Now().Add(-time.Hour), time.Now().Add(time.Hour))
		require.NoError(t, err)

		reconciled := start
		for _, e := range entries {
			switch e.EntryType {
			case domain.Credit:
				reconciled = reconciled.Add(e.Amount)
			case domain.Debit:
				reconciled = reconciled.Sub(e.Amount)
			}
		}

		account, err := accountRepo.FindByAccountNumber(ctx, number)
		require.NoError(t, err)
		assert.True(t, account.Balance.Equal(reconciled),
			"account %s: balance %s does not reconcile with entry sum %s", number, account.Balance, reconciled)
	}
}

func TestConcurrentTransfersConserveTotal(t *testing.T) {
	ctx := context.Background()
	accountRepo := NewAccountRepository()
	ledgerRepo := NewLedgerRepository(accountRepo)

	numbers := make([]string, 4)
	balances := map[string]string{}
	for i := range numbers {
		numbers[i] = fmt.Sprintf("20261111%02d", i)
		balances[numbers[i]] = "1000"
	}
	seedAccounts(t, accountRepo, balances)

	var wg sync.WaitGroup
	for i := 0; i < 40; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			src := numbers[i%len(numbers)]
			dst := numbers[(i+1)%len(numbers)]
			_, err := ledgerRepo.ApplyMutation(ctx, []domain.Leg{
				{AccountNumber: src, EntryType: domain.Debit, Amount: decimal.NewFromInt(7)},
				{AccountNumber: dst, EntryType: domain.Credit, Amount: decimal.NewFromInt(7)},
			}, time.Now())
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	total := decimal.Zero
	for _, number := range numbers {
		account, err := accountRepo.FindByAccountNumber(ctx, number)
		require.NoError(t, err)
		total = total.Add(account.Balance)
	}
	assert.True(t, total.Equal(decimal.NewFromInt(4000)), "total balance must be conserved, got %s", total)
}
