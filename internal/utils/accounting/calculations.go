package accounting

import (
	"fmt"

	"github.com/Monique-199/BankingApplication/internal/apperrors"
	"github.com/Monique-199/BankingApplication/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BalanceDeltas folds a set of legs into one signed delta per account number.
// Amounts must be strictly positive; the direction comes from the entry type.
func BalanceDeltas(legs []domain.Leg) (map[string]decimal.Decimal, error) {
	deltas := make(map[string]decimal.Decimal, len(legs))
	for _, leg := range legs {
		if leg.Amount.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: leg amount must be positive, got %s for account %s",
				apperrors.ErrValidation, leg.Amount.String(), leg.AccountNumber)
		}
		deltas[leg.AccountNumber] = deltas[leg.AccountNumber].Add(leg.SignedAmount())
	}
	return deltas, nil
}

// CheckSufficientBalances verifies that applying the legs leaves no account
// negative, comparing full-precision decimals against the balances the caller
// fetched (and, in the pgsql path, locked). Comparison is exact; fractional
// cents are never truncated away.
func CheckSufficientBalances(legs []domain.Leg, balances map[string]decimal.Decimal) error {
	deltas, err := BalanceDeltas(legs)
	if err != nil {
		return err
	}
	for accountNumber, delta := range deltas {
		balance, ok := balances[accountNumber]
		if !ok {
			return fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountNumber)
		}
		if balance.Add(delta).IsNegative() {
			return fmt.Errorf("%w: account %s balance %s cannot absorb %s",
				apperrors.ErrInsufficientBalance, accountNumber, balance.String(), delta.String())
		}
	}
	return nil
}
