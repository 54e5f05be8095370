package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account is the database representation of a customer account.
type Account struct {
	AccountNumber    string          `db:"account_number"`
	FirstName        string          `db:"first_name"`
	LastName         string          `db:"last_name"`
	OtherName        string          `db:"other_name"`
	Gender           string          `db:"gender"`
	Address          string          `db:"address"`
	StateOfOrigin    string          `db:"state_of_origin"`
	Email            string          `db:"email"`
	PhoneNumber      string          `db:"phone_number"`
	AlternativePhone string          `db:"alternative_phone_number"`
	PasswordHash     string          `db:"password_hash"`
	Status           string          `db:"status"`
	Balance          decimal.Decimal `db:"balance"`
	CreatedAt        time.Time       `db:"created_at"`
	ModifiedAt       time.Time       `db:"modified_at"`
}
