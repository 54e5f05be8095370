package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// AccountStatus is the lifecycle state of a customer account.
type AccountStatus string

const (
	// StatusActive is the only status assigned at provisioning time.
	// Accounts are never deleted, only moved out of ACTIVE.
	StatusActive AccountStatus = "ACTIVE"
)

// Account represents a customer account within the core domain. The account
// number is the public identity (year + six random digits); email is unique
// across accounts and doubles as the login identity.
type Account struct {
	AccountNumber    string          `json:"accountNumber"`
	FirstName        string          `json:"firstName"`
	LastName         string          `json:"lastName"`
	OtherName        string          `json:"otherName"`
	Gender           string          `json:"gender"`
	Address          string          `json:"address"`
	StateOfOrigin    string          `json:"stateOfOrigin"`
	Email            string          `json:"email"`
	PhoneNumber      string          `json:"phoneNumber"`
	AlternativePhone string          `json:"alternativePhoneNumber"`
	PasswordHash     string          `json:"-"`
	Status           AccountStatus   `json:"status"`
	Balance          decimal.Decimal `json:"balance"`
	AuditFields
}

// FullName composes the display name from first, last and the optional other
// name part, skipping empty segments.
func (a Account) FullName() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{a.FirstName, a.LastName, a.OtherName} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}
