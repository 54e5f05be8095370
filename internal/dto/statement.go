package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatementRequest bounds the statement period. Dates are inclusive and use
// the YYYY-MM-DD layout.
type StatementRequest struct {
	AccountNumber string `form:"accountNumber" binding:"required"`
	StartDate     string `form:"startDate" binding:"required"`
	EndDate       string `form:"endDate" binding:"required"`
}

// StatementEntry is one row of a statement response.
type StatementEntry struct {
	EntryID         string          `json:"entryId"`
	TransactionType string          `json:"transactionType"`
	Amount          decimal.Decimal `json:"amount"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"createdAt"`
}
