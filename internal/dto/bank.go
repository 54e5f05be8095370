package dto

import "github.com/shopspring/decimal"

// Response codes are string literals preserved for client compatibility.
const (
	CodeAccountExists      = "001"
	CodeAccountCreated     = "002"
	CodeAccountNotFound    = "003"
	CodeAccountFound       = "004"
	CodeAccountCredited    = "005"
	CodeInsufficientFunds  = "006"
	CodeAccountDebited     = "007"
	CodeTransferSuccessful = "008"
)

const (
	MsgAccountExists      = "A user already has an account created"
	MsgAccountCreated     = "Account has been successfully created!"
	MsgAccountNotFound    = "User with the provided details does not exist!"
	MsgAccountFound       = "The requested account has been found!"
	MsgAccountCredited    = "User account credited successfully"
	MsgInsufficientFunds  = "Insufficient balance!"
	MsgAccountDebited     = "Account has been debited!"
	MsgTransferSuccessful = "Transfer success"
)

// AccountInfo is the account snapshot embedded in ledger and inquiry
// responses. It reflects the balance after the operation.
type AccountInfo struct {
	AccountName    string          `json:"accountName"`
	AccountBalance decimal.Decimal `json:"accountBalance"`
	AccountNumber  string          `json:"accountNumber"`
}

// BankResponse is the uniform envelope for account and ledger operations.
type BankResponse struct {
	ResponseCode    string       `json:"responseCode"`
	ResponseMessage string       `json:"responseMessage"`
	AccountInfo     *AccountInfo `json:"accountInfo,omitempty"`
}

// CreditDebitRequest mutates a single account.
type CreditDebitRequest struct {
	AccountNumber string          `json:"accountNumber" binding:"required,accno"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
}

// TransferRequest moves funds between two accounts atomically.
type TransferRequest struct {
	SourceAccountNumber      string          `json:"sourceAccountNumber" binding:"required,accno"`
	DestinationAccountNumber string          `json:"destinationAccountNumber" binding:"required,accno"`
	Amount                   decimal.Decimal `json:"amount" binding:"required"`
}

// InquiryRequest looks up a single account.
type InquiryRequest struct {
	AccountNumber string `json:"accountNumber" binding:"required"`
}
