package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Monique-199/BankingApplication/internal/apperrors"
	"github.com/Monique-199/BankingApplication/internal/core/services"
	"github.com/Monique-199/BankingApplication/internal/dto"
	"github.com/Monique-199/BankingApplication/internal/middleware"
)

// ledgerHandler handles balance mutations and inquiries.
type ledgerHandler struct {
	ledgerService *services.LedgerService
}

func newLedgerHandler(ls *services.LedgerService) *ledgerHandler {
	return &ledgerHandler{ledgerService: ls}
}

// balanceInquiry godoc
// @Summary Check an account balance
// @Description Reports the current balance. Response code 003 when the account does not exist, 004 otherwise.
// @Tags accounts
// @Produce  json
// @Param   accountNumber query string false "Account number, defaults to the authenticated account"
// @Success 200 {object} dto.BankResponse
// @Failure 400 {object} map[string]string "Missing account number"
// @Failure 500 {object} map[string]string "Failed to check balance"
// @Security BearerAuth
// @Router /accounts/balance [get]
func (h *ledgerHandler) balanceInquiry(c *gin.Context) {
	accountNumber := c.Query("accountNumber")
	if accountNumber == "" {
		// Fall back to the account the token was issued for.
		own, ok := middleware.GetAccountNumberFromContext(c)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "accountNumber is required"})
			return
		}
		accountNumber = own
	}

	resp, err := h.ledgerService.BalanceInquiry(c.Request.Context(), dto.InquiryRequest{AccountNumber: accountNumber})
	if err != nil {
		h.fail(c, "balance inquiry", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// nameInquiry godoc
// @Summary Look up an account holder's name
// @Tags accounts
// @Produce  json
// @Param   accountNumber query string true "Account number"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string "Account not found"
// @Security BearerAuth
// @Router /accounts/name [get]
func (h *ledgerHandler) nameInquiry(c *gin.Context) {
	accountNumber := c.Query("accountNumber")
	if accountNumber == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "accountNumber is required"})
		return
	}

	name, err := h.ledgerService.NameInquiry(c.Request.Context(), accountNumber)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": dto.MsgAccountNotFound})
			return
		}
		h.fail(c, "name inquiry", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"accountName": name})
}

// creditAccount godoc
// @Summary Credit an account
// @Description Adds funds. Response code 003 when the account does not exist, 005 on success.
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   request body dto.CreditDebitRequest true "Credit details"
// @Success 200 {object} dto.BankResponse
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 500 {object} map[string]string "Failed to credit account"
// @Security BearerAuth
// @Router /accounts/credit [post]
func (h *ledgerHandler) creditAccount(c *gin.Context) {
	var req dto.CreditDebitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	resp, err := h.ledgerService.CreditAccount(c.Request.Context(), req)
	if err != nil {
		h.fail(c, "credit", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// debitAccount godoc
// @Summary Debit an account
// @Description Withdraws funds. Response code 003 when the account does not exist, 006 when the balance cannot cover the amount, 007 on success.
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   request body dto.CreditDebitRequest true "Debit details"
// @Success 200 {object} dto.BankResponse
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 500 {object} map[string]string "Failed to debit account"
// @Security BearerAuth
// @Router /accounts/debit [post]
func (h *ledgerHandler) debitAccount(c *gin.Context) {
	var req dto.CreditDebitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	resp, err := h.ledgerService.DebitAccount(c.Request.Context(), req)
	if err != nil {
		h.fail(c, "debit", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// transfer godoc
// @Summary Transfer funds between accounts
// @Description Moves funds atomically. Response code 003 when either account does not exist, 006 when the source balance cannot cover the amount, 008 on success.
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   request body dto.TransferRequest true "Transfer details"
// @Success 200 {object} dto.BankResponse
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 500 {object} map[string]string "Failed to transfer"
// @Security BearerAuth
// @Router /accounts/transfer [post]
func (h *ledgerHandler) transfer(c *gin.Context) {
	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	resp, err := h.ledgerService.Transfer(c.Request.Context(), req)
	if err != nil {
		h.fail(c, "transfer", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ledgerHandler) fail(c *gin.Context, operation string, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if errors.Is(err, apperrors.ErrValidation) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	logger.Error("Ledger operation failed", slog.String("operation", operation), slog.String("error", err.Error()))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Operation failed"})
}
