package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Monique-199/BankingApplication/internal/apperrors"
	"github.com/Monique-199/BankingApplication/internal/core/domain"
	"github.com/Monique-199/BankingApplication/internal/core/services"
	"github.com/Monique-199/BankingApplication/internal/dto"
	"github.com/Monique-199/BankingApplication/internal/middleware"
)

type statementHandler struct {
	statementService *services.StatementService
}

func newStatementHandler(ss *services.StatementService) *statementHandler {
	return &statementHandler{statementService: ss}
}

// getStatement godoc
// @Summary Generate an account statement
// @Description Returns the ledger entries for the period (dates inclusive, YYYY-MM-DD). A PDF copy is emailed to the account holder.
// @Tags statements
// @Produce  json
// @Param   accountNumber query string true "Account number"
// @Param   startDate query string true "Start date (YYYY-MM-DD)"
// @Param   endDate query string true "End date (YYYY-MM-DD)"
// @Success 200 {array} dto.StatementEntry
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to generate statement"
// @Security BearerAuth
// @Router /statements [get]
func (h *statementHandler) getStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.StatementRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	entries, err := h.statementService.GenerateStatement(c.Request.Context(), req.AccountNumber, req.StartDate, req.EndDate)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": dto.MsgAccountNotFound})
		default:
			logger.Error("Failed to generate statement", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate statement"})
		}
		return
	}

	c.JSON(http.StatusOK, toStatementEntries(entries))
}

func toStatementEntries(entries []domain.LedgerEntry) []dto.StatementEntry {
	out := make([]dto.StatementEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.StatementEntry{
			EntryID:         e.EntryID,
			TransactionType: string(e.EntryType),
			Amount:          e.Amount,
			Status:          string(e.Status),
			CreatedAt:       e.CreatedAt,
		})
	}
	return out
}
