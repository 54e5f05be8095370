package services

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/Monique-199/BankingApplication/internal/apperrors"
	"github.com/Monique-199/BankingApplication/internal/core/domain"
	portsrepo "github.com/Monique-199/BankingApplication/internal/core/ports/repositories"
	"github.com/Monique-199/BankingApplication/internal/middleware"
	"github.com/Monique-199/BankingApplication/internal/notifications"
	"github.com/Monique-199/BankingApplication/internal/pdf"
)

const statementDateLayout = "2006-01-02"

// StatementService produces account statements for a date range: the entry
// list for the API response, a rendered PDF on disk, and an email with the
// PDF attached.
type StatementService struct {
	AccountRepository portsrepo.AccountRepository
	LedgerRepository  portsrepo.LedgerRepository
	mailer            Mailer
	statementDir      string
	bankName          string
	bankAddress       string
}

func NewStatementService(accountRepo portsrepo.AccountRepository, ledgerRepo portsrepo.LedgerRepository, mailer Mailer, statementDir, bankName, bankAddress string) *StatementService {
	return &StatementService{
		AccountRepository: accountRepo,
		LedgerRepository:  ledgerRepo,
		mailer:            mailer,
		statementDir:      statementDir,
		bankName:          bankName,
		bankAddress:       bankAddress,
	}
}

// GenerateStatement returns the ledger entries for the period. Both dates are
// inclusive. PDF rendering and the email are side effects: a failure there is
// logged but does not fail the request.
func (s *StatementService) GenerateStatement(ctx context.Context, accountNumber, startDate, endDate string) ([]domain.LedgerEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	from, err := time.Parse(statementDateLayout, startDate)
	if err != nil {
		return nil, apperrors.NewAppError(400, "invalid start date", apperrors.ErrValidation)
	}
	to, err := time.Parse(statementDateLayout, endDate)
	if err != nil {
		return nil, apperrors.NewAppError(400, "invalid end date", apperrors.ErrValidation)
	}
	if to.Before(from) {
		return nil, apperrors.NewAppError(400, "end date precedes start date", apperrors.ErrValidation)
	}
	// End of the last day keeps the range inclusive.
	to = to.AddDate(0, 0, 1).Add(-time.Nanosecond)

	account, err := s.AccountRepository.FindByAccountNumber(ctx, accountNumber)
	if err != nil {
		return nil, err
	}

	entries, err := s.LedgerRepository.ListEntries(ctx, accountNumber, from, to)
	if err != nil {
		logger.Error("Failed to list ledger entries", slog.String("error", err.Error()), slog.String("account_number", accountNumber))
		return nil, err
	}

	path, err := s.renderToFile(*account, from, to, entries)
	if err != nil {
		logger.Error("Failed to render statement PDF", slog.String("error", err.Error()), slog.String("account_number", accountNumber))
		return entries, nil
	}
	logger.Info("Statement rendered", slog.String("account_number", accountNumber), slog.String("path", path))

	if s.mailer != nil && account.Email != "" {
		s.mailer.Enqueue(notifications.Email{
			To:          account.Email,
			Subject:     "STATEMENT OF ACCOUNT",
			Body:        "Kindly find your requested account statement attached.",
			Attachments: []string{path},
		})
	}

	return entries, nil
}

func (s *StatementService) renderToFile(account domain.Account, from, to time.Time, entries []domain.LedgerEntry) (string, error) {
	if err := os.MkdirAll(s.statementDir, 0o755); err != nil {
		return "", err
	}

	name := fmt.Sprintf("statement_%s_%s.pdf", account.AccountNumber, time.Now().Format("20060102T150405"))
	path := filepath.Join(s.statementDir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	data := pdf.StatementData{
		BankName:        s.bankName,
		BankAddress:     s.bankAddress,
		CustomerName:    account.FullName(),
		CustomerAddress: account.Address,
		AccountNumber:   account.AccountNumber,
		From:            from,
		To:              to,
		Entries:         entries,
	}
	if err := pdf.RenderStatement(f, data); err != nil {
		return "", err
	}
	return path, nil
}
