package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Monique-199/BankingApplication/internal/apperrors"
	"github.com/Monique-199/BankingApplication/internal/core/domain"
	portsrepo "github.com/Monique-199/BankingApplication/internal/core/ports/repositories"
	"github.com/Monique-199/BankingApplication/internal/dto"
	"github.com/Monique-199/BankingApplication/internal/events/kafka"
	"github.com/Monique-199/BankingApplication/internal/middleware"
	"github.com/Monique-199/BankingApplication/internal/notifications"
	"github.com/Monique-199/BankingApplication/internal/platform/metrics"
)

// EventPublisher emits committed mutations to the event stream. Publishing
// happens after commit, so failures are logged and never unwind a mutation.
type EventPublisher interface {
	Publish(ctx context.Context, event kafka.TransactionEvent) error
}

// LedgerService applies balance mutations. Every mutation goes through the
// ledger repository, which owns atomicity and balance preconditions; this
// layer maps outcomes to response codes and fans out notifications.
type LedgerService struct {
	AccountRepository portsrepo.AccountRepository
	LedgerRepository  portsrepo.LedgerRepository
	mailer            Mailer
	collector         *metrics.Collector
	publisher         EventPublisher
}

func NewLedgerService(accountRepo portsrepo.AccountRepository, ledgerRepo portsrepo.LedgerRepository, mailer Mailer, collector *metrics.Collector, publisher EventPublisher) *LedgerService {
	return &LedgerService{
		AccountRepository: accountRepo,
		LedgerRepository:  ledgerRepo,
		mailer:            mailer,
		collector:         collector,
		publisher:         publisher,
	}
}

// BalanceInquiry reports the current balance: 003 when the account does not
// exist, 004 otherwise.
func (s *LedgerService) BalanceInquiry(ctx context.Context, req dto.InquiryRequest) (*dto.BankResponse, error) {
	account, err := s.AccountRepository.FindByAccountNumber(ctx, req.AccountNumber)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return accountNotFoundResponse(), nil
		}
		return nil, err
	}
	return &dto.BankResponse{
		ResponseCode:    dto.CodeAccountFound,
		ResponseMessage: dto.MsgAccountFound,
		AccountInfo:     accountInfoOf(*account),
	}, nil
}

// NameInquiry returns the account holder's full name.
func (s *LedgerService) NameInquiry(ctx context.Context, accountNumber string) (string, error) {
	account, err := s.AccountRepository.FindByAccountNumber(ctx, accountNumber)
	if err != nil {
		return "", err
	}
	return account.FullName(), nil
}

// CreditAccount adds funds to an account: 003 when the account does not
// exist, 005 on success.
func (s *LedgerService) CreditAccount(ctx context.Context, req dto.CreditDebitRequest) (*dto.BankResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	start := time.Now()

	legs := []domain.Leg{{AccountNumber: req.AccountNumber, EntryType: domain.Credit, Amount: req.Amount}}
	updated, err := s.LedgerRepository.ApplyMutation(ctx, legs, start)
	if err != nil {
		return s.mapMutationError(ctx, "credit", err)
	}

	account := updated[req.AccountNumber]
	s.recordMutation("credit", start)
	logger.Info("Account credited", slog.String("account_number", req.AccountNumber), slog.String("amount", req.Amount.String()))

	s.notifyAlert(account, "CREDIT ALERT",
		fmt.Sprintf("The sum of %s has been credited to your account. Your current balance is %s.",
			req.Amount.StringFixed(2), account.Balance.StringFixed(2)))
	s.publishEvent(ctx, kafka.TransactionEvent{
		EventID:       uuid.NewString(),
		Operation:     "credit",
		AccountNumber: req.AccountNumber,
		Amount:        req.Amount,
		Status:        string(domain.EntryStatusSuccess),
		OccurredAt:    start,
	})

	return &dto.BankResponse{
		ResponseCode:    dto.CodeAccountCredited,
		ResponseMessage: dto.MsgAccountCredited,
		AccountInfo:     accountInfoOf(account),
	}, nil
}

// DebitAccount withdraws funds: 003 when the account does not exist, 006
// when the balance cannot cover the amount, 007 on success. A rejected debit
// leaves the balance untouched and logs no ledger entry.
func (s *LedgerService) DebitAccount(ctx context.Context, req dto.CreditDebitRequest) (*dto.BankResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	start := time.Now()

	legs := []domain.Leg{{AccountNumber: req.AccountNumber, EntryType: domain.Debit, Amount: req.Amount}}
	updated, err := s.LedgerRepository.ApplyMutation(ctx, legs, start)
	if err != nil {
		return s.mapMutationError(ctx, "debit", err)
	}

	account := updated[req.AccountNumber]
	s.recordMutation("debit", start)
	logger.Info("Account debited", slog.String("account_number", req.AccountNumber), slog.String("amount", req.Amount.String()))

	s.notifyAlert(account, "DEBIT ALERT",
		fmt.Sprintf("The sum of %s has been debited from your account. Your current balance is %s.",
			req.Amount.StringFixed(2), account.Balance.StringFixed(2)))
	s.publishEvent(ctx, kafka.TransactionEvent{
		EventID:       uuid.NewString(),
		Operation:     "debit",
		AccountNumber: req.AccountNumber,
		Amount:        req.Amount,
		Status:        string(domain.EntryStatusSuccess),
		OccurredAt:    start,
	})

	return &dto.BankResponse{
		ResponseCode:    dto.CodeAccountDebited,
		ResponseMessage: dto.MsgAccountDebited,
		AccountInfo:     accountInfoOf(account),
	}, nil
}

// Transfer moves funds between two accounts in a single transaction. Either
// both legs commit or neither does: 003 when either account does not exist,
// 006 when the source balance cannot cover the amount, 008 on success.
func (s *LedgerService) Transfer(ctx context.Context, req dto.TransferRequest) (*dto.BankResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.SourceAccountNumber == req.DestinationAccountNumber {
		return nil, apperrors.NewAppError(400, "source and destination accounts must differ", apperrors.ErrValidation)
	}

	start := time.Now()
	legs := []domain.Leg{
		{AccountNumber: req.SourceAccountNumber, EntryType: domain.Debit, Amount: req.Amount},
		{AccountNumber: req.DestinationAccountNumber, EntryType: domain.Credit, Amount: req.Amount},
	}
	updated, err := s.LedgerRepository.ApplyMutation(ctx, legs, start)
	if err != nil {
		return s.mapMutationError(ctx, "transfer", err)
	}

	source := updated[req.SourceAccountNumber]
	destination := updated[req.DestinationAccountNumber]
	s.recordMutation("transfer", start)
	logger.Info("Transfer completed",
		slog.String("source", req.SourceAccountNumber),
		slog.String("destination", req.DestinationAccountNumber),
		slog.String("amount", req.Amount.String()))

	s.notifyAlert(source, "DEBIT ALERT",
		fmt.Sprintf("The sum of %s has been transferred to %s. Your current balance is %s.",
			req.Amount.StringFixed(2), destination.FullName(), source.Balance.StringFixed(2)))
	s.notifyAlert(destination, "CREDIT ALERT",
		fmt.Sprintf("The sum of %s has been sent to your account from %s. Your current balance is %s.",
			req.Amount.StringFixed(2), source.FullName(), destination.Balance.StringFixed(2)))
	s.publishEvent(ctx, kafka.TransactionEvent{
		EventID:                  uuid.NewString(),
		Operation:                "transfer",
		AccountNumber:            req.SourceAccountNumber,
		DestinationAccountNumber: req.DestinationAccountNumber,
		Amount:                   req.Amount,
		Status:                   string(domain.EntryStatusSuccess),
		OccurredAt:               start,
	})

	return &dto.BankResponse{
		ResponseCode:    dto.CodeTransferSuccessful,
		ResponseMessage: dto.MsgTransferSuccessful,
	}, nil
}

// mapMutationError turns business preconditions into coded responses and
// passes everything else through as an error.
func (s *LedgerService) mapMutationError(ctx context.Context, operation string, err error) (*dto.BankResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		s.recordRejection(operation, "account_not_found")
		return accountNotFoundResponse(), nil
	case errors.Is(err, apperrors.ErrInsufficientBalance):
		s.recordRejection(operation, "insufficient_balance")
		return &dto.BankResponse{
			ResponseCode:    dto.CodeInsufficientFunds,
			ResponseMessage: dto.MsgInsufficientFunds,
		}, nil
	default:
		if !errors.Is(err, apperrors.ErrValidation) {
			logger.Error("Ledger mutation failed", slog.String("operation", operation), slog.String("error", err.Error()))
		}
		return nil, err
	}
}

func (s *LedgerService) recordMutation(operation string, start time.Time) {
	if s.collector != nil {
		s.collector.RecordMutation(operation, time.Since(start))
	}
}

func (s *LedgerService) recordRejection(operation, reason string) {
	if s.collector != nil {
		s.collector.RecordRejection(operation, reason)
	}
}

func (s *LedgerService) notifyAlert(account domain.Account, subject, body string) {
	if s.mailer == nil || account.Email == "" {
		return
	}
	s.mailer.Enqueue(notifications.Email{To: account.Email, Subject: subject, Body: body})
}

func (s *LedgerService) publishEvent(ctx context.Context, event kafka.TransactionEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to publish transaction event", slog.String("error", err.Error()))
	}
}

func accountNotFoundResponse() *dto.BankResponse {
	return &dto.BankResponse{
		ResponseCode:    dto.CodeAccountNotFound,
		ResponseMessage: dto.MsgAccountNotFound,
	}
}

func accountInfoOf(account domain.Account) *dto.AccountInfo {
	return &dto.AccountInfo{
		AccountName:    account.FullName(),
		AccountBalance: account.Balance,
		AccountNumber:  account.AccountNumber,
	}
}
