package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Monique-199/BankingApplication/internal/apperrors"
	"github.com/Monique-199/BankingApplication/internal/core/domain"
	portsrepo "github.com/Monique-199/BankingApplication/internal/core/ports/repositories"
	"github.com/Monique-199/BankingApplication/internal/dto"
	"github.com/Monique-199/BankingApplication/internal/middleware"
	"github.com/Monique-199/BankingApplication/internal/notifications"
	"github.com/Monique-199/BankingApplication/internal/utils"
)

// accountNumberAttempts bounds the retry loop when a freshly generated
// account number collides with an existing one.
const accountNumberAttempts = 5

// Mailer is the slice of the notification pipeline the services need.
// Deliveries are fire and forget.
type Mailer interface {
	Enqueue(email notifications.Email)
}

type AccountService struct {
	AccountRepository portsrepo.AccountRepository
	mailer            Mailer
}

func NewAccountService(repo portsrepo.AccountRepository, mailer Mailer) *AccountService {
	return &AccountService{AccountRepository: repo, mailer: mailer}
}

// CreateAccount provisions a bank account for a new customer. The outcome is
// reported through the response code: 001 when the email already has an
// account, 002 on success.
func (s *AccountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*dto.BankResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	exists, err := s.AccountRepository.ExistsByEmail(ctx, req.Email)
	if err != nil {
		logger.Error("Failed to check email existence", slog.String("error", err.Error()))
		return nil, err
	}
	if exists {
		return &dto.BankResponse{
			ResponseCode:    dto.CodeAccountExists,
			ResponseMessage: dto.MsgAccountExists,
		}, nil
	}

	now := time.Now()
	accountNumber, err := s.uniqueAccountNumber(ctx, now)
	if err != nil {
		logger.Error("Failed to allocate account number", slog.String("error", err.Error()))
		return nil, err
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		logger.Error("Failed to hash password", slog.String("error", err.Error()))
		return nil, err
	}

	account := domain.Account{
		AccountNumber:    accountNumber,
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		OtherName:        req.OtherName,
		Gender:           req.Gender,
		Address:          req.Address,
		StateOfOrigin:    req.StateOfOrigin,
		Email:            req.Email,
		PhoneNumber:      req.PhoneNumber,
		AlternativePhone: req.AlternativePhone,
		PasswordHash:     passwordHash,
		Status:           domain.StatusActive,
		Balance:          decimal.Zero,
		AuditFields: domain.AuditFields{
			CreatedAt:  now,
			ModifiedAt: now,
		},
	}

	if err := s.AccountRepository.SaveAccount(ctx, account); err != nil {
		// A concurrent signup with the same email lands here.
		if errors.Is(err, apperrors.ErrDuplicate) {
			return &dto.BankResponse{
				ResponseCode:    dto.CodeAccountExists,
				ResponseMessage: dto.MsgAccountExists,
			}, nil
		}
		logger.Error("Failed to save account", slog.String("error", err.Error()), slog.String("account_number", accountNumber))
		return nil, err
	}

	logger.Info("Account created", slog.String("account_number", accountNumber))

	if s.mailer != nil {
		s.mailer.Enqueue(notifications.Email{
			To:      account.Email,
			Subject: "ACCOUNT CREATION",
			Body: fmt.Sprintf("Congratulations! Your account has been successfully created.\nAccount Name: %s\nAccount Number: %s",
				account.FullName(), account.AccountNumber),
		})
	}

	return &dto.BankResponse{
		ResponseCode:    dto.CodeAccountCreated,
		ResponseMessage: dto.MsgAccountCreated,
		AccountInfo: &dto.AccountInfo{
			AccountName:    account.FullName(),
			AccountBalance: account.Balance,
			AccountNumber:  account.AccountNumber,
		},
	}, nil
}

// GetAccountByEmail is used by the login flow.
func (s *AccountService) GetAccountByEmail(ctx context.Context, email string) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	account, err := s.AccountRepository.FindByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find account by email", slog.String("error", err.Error()))
		}
		return nil, err
	}
	return account, nil
}

func (s *AccountService) GetAccountByNumber(ctx context.Context, accountNumber string) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	account, err := s.AccountRepository.FindByAccountNumber(ctx, accountNumber)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find account", slog.String("error", err.Error()), slog.String("account_number", accountNumber))
		}
		return nil, err
	}
	return account, nil
}

func (s *AccountService) uniqueAccountNumber(ctx context.Context, now time.Time) (string, error) {
	for attempt := 0; attempt < accountNumberAttempts; attempt++ {
		candidate, err := utils.GenerateAccountNumber(now)
		if err != nil {
			return "", err
		}
		taken, err := s.AccountRepository.ExistsByAccountNumber(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("could not allocate a unique account number after %d attempts", accountNumberAttempts)
}
