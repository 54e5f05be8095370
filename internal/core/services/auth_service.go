package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/Monique-199/BankingApplication/internal/apperrors"
	portsrepo "github.com/Monique-199/BankingApplication/internal/core/ports/repositories"
	"github.com/Monique-199/BankingApplication/internal/dto"
	"github.com/Monique-199/BankingApplication/internal/middleware"
	"github.com/Monique-199/BankingApplication/internal/notifications"
	"github.com/Monique-199/BankingApplication/internal/utils"
)

// AuthService authenticates customers and issues bearer tokens. The token
// subject is the account number, which the auth middleware extracts for
// request scoping.
type AuthService struct {
	AccountRepository portsrepo.AccountRepository
	mailer            Mailer
	jwtSecret         string
	jwtExpiry         time.Duration
	jwtIssuer         string
}

func NewAuthService(repo portsrepo.AccountRepository, mailer Mailer, jwtSecret string, jwtExpiry time.Duration, jwtIssuer string) *AuthService {
	return &AuthService{
		AccountRepository: repo,
		mailer:            mailer,
		jwtSecret:         jwtSecret,
		jwtExpiry:         jwtExpiry,
		jwtIssuer:         jwtIssuer,
	}
}

// Login verifies the credentials and returns a signed token. Unknown emails
// and wrong passwords both map to ErrUnauthorized so the response does not
// leak which one failed.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (string, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	account, err := s.AccountRepository.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", apperrors.ErrUnauthorized
		}
		logger.Error("Failed to look up account for login", slog.String("error", err.Error()))
		return "", err
	}

	if !utils.CheckPasswordHash(req.Password, account.PasswordHash) {
		return "", apperrors.ErrUnauthorized
	}

	token, err := utils.GenerateJWT(account.AccountNumber, s.jwtSecret, s.jwtExpiry, s.jwtIssuer)
	if err != nil {
		logger.Error("Failed to sign token", slog.String("error", err.Error()))
		return "", err
	}

	logger.Info("Customer logged in", slog.String("account_number", account.AccountNumber))

	if s.mailer != nil {
		s.mailer.Enqueue(notifications.Email{
			To:      account.Email,
			Subject: "You're logged in!",
			Body:    "You logged into your account. If you did not initiate this request, please contact your bank immediately.",
		})
	}

	return token, nil
}
