package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Monique-199/BankingApplication/internal/apperrors"
	"github.com/Monique-199/BankingApplication/internal/core/domain"
	"github.com/Monique-199/BankingApplication/internal/core/services"
	"github.com/Monique-199/BankingApplication/internal/dto"
	"github.com/Monique-199/BankingApplication/internal/repositories/memory"
	"github.com/Monique-199/BankingApplication/internal/utils"
)

const testJWTSecret = "test-secret-key"

func seedLoginAccount(t *testing.T, repo *memory.AccountRepository, email, password string) domain.Account {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)
	account := domain.Account{
		AccountNumber: "2026111111",
		FirstName:     "Jane",
		LastName:      "Doe",
		Email:         email,
		PasswordHash:  hash,
		Status:        domain.StatusActive,
	}
	require.NoError(t, repo.SaveAccount(context.Background(), account))
	return account
}

func TestLoginSuccess(t *testing.T) {
	repo := memory.NewAccountRepository()
	mailer := &recordingMailer{}
	account := seedLoginAccount(t, repo, "jane@example.com", "s3cret-pass")
	svc := services.NewAuthService(repo, mailer, testJWTSecret, time.Hour, "bankapp")

	token, err := svc.Login(context.Background(), dto.LoginRequest{Email: "jane@example.com", Password: "s3cret-pass"})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := utils.ParseAndValidateJWT(token, testJWTSecret)
	require.NoError(t, err)
	assert.Equal(t, account.AccountNumber, claims.Subject)
	assert.Equal(t, "bankapp", claims.Issuer)

	emails := mailer.all()
	require.Len(t, emails, 1)
	assert.Equal(t, "You're logged in!", emails[0].Subject)
}

func TestLoginWrongPassword(t *testing.T) {
	repo := memory.NewAccountRepository()
	seedLoginAccount(t, repo, "jane@example.com", "s3cret-pass")
	svc := services.NewAuthService(repo, nil, testJWTSecret, time.Hour, "bankapp")

	_, err := svc.Login(context.Background(), dto.LoginRequest{Email: "jane@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestLoginUnknownEmail(t *testing.T) {
	repo := memory.NewAccountRepository()
	svc := services.NewAuthService(repo, nil, testJWTSecret, time.Hour, "bankapp")

	_, err := svc.Login(context.Background(), dto.LoginRequest{Email: "nobody@example.com", Password: "whatever"})
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}
