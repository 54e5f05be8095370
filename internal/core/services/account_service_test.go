package services_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/Monique-199/BankingApplication/internal/apperrors"
	"github.com/Monique-199/BankingApplication/internal/core/domain"
	"github.com/Monique-199/BankingApplication/internal/core/services"
	"github.com/Monique-199/BankingApplication/internal/dto"
	"github.com/Monique-199/BankingApplication/internal/notifications"
)

// MockAccountRepository is a mock type for the AccountRepository interface
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) FindByAccountNumber(ctx context.Context, accountNumber string) (*domain.Account, error) {
	args := m.Called(ctx, accountNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockAccountRepository) ExistsByAccountNumber(ctx context.Context, accountNumber string) (bool, error) {
	args := m.Called(ctx, accountNumber)
	return args.Bool(0), args.Error(1)
}

// recordingMailer captures enqueued emails without delivering anything.
type recordingMailer struct {
	mu     sync.Mutex
	emails []notifications.Email
}

func (m *recordingMailer) Enqueue(email notifications.Email) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.emails = append(m.emails, email)
}

func (m *recordingMailer) all() []notifications.Email {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]notifications.Email(nil), m.emails...)
}

// --- Test Suite Setup ---

type AccountServiceTestSuite struct {
	suite.Suite
	mockRepo *MockAccountRepository
	mailer   *recordingMailer
	service  *services.AccountService
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockAccountRepository)
	suite.mailer = &recordingMailer{}
	suite.service = services.NewAccountService(suite.mockRepo, suite.mailer)
}

// --- Test Cases ---

func (suite *AccountServiceTestSuite) TestCreateAccount_Success() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		FirstName: "Jane",
		LastName:  "Doe",
		OtherName: "A",
		Email:     "jane@example.com",
		Password:  "s3cret-pass",
	}

	suite.mockRepo.On("ExistsByEmail", ctx, req.Email).Return(false, nil).Once()
	suite.mockRepo.On("ExistsByAccountNumber", ctx, mock.AnythingOfType("string")).Return(false, nil).Once()
	suite.mockRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	resp, err := suite.service.CreateAccount(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(resp)
	suite.Equal(dto.CodeAccountCreated, resp.ResponseCode)
	suite.Require().NotNil(resp.AccountInfo)
	suite.Equal("Jane Doe A", resp.AccountInfo.AccountName)
	suite.True(resp.AccountInfo.AccountBalance.IsZero())
	suite.Len(resp.AccountInfo.AccountNumber, 10)
	suite.Equal(time.Now().Format("2006"), resp.AccountInfo.AccountNumber[:4])

	saved := suite.mockRepo.Calls[2].Arguments.Get(1).(domain.Account)
	suite.Equal(domain.StatusActive, saved.Status)
	suite.NotEqual(req.Password, saved.PasswordHash)
	suite.NotEmpty(saved.PasswordHash)

	emails := suite.mailer.all()
	suite.Require().Len(emails, 1)
	suite.Equal(req.Email, emails[0].To)
	suite.Equal("ACCOUNT CREATION", emails[0].Subject)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_DuplicateEmail() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Password:  "s3cret-pass",
	}

	suite.mockRepo.On("ExistsByEmail", ctx, req.Email).Return(true, nil).Once()

	resp, err := suite.service.CreateAccount(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(dto.CodeAccountExists, resp.ResponseCode)
	suite.Equal(dto.MsgAccountExists, resp.ResponseMessage)
	suite.Nil(resp.AccountInfo)
	suite.Empty(suite.mailer.all())

	suite.mockRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_RetriesAccountNumberCollision() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Password:  "s3cret-pass",
	}

	suite.mockRepo.On("ExistsByEmail", ctx, req.Email).Return(false, nil).Once()
	// First candidate collides, second one is free.
	suite.mockRepo.On("ExistsByAccountNumber", ctx, mock.AnythingOfType("string")).Return(true, nil).Once()
	suite.mockRepo.On("ExistsByAccountNumber", ctx, mock.AnythingOfType("string")).Return(false, nil).Once()
	suite.mockRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	resp, err := suite.service.CreateAccount(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(dto.CodeAccountCreated, resp.ResponseCode)
	suite.mockRepo.AssertNumberOfCalls(suite.T(), "ExistsByAccountNumber", 2)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_ConcurrentDuplicateOnSave() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Password:  "s3cret-pass",
	}

	suite.mockRepo.On("ExistsByEmail", ctx, req.Email).Return(false, nil).Once()
	suite.mockRepo.On("ExistsByAccountNumber", ctx, mock.AnythingOfType("string")).Return(false, nil).Once()
	suite.mockRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(apperrors.ErrDuplicate).Once()

	resp, err := suite.service.CreateAccount(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(dto.CodeAccountExists, resp.ResponseCode)
	suite.Empty(suite.mailer.all())
}

func (suite *AccountServiceTestSuite) TestGetAccountByNumber_NotFound() {
	ctx := context.Background()
	suite.mockRepo.On("FindByAccountNumber", ctx, "2026999999").Return(nil, apperrors.ErrNotFound).Once()

	account, err := suite.service.GetAccountByNumber(ctx, "2026999999")

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(account)
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
