package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Monique-199/BankingApplication/internal/core/services"
	"github.com/Monique-199/BankingApplication/internal/dto"
	"github.com/Monique-199/BankingApplication/internal/handlers"
	"github.com/Monique-199/BankingApplication/internal/platform/config"
	"github.com/Monique-199/BankingApplication/internal/repositories/memory"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		JWTSecret:         "test-secret",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "bankapp",
		IsProduction:      true,
	}

	repos := memory.NewRepositoryProvider()
	svcs := handlers.Services{
		Account:   services.NewAccountService(repos.AccountRepo, nil),
		Ledger:    services.NewLedgerService(repos.AccountRepo, repos.LedgerRepo, nil, nil, nil),
		Auth:      services.NewAuthService(repos.AccountRepo, nil, cfg.JWTSecret, cfg.JWTExpiryDuration, cfg.JWTIssuer),
		Statement: services.NewStatementService(repos.AccountRepo, repos.LedgerRepo, nil, t.TempDir(), "Kerubo Bank", "72, Keroka, Kisii, Kenya"),
	}

	r := gin.New()
	handlers.RegisterRoutes(r, cfg, svcs)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBankResponse(t *testing.T, w *httptest.ResponseRecorder) dto.BankResponse {
	t.Helper()
	var resp dto.BankResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func createTestAccount(t *testing.T, r *gin.Engine, email string) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/v1/accounts", "", dto.CreateAccountRequest{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     email,
		Password:  "s3cret-pass",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	resp := decodeBankResponse(t, w)
	require.Equal(t, dto.CodeAccountCreated, resp.ResponseCode)
	require.NotNil(t, resp.AccountInfo)
	return resp.AccountInfo.AccountNumber
}

func loginTestAccount(t *testing.T, r *gin.Engine, email string) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/v1/auth/login", "", dto.LoginRequest{
		Email:    email,
		Password: "s3cret-pass",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp dto.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestAccountLifecycleOverHTTP(t *testing.T) {
	r := newTestRouter(t)

	number := createTestAccount(t, r, "jane@example.com")
	assert.Len(t, number, 10)

	// Duplicate signup reports code 001 instead of creating a second account.
	w := doJSON(t, r, http.MethodPost, "/api/v1/accounts", "", dto.CreateAccountRequest{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Password:  "s3cret-pass",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, dto.CodeAccountExists, decodeBankResponse(t, w).ResponseCode)

	token := loginTestAccount(t, r, "jane@example.com")

	// Credit, then debit more than the balance, then check the balance.
	w = doJSON(t, r, http.MethodPost, "/api/v1/accounts/credit", token, map[string]any{
		"accountNumber": number,
		"amount":        "100.50",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resp := decodeBankResponse(t, w)
	assert.Equal(t, dto.CodeAccountCredited, resp.ResponseCode)
	assert.True(t, resp.AccountInfo.AccountBalance.Equal(decimal.RequireFromString("100.50")))

	w = doJSON(t, r, http.MethodPost, "/api/v1/accounts/debit", token, map[string]any{
		"accountNumber": number,
		"amount":        "200",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, dto.CodeInsufficientFunds, decodeBankResponse(t, w).ResponseCode)

	w = doJSON(t, r, http.MethodGet, "/api/v1/accounts/balance?accountNumber="+number, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp = decodeBankResponse(t, w)
	assert.Equal(t, dto.CodeAccountFound, resp.ResponseCode)
	assert.True(t, resp.AccountInfo.AccountBalance.Equal(decimal.RequireFromString("100.50")))

	// Omitting the account number falls back to the authenticated account.
	w = doJSON(t, r, http.MethodGet, "/api/v1/accounts/balance", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp = decodeBankResponse(t, w)
	assert.Equal(t, number, resp.AccountInfo.AccountNumber)
}

func TestTransferOverHTTP(t *testing.T) {
	r := newTestRouter(t)

	src := createTestAccount(t, r, "src@example.com")
	dst := createTestAccount(t, r, "dst@example.com")
	token := loginTestAccount(t, r, "src@example.com")

	w := doJSON(t, r, http.MethodPost, "/api/v1/accounts/credit", token, map[string]any{
		"accountNumber": src,
		"amount":        "100",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/v1/accounts/transfer", token, map[string]any{
		"sourceAccountNumber":      src,
		"destinationAccountNumber": dst,
		"amount":                   "40",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, dto.CodeTransferSuccessful, decodeBankResponse(t, w).ResponseCode)

	w = doJSON(t, r, http.MethodGet, "/api/v1/accounts/balance?accountNumber="+dst, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decodeBankResponse(t, w).AccountInfo.AccountBalance.Equal(decimal.NewFromInt(40)))
}

func TestStatementOverHTTP(t *testing.T) {
	r := newTestRouter(t)

	number := createTestAccount(t, r, "jane@example.com")
	token := loginTestAccount(t, r, "jane@example.com")

	w := doJSON(t, r, http.MethodPost, "/api/v1/accounts/credit", token, map[string]any{
		"accountNumber": number,
		"amount":        "75",
	})
	require.Equal(t, http.StatusOK, w.Code)

	today := time.Now().Format("2006-01-02")
	w = doJSON(t, r, http.MethodGet, "/api/v1/statements?accountNumber="+number+"&startDate="+today+"&endDate="+today, token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var entries []dto.StatementEntry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "CREDIT", entries[0].TransactionType)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	r := newTestRouter(t)
	number := createTestAccount(t, r, "jane@example.com")

	w := doJSON(t, r, http.MethodGet, "/api/v1/accounts/balance?accountNumber="+number, "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/v1/accounts/credit", "not-a-token", map[string]any{
		"accountNumber": number,
		"amount":        "10",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	r := newTestRouter(t)
	createTestAccount(t, r, "jane@example.com")

	w := doJSON(t, r, http.MethodPost, "/api/v1/auth/login", "", dto.LoginRequest{
		Email:    "jane@example.com",
		Password: "wrong-pass",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
