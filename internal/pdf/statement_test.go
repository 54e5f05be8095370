package pdf

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Monique-199/BankingApplication/internal/core/domain"
)

func TestRenderStatementProducesPDF(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	data := StatementData{
		BankName:        "Kerubo Bank",
		BankAddress:     "72, Keroka, Kisii, Kenya",
		CustomerName:    "Jane A Doe",
		CustomerAddress: "14 Riverside Drive",
		AccountNumber:   "2026123456",
		From:            now.AddDate(0, -1, 0),
		To:              now,
		Entries: []domain.LedgerEntry{
			{EntryID: "e1", EntryType: domain.Credit, AccountNumber: "2026123456", Amount: decimal.NewFromInt(500), Status: domain.EntryStatusSuccess, CreatedAt: now.AddDate(0, 0, -5)},
			{EntryID: "e2", EntryType: domain.Debit, AccountNumber: "2026123456", Amount: decimal.NewFromInt(120), Status: domain.EntryStatusSuccess, CreatedAt: now.AddDate(0, 0, -2)},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, RenderStatement(&buf, data))

	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
	assert.Greater(t, buf.Len(), 500)
}

func TestRenderStatementEmptyPeriod(t *testing.T) {
	var buf bytes.Buffer
	err := RenderStatement(&buf, StatementData{
		BankName:      "Kerubo Bank",
		AccountNumber: "2026123456",
		From:          time.Now().AddDate(0, -1, 0),
		To:            time.Now(),
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}
