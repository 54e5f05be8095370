// Package pdf renders account statements.
package pdf

import (
	"io"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/Monique-199/BankingApplication/internal/core/domain"
)

const dateLayout = "2006-01-02"

// StatementData carries everything the statement layout needs.
type StatementData struct {
	BankName        string
	BankAddress     string
	CustomerName    string
	CustomerAddress string
	AccountNumber   string
	From            time.Time
	To              time.Time
	Entries         []domain.LedgerEntry
}

// RenderStatement writes an A4 statement to w: bank letterhead, statement
// period, customer block, then one table row per ledger entry.
func RenderStatement(w io.Writer, data StatementData) error {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.AddPage()

	doc.SetFillColor(0, 0, 102)
	doc.SetTextColor(255, 255, 255)
	doc.SetFont("Helvetica", "B", 18)
	doc.CellFormat(0, 14, data.BankName, "", 1, "C", true, 0, "")
	doc.SetFont("Helvetica", "", 10)
	doc.CellFormat(0, 8, data.BankAddress, "", 1, "C", true, 0, "")
	doc.Ln(4)

	doc.SetTextColor(0, 0, 0)
	doc.SetFont("Helvetica", "", 10)
	doc.CellFormat(95, 6, "Start Date: "+data.From.Format(dateLayout), "", 0, "L", false, 0, "")
	doc.SetFont("Helvetica", "B", 11)
	doc.CellFormat(95, 6, "STATEMENT OF ACCOUNT", "", 1, "R", false, 0, "")
	doc.SetFont("Helvetica", "", 10)
	doc.CellFormat(95, 6, "End Date: "+data.To.Format(dateLayout), "", 0, "L", false, 0, "")
	doc.CellFormat(95, 6, "Customer Name: "+data.CustomerName, "", 1, "R", false, 0, "")
	doc.CellFormat(95, 6, "Account Number: "+data.AccountNumber, "", 0, "L", false, 0, "")
	doc.CellFormat(95, 6, "Customer Address: "+data.CustomerAddress, "", 1, "R", false, 0, "")
	doc.Ln(6)

	doc.SetFillColor(0, 0, 102)
	doc.SetTextColor(255, 255, 255)
	doc.SetFont("Helvetica", "B", 10)
	doc.CellFormat(47, 8, "DATE", "1", 0, "C", true, 0, "")
	doc.CellFormat(47, 8, "TRANSACTION TYPE", "1", 0, "C", true, 0, "")
	doc.CellFormat(48, 8, "TRANSACTION AMOUNT", "1", 0, "C", true, 0, "")
	doc.CellFormat(48, 8, "STATUS", "1", 1, "C", true, 0, "")

	doc.SetTextColor(0, 0, 0)
	doc.SetFont("Helvetica", "", 10)
	for _, entry := range data.Entries {
		doc.CellFormat(47, 7, entry.CreatedAt.Format(dateLayout), "1", 0, "C", false, 0, "")
		doc.CellFormat(47, 7, string(entry.EntryType), "1", 0, "C", false, 0, "")
		doc.CellFormat(48, 7, entry.Amount.StringFixed(2), "1", 0, "R", false, 0, "")
		doc.CellFormat(48, 7, string(entry.Status), "1", 1, "C", false, 0, "")
	}
	if len(data.Entries) == 0 {
		doc.CellFormat(190, 7, "No transactions in the selected period", "1", 1, "C", false, 0, "")
	}

	return doc.Output(w)
}
