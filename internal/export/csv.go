package export

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/billsnap/billsnap/internal/entity"
)

// Dates in CSV output use the US short form the mobile app displays.
const csvDateLayout = "1/2/2006"

// MethodLabel resolves a payment method id to a display label. A nil func
// or an unknown id yields the empty string.
type MethodLabel func(uuid.UUID) string

// BuildReceiptsCSV renders receipts as CSV with a header row.
func BuildReceiptsCSV(receipts []*entity.Receipt, label MethodLabel) string {
	rows := [][]string{{"Vendor", "Amount", "Date", "Payment Method", "Notes"}}
	for _, r := range receipts {
		rows = append(rows, []string{
			quote(r.VendorName),
			fmt.Sprintf("%.2f", r.Amount),
			r.ReceiptDate.Format(csvDateLayout),
			quote(methodFor(r.PaymentMethodID, label)),
			quote(strOrEmpty(r.Notes)),
		})
	}
	return joinRows(rows)
}

// BuildBillsCSV renders bills as CSV with a header row. Paid state renders
// as Paid/Unpaid with an empty paid date for open bills.
func BuildBillsCSV(bills []*entity.Bill) string {
	rows := [][]string{{"Vendor", "Amount", "Due Date", "Status", "Paid Date", "Notes"}}
	for _, b := range bills {
		paidDate := ""
		if b.PaidDate != nil {
			paidDate = b.PaidDate.Format(csvDateLayout)
		}
		rows = append(rows, []string{
			quote(b.VendorName),
			fmt.Sprintf("%.2f", b.Amount),
			b.DueDate.Format(csvDateLayout),
			paidStatus(b.Paid),
			paidDate,
			quote(strOrEmpty(b.Notes)),
		})
	}
	return joinRows(rows)
}

// BuildExpensesCSV renders receipts and bills as one combined expense
// report. Receipts are always Paid; bills carry their own state.
func BuildExpensesCSV(receipts []*entity.Receipt, bills []*entity.Bill, label MethodLabel) string {
	rows := [][]string{{"Type", "Vendor", "Amount", "Date", "Status", "Payment Method", "Notes"}}
	for _, r := range receipts {
		rows = append(rows, []string{
			"Receipt",
			quote(r.VendorName),
			fmt.Sprintf("%.2f", r.Amount),
			r.ReceiptDate.Format(csvDateLayout),
			"Paid",
			quote(methodFor(r.PaymentMethodID, label)),
			quote(strOrEmpty(r.Notes)),
		})
	}
	for _, b := range bills {
		rows = append(rows, []string{
			"Bill",
			quote(b.VendorName),
			fmt.Sprintf("%.2f", b.Amount),
			b.DueDate.Format(csvDateLayout),
			paidStatus(b.Paid),
			quote(""),
			quote(strOrEmpty(b.Notes)),
		})
	}
	return joinRows(rows)
}

func paidStatus(paid bool) string {
	if paid {
		return "Paid"
	}
	return "Unpaid"
}

func methodFor(id *uuid.UUID, label MethodLabel) string {
	if id == nil || label == nil {
		return ""
	}
	return label(*id)
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func joinRows(rows [][]string) string {
	lines := make([]string, len(rows))
	for i, row := range rows {
		lines[i] = strings.Join(row, ",")
	}
	return strings.Join(lines, "\n")
}
