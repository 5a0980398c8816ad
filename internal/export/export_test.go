package export

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/billsnap/billsnap/internal/entity"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func strptr(s string) *string { return &s }

func TestBuildReceiptsCSV(t *testing.T) {
	pmID := uuid.New()
	receipts := []*entity.Receipt{
		{
			VendorName:      "Duke Energy",
			Amount:          125.5,
			ReceiptDate:     date(2024, 6, 15),
			PaymentMethodID: &pmID,
			Notes:           strptr(`monthly "estimate"`),
		},
		{
			VendorName:  "KFB",
			Amount:      45,
			ReceiptDate: date(2024, 5, 1),
		},
	}
	label := func(id uuid.UUID) string {
		if id == pmID {
			return "VISA ****1111"
		}
		return ""
	}

	got := BuildReceiptsCSV(receipts, label)
	lines := strings.Split(got, "\n")
	if len(lines) != 3 {
		t.Fatalf("lines = %d, want 3", len(lines))
	}
	if lines[0] != "Vendor,Amount,Date,Payment Method,Notes" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != `"Duke Energy",125.50,6/15/2024,"VISA ****1111","monthly ""estimate"""` {
		t.Errorf("row 1 = %q", lines[1])
	}
	if lines[2] != `"KFB",45.00,5/1/2024,"",""` {
		t.Errorf("row 2 = %q", lines[2])
	}
}

func TestBuildBillsCSV(t *testing.T) {
	paidDate := date(2024, 6, 10)
	bills := []*entity.Bill{
		{VendorName: "Verizon", Amount: 89.99, DueDate: date(2024, 7, 1)},
		{VendorName: "Comcast", Amount: 120, DueDate: date(2024, 6, 1), Paid: true, PaidDate: &paidDate},
	}

	got := BuildBillsCSV(bills)
	lines := strings.Split(got, "\n")
	if lines[0] != "Vendor,Amount,Due Date,Status,Paid Date,Notes" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != `"Verizon",89.99,7/1/2024,Unpaid,,""` {
		t.Errorf("unpaid row = %q", lines[1])
	}
	if lines[2] != `"Comcast",120.00,6/1/2024,Paid,6/10/2024,""` {
		t.Errorf("paid row = %q", lines[2])
	}
}

func TestBuildExpensesCSV(t *testing.T) {
	receipts := []*entity.Receipt{
		{VendorName: "KFB", Amount: 45, ReceiptDate: date(2024, 5, 1)},
	}
	bills := []*entity.Bill{
		{VendorName: "Duke Energy", Amount: 125.5, DueDate: date(2024, 6, 15)},
	}

	got := BuildExpensesCSV(receipts, bills, nil)
	lines := strings.Split(got, "\n")
	if len(lines) != 3 {
		t.Fatalf("lines = %d, want 3", len(lines))
	}
	if lines[0] != "Type,Vendor,Amount,Date,Status,Payment Method,Notes" {
		t.Errorf("header = %q", lines[0])
	}
	// receipts first, then bills
	if !strings.HasPrefix(lines[1], `Receipt,"KFB",45.00,5/1/2024,Paid`) {
		t.Errorf("receipt row = %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], `Bill,"Duke Energy",125.50,6/15/2024,Unpaid`) {
		t.Errorf("bill row = %q", lines[2])
	}
}

func TestArchiveFileName(t *testing.T) {
	tests := []struct {
		name     string
		vendor   string
		amount   float64
		date     time.Time
		lastFour string
		want     string
	}{
		{"multi word vendor", "Duke Energy", 125.50, date(2024, 6, 15), "", "DUK_12550_06152024"},
		{"short vendor keeps all letters", "KFB", 45.00, date(2024, 5, 1), "", "KFB_4500_05012024"},
		{"cents padded to four digits", "AT&T", 1.00, date(2024, 1, 2), "", "AT&_0100_01022024"},
		{"card suffix", "Verizon Wireless", 89.99, date(2024, 7, 1), "1111", "VER_8999_07012024_1111"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ArchiveFileName(tt.vendor, tt.amount, tt.date, tt.lastFour)
			if got != tt.want {
				t.Errorf("ArchiveFileName() = %q, want %q", got, tt.want)
			}
		})
	}
}
