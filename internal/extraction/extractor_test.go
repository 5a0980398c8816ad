package extraction

import (
	"math"
	"reflect"
	"testing"

	"github.com/billsnap/billsnap/constants"
)

func TestExtractEmptyInput(t *testing.T) {
	r := Extract("")
	if r.RawText != "" {
		t.Errorf("raw text = %q, want empty", r.RawText)
	}
	if r.Confidence != 0 {
		t.Errorf("confidence = %v, want 0", r.Confidence)
	}
	if r.VendorName != nil || r.Amount != nil || r.DocumentDate != nil ||
		r.DueDate != nil || r.CardType != nil || r.CardLastFour != nil || r.IsBill {
		t.Errorf("expected all optional fields absent, got %+v", r)
	}
}

func TestExtractUtilityBill(t *testing.T) {
	text := "Duke Energy\nAccount Statement\nAmount Due: $125.50\nDue Date: 06/15/2024"
	r := Extract(text)

	if r.VendorName == nil || *r.VendorName != "Duke Energy" {
		t.Errorf("vendor = %v, want Duke Energy", deref(r.VendorName))
	}
	if r.Amount == nil || *r.Amount != 125.50 {
		t.Errorf("amount = %v, want 125.50", r.Amount)
	}
	if r.DueDate == nil || *r.DueDate != "2024-06-15" {
		t.Errorf("due date = %v, want 2024-06-15", deref(r.DueDate))
	}
	if r.DocumentDate == nil || *r.DocumentDate != "2024-06-15" {
		t.Errorf("document date = %v, want 2024-06-15", deref(r.DocumentDate))
	}
	if !r.IsBill {
		t.Error("expected bill classification")
	}
	if r.CardType != nil {
		t.Errorf("card type = %v, want absent", *r.CardType)
	}
	// vendor + amount + date + (bill with due date); no card info.
	if math.Abs(float64(r.Confidence)-0.8) > 1e-6 {
		t.Errorf("confidence = %v, want 0.8", r.Confidence)
	}
	if r.RawText != text {
		t.Errorf("raw text not preserved")
	}
	if r.DocumentType() != constants.DocumentTypeBill {
		t.Errorf("document type = %v, want BILL", r.DocumentType())
	}
}

func TestExtractCardReceipt(t *testing.T) {
	text := "Corner Grocery\nTotal: $23.75\n01/08/2024\nVISA 4111 1111 1111 4242"
	r := Extract(text)

	if r.VendorName == nil || *r.VendorName != "Corner Grocery" {
		t.Errorf("vendor = %v, want Corner Grocery", deref(r.VendorName))
	}
	if r.Amount == nil || *r.Amount != 23.75 {
		t.Errorf("amount = %v, want 23.75", r.Amount)
	}
	if r.DocumentDate == nil || *r.DocumentDate != "2024-01-08" {
		t.Errorf("document date = %v, want 2024-01-08", deref(r.DocumentDate))
	}
	if r.CardType == nil || *r.CardType != constants.CardBrandVisa {
		t.Errorf("card type = %v, want VISA", r.CardType)
	}
	if r.CardLastFour == nil || *r.CardLastFour != "4242" {
		t.Errorf("last four = %v, want 4242", deref(r.CardLastFour))
	}
	if r.IsBill {
		t.Error("receipt misclassified as bill")
	}
	if r.DueDate != nil {
		t.Errorf("due date = %v, want absent", *r.DueDate)
	}
	// vendor + amount + date + card; no bill/due-date contribution.
	if math.Abs(float64(r.Confidence)-0.8) > 1e-6 {
		t.Errorf("confidence = %v, want 0.8", r.Confidence)
	}
}

func TestExtractGarbageNeverPanics(t *testing.T) {
	inputs := []string{
		"\x00\x01\x02",
		"$$$///---",
		"99/99/9999",
		"£±§≠∆œ∑´®†",
		"\n\n\n\n",
		"due due due due",
	}
	for _, in := range inputs {
		r := Extract(in)
		if r.Confidence < 0 || r.Confidence > 1 {
			t.Errorf("confidence out of range for %q: %v", in, r.Confidence)
		}
		if r.RawText != in {
			t.Errorf("raw text not preserved for %q", in)
		}
	}
}

func TestExtractDeterministic(t *testing.T) {
	text := "Verizon Wireless\nInvoice\nBalance due: $89.99\nPay by 03/15/2024\nVISA 4111-1111-1111-0042"
	first := Extract(text)
	for i := 0; i < 5; i++ {
		if got := Extract(text); !reflect.DeepEqual(first, got) {
			t.Fatalf("run %d diverged:\nfirst: %+v\ngot:   %+v", i, first, got)
		}
	}
}

func TestExtractFullHouseCapsAtOne(t *testing.T) {
	text := "Comcast\nInvoice statement\nAmount due: $54.30\n02/01/2024\nDue date: 02/20/2024\nVISA 4111 1111 1111 8888"
	r := Extract(text)
	if r.Confidence != 1.0 {
		t.Errorf("confidence = %v, want 1.0", r.Confidence)
	}
}
