package extraction

import (
	"testing"

	"github.com/billsnap/billsnap/constants"
)

func TestExtractVendor(t *testing.T) {
	t.Run("known vendor wins over first line", func(t *testing.T) {
		got := extractVendor("Monthly Statement\nDuke Energy Carolinas\nAccount 12345")
		if got == nil || *got != "Duke Energy" {
			t.Fatalf("got %v, want Duke Energy", deref(got))
		}
	})
	t.Run("case insensitive vendor match", func(t *testing.T) {
		got := extractVendor("payment to VERIZON wireless")
		if got == nil || *got != "Verizon" {
			t.Fatalf("got %v, want Verizon", deref(got))
		}
	})
	t.Run("falls back to first non-empty line", func(t *testing.T) {
		got := extractVendor("\n\n  Joe's Corner Deli  \n123 Main St")
		if got == nil || *got != "Joe's Corner Deli" {
			t.Fatalf("got %v, want Joe's Corner Deli", deref(got))
		}
	})
	t.Run("fallback truncated to fifty chars", func(t *testing.T) {
		long := "AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAABBBBB"
		got := extractVendor(long)
		if got == nil || len(*got) != 50 {
			t.Fatalf("got %q (len %d), want 50 chars", deref(got), len(deref(got)))
		}
	})
	t.Run("whitespace only text", func(t *testing.T) {
		if got := extractVendor("   \n\t\n"); got != nil {
			t.Fatalf("expected absent, got %q", *got)
		}
	})
}

func TestExtractAmount(t *testing.T) {
	cases := []struct {
		name string
		text string
		want float64
		ok   bool
	}{
		{"dollar amount", "Total: $45.00", 45.00, true},
		{"maximum of several", "Energy charge $80.25\nFees $12.00\nAmount Due: $125.50", 125.50, true},
		{"thousands separators", "Balance: $1,234.56", 1234.56, true},
		{"usd suffix", "Pay 89.99 USD today", 89.99, true},
		{"bare cents number", "Subtotal 10.50\nTip 2.00", 10.50, true},
		{"out of range excluded", "$150,000.00", 0, false},
		{"out of range does not mask smaller", "$150,000.00\nService fee $25.00", 25.00, true},
		{"date digits are not amounts", "Due Date: 06/15/2024", 0, false},
		{"no amount", "thanks for your business", 0, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := extractAmount(c.text)
			if c.ok {
				if got == nil {
					t.Fatalf("expected %v, got absent", c.want)
				}
				if *got != c.want {
					t.Errorf("got %v, want %v", *got, c.want)
				}
			} else if got != nil {
				t.Errorf("expected absent, got %v", *got)
			}
		})
	}

	t.Run("keyword fallback when broad scan is empty", func(t *testing.T) {
		got := extractAmount("amount due 42")
		if got == nil || *got != 42 {
			t.Fatalf("got %v, want 42", got)
		}
	})
}

func TestExtractCardInfo(t *testing.T) {
	t.Run("visa keyword with number", func(t *testing.T) {
		brand, last4, ok := extractCardInfo("Paid VISA 4111 1111 1111 1234")
		if !ok || brand != constants.CardBrandVisa || last4 != "1234" {
			t.Fatalf("got (%s, %s, %v)", brand, last4, ok)
		}
	})
	t.Run("bare number resolves to visa", func(t *testing.T) {
		brand, last4, ok := extractCardInfo("card 5500-0000-0000-0004")
		if !ok || brand != constants.CardBrandVisa || last4 != "0004" {
			t.Fatalf("got (%s, %s, %v)", brand, last4, ok)
		}
	})
	t.Run("amex keyword without generic number yields nothing", func(t *testing.T) {
		// Known edge case: the last-four search only understands 4-4-4-4
		// groupings, so an AMEX keyword alone produces no card info.
		_, _, ok := extractCardInfo("Paid with American Express")
		if ok {
			t.Fatal("expected no card info")
		}
	})
	t.Run("no card signals", func(t *testing.T) {
		_, _, ok := extractCardInfo("cash payment")
		if ok {
			t.Fatal("expected no card info")
		}
	})
}

func TestClassifyBill(t *testing.T) {
	cases := []struct {
		name string
		text string
		want bool
	}{
		{"two keywords is a bill", "Invoice for your account", true},
		{"one keyword is not", "account summary attached", false},
		{"exactly at threshold", "statement balance due", true},
		{"case insensitive", "INVOICE\nAMOUNT DUE", true},
		{"plain receipt", "Coffee 3.50 Thank you", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := classifyBill(c.text); got != c.want {
				t.Errorf("classifyBill(%q) = %v, want %v", c.text, got, c.want)
			}
		})
	}
}
