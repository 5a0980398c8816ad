package patterns

import (
	"testing"

	"github.com/billsnap/billsnap/constants"
)

func TestCardPatternsFollowCanonicalOrder(t *testing.T) {
	if len(CardPatterns) != len(constants.CardBrandOrder) {
		t.Fatalf("expected %d card patterns, got %d", len(constants.CardBrandOrder), len(CardPatterns))
	}
	for i, p := range CardPatterns {
		if p.Brand != constants.CardBrandOrder[i] {
			t.Errorf("position %d: expected brand %s, got %s", i, constants.CardBrandOrder[i], p.Brand)
		}
	}
}

func TestCardPatternsMatchKeywords(t *testing.T) {
	cases := []struct {
		text  string
		brand constants.CardBrand
	}{
		{"Paid with AMEX", constants.CardBrandAmex},
		{"american express ending 1005", constants.CardBrandAmex},
		{"VISA **** 4242", constants.CardBrandVisa},
		{"Mastercard credit", constants.CardBrandMastercard},
		{"DISCOVER card", constants.CardBrandDiscover},
	}
	for _, c := range cases {
		matched := false
		for _, p := range CardPatterns {
			if p.Re.MatchString(c.text) {
				if p.Brand != c.brand {
					t.Errorf("%q: expected brand %s, first match was %s", c.text, c.brand, p.Brand)
				}
				matched = true
				break
			}
		}
		if !matched {
			t.Errorf("%q: no card pattern matched", c.text)
		}
	}
}

func TestGenericCardNumberLastFourGroup(t *testing.T) {
	cases := []struct {
		text     string
		lastFour string
	}{
		{"4111 1111 1111 1234", "1234"},
		{"4111-1111-1111-9999", "9999"},
		{"4111111111115678", "5678"},
	}
	for _, c := range cases {
		m := GenericCardNumber.FindStringSubmatch(c.text)
		if m == nil {
			t.Fatalf("%q: no match", c.text)
		}
		if m[4] != c.lastFour {
			t.Errorf("%q: expected last four %s, got %s", c.text, c.lastFour, m[4])
		}
	}
}

func TestBareCardNumberResolvesToVisaFirst(t *testing.T) {
	// No brand keyword present: VISA wins because it precedes MASTERCARD
	// and DISCOVER in the canonical order.
	text := "card 5500 0000 0000 0004"
	for _, p := range CardPatterns {
		if p.Re.MatchString(text) {
			if p.Brand != constants.CardBrandVisa {
				t.Fatalf("expected VISA to match first, got %s", p.Brand)
			}
			return
		}
	}
	t.Fatal("no pattern matched a bare 16-digit number")
}

func TestKnownVendorsMatchCaseInsensitive(t *testing.T) {
	cases := map[string]string{
		"DUKE ENERGY CAROLINAS":       "Duke Energy",
		"kentucky farm bureau mutual": "Kentucky Farm Bureau",
		"Bill from AT&T Wireless":     "AT&T",
	}
	for text, want := range cases {
		found := ""
		for _, v := range KnownVendors {
			if v.Re.MatchString(text) {
				found = v.Full
				break
			}
		}
		if found != want {
			t.Errorf("%q: expected vendor %q, got %q", text, want, found)
		}
	}
}
