// Package patterns holds the static lookup tables used by field extraction:
// card-brand regexes, the known-vendor list, and bill-indicating keywords.
// All tables are read-only after init; extraction code must traverse the
// slices in declaration order, since first-match-wins is part of the
// extraction contract.
package patterns

import (
	"regexp"

	"github.com/billsnap/billsnap/constants"
)

// CardPattern pairs a brand with the expression that detects it.
// A pattern matches either the brand keyword or a grouped card number.
type CardPattern struct {
	Brand constants.CardBrand
	Re    *regexp.Regexp
}

// CardPatterns is traversed in constants.CardBrandOrder. VISA, MASTERCARD
// and DISCOVER share the generic 4-4-4-4 digit pattern, so a bare 16-digit
// number with no brand keyword resolves to VISA (first in order).
var CardPatterns = []CardPattern{
	{constants.CardBrandAmex, regexp.MustCompile(`(?i)AMEX|American Express|\d{4}[\s-]?\d{6}[\s-]?\d{5}`)},
	{constants.CardBrandVisa, regexp.MustCompile(`(?i)VISA|\d{4}[\s-]?\d{4}[\s-]?\d{4}[\s-]?\d{4}`)},
	{constants.CardBrandMastercard, regexp.MustCompile(`(?i)MASTERCARD|MC|\d{4}[\s-]?\d{4}[\s-]?\d{4}[\s-]?\d{4}`)},
	{constants.CardBrandDiscover, regexp.MustCompile(`(?i)DISCOVER|\d{4}[\s-]?\d{4}[\s-]?\d{4}[\s-]?\d{4}`)},
}

// GenericCardNumber matches a 16-digit number grouped 4-4-4-4 with optional
// space or hyphen separators. Group 4 is the card's last four digits.
var GenericCardNumber = regexp.MustCompile(`(\d{4})[\s-]?(\d{4})[\s-]?(\d{4})[\s-]?(\d{4})`)

// Vendor is a known biller, matched case-insensitively against the full name.
type Vendor struct {
	Code string
	Full string
	Re   *regexp.Regexp
}

// KnownVendors is checked in order; first match wins.
var KnownVendors = []Vendor{
	{"KFB", "Kentucky Farm Bureau", regexp.MustCompile(`(?i)Kentucky Farm Bureau`)},
	{"Verizon", "Verizon", regexp.MustCompile(`(?i)Verizon`)},
	{"AT&T", "AT&T", regexp.MustCompile(`(?i)AT&T`)},
	{"Duke", "Duke Energy", regexp.MustCompile(`(?i)Duke Energy`)},
	{"Comcast", "Comcast", regexp.MustCompile(`(?i)Comcast`)},
}

// BillKeywords are the lowercase phrases whose presence marks a document as
// a bill. Classification counts distinct keywords, not occurrences.
var BillKeywords = []string{
	"bill",
	"invoice",
	"due date",
	"balance due",
	"amount due",
	"account",
	"statement",
	"payment due",
}
