package constants

import "strings"

// CardBrand is a detected payment card network.
type CardBrand string

const (
	CardBrandAmex       CardBrand = "AMEX"
	CardBrandVisa       CardBrand = "VISA"
	CardBrandMastercard CardBrand = "MASTERCARD"
	CardBrandDiscover   CardBrand = "DISCOVER"
)

// CardBrandOrder is the canonical check order for brand detection.
// VISA, MASTERCARD and DISCOVER share the same generic 16-digit pattern,
// so the traversal order decides which brand a bare card number maps to.
// Changing this order changes extraction output for such inputs.
var CardBrandOrder = []CardBrand{
	CardBrandAmex,
	CardBrandVisa,
	CardBrandMastercard,
	CardBrandDiscover,
}

// ParseCardBrand canonicalizes a brand string, reporting whether it is known.
func ParseCardBrand(s string) (CardBrand, bool) {
	switch CardBrand(strings.ToUpper(strings.TrimSpace(s))) {
	case CardBrandAmex:
		return CardBrandAmex, true
	case CardBrandVisa:
		return CardBrandVisa, true
	case CardBrandMastercard:
		return CardBrandMastercard, true
	case CardBrandDiscover:
		return CardBrandDiscover, true
	}
	return "", false
}
