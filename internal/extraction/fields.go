package extraction

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/billsnap/billsnap/constants"
	"github.com/billsnap/billsnap/internal/patterns"
)

const (
	maxVendorLen = 50
	// Plausible range for a single consumer bill or receipt total.
	// Values at or beyond either bound are discarded as OCR noise.
	minAmount = 0.0
	maxAmount = 100000.0
)

var (
	// reMoney matches a monetary token: a $-prefixed number, a number with
	// a USD suffix, or a bare number with 2-decimal cents. Bare integers
	// are deliberately NOT monetary tokens, so date fragments like "2024"
	// never enter the candidate set.
	reMoney = regexp.MustCompile(`(?i)\$\s*\d{1,3}(?:,?\d{3})*(?:\.\d{2})?|\d{1,3}(?:,?\d{3})*(?:\.\d{2})?\s*USD|\d{1,3}(?:,?\d{3})*\.\d{2}`)

	// reKeywordAmount anchors a number to a totals keyword; used only when
	// the broad scan finds nothing.
	reKeywordAmount = regexp.MustCompile(`(?i)(?:total|amount|balance|due)[\s:]*\$?(\d+\.?\d{0,2})`)

	reMoneyStrip = strings.NewReplacer("$", "", ",", "", " ", "")
)

// extractVendor returns the best-guess merchant or biller name: a known
// vendor if one matches, otherwise the first non-empty line of text.
func extractVendor(text string) *string {
	for _, v := range patterns.KnownVendors {
		if v.Re.MatchString(text) {
			name := v.Full
			return &name
		}
	}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if runes := []rune(line); len(runes) > maxVendorLen {
			line = string(runes[:maxVendorLen])
		}
		return &line
	}
	return nil
}

// extractAmount scans every line for monetary tokens, keeps the plausible
// ones, and returns the maximum. Bills usually show the headline total
// alongside smaller line items, so the largest plausible value is the best
// guess. When the broad scan finds nothing, a keyword-anchored number
// (total/amount/balance/due) is accepted as a fallback.
func extractAmount(text string) *float64 {
	var best *float64
	for _, line := range strings.Split(text, "\n") {
		for _, tok := range reMoney.FindAllString(line, -1) {
			v, ok := parseMoney(tok)
			if !ok {
				continue
			}
			if best == nil || v > *best {
				val := v
				best = &val
			}
		}
	}
	if best != nil {
		return best
	}

	if m := reKeywordAmount.FindStringSubmatch(text); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil && v > minAmount && v < maxAmount {
			return &v
		}
	}
	return nil
}

func parseMoney(tok string) (float64, bool) {
	s := strings.TrimSuffix(strings.ToUpper(reMoneyStrip.Replace(tok)), "USD")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	if v <= minAmount || v >= maxAmount {
		return 0, false
	}
	return v, true
}

// extractCardInfo iterates brand patterns in the canonical order; on the
// first brand hit it looks for a generic 16-digit grouped number and
// returns the brand with the number's last four digits. A brand keyword
// without a generic number yields nothing.
func extractCardInfo(text string) (constants.CardBrand, string, bool) {
	for _, p := range patterns.CardPatterns {
		if !p.Re.MatchString(text) {
			continue
		}
		if m := patterns.GenericCardNumber.FindStringSubmatch(text); m != nil {
			return p.Brand, m[4], true
		}
		return "", "", false
	}
	return "", "", false
}

// classifyBill reports whether the text reads like a bill: two or more
// distinct bill keywords anywhere in the text.
func classifyBill(text string) bool {
	lower := strings.ToLower(text)
	hits := 0
	for _, kw := range patterns.BillKeywords {
		if strings.Contains(lower, kw) {
			hits++
			if hits >= 2 {
				return true
			}
		}
	}
	return false
}
