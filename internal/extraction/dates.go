package extraction

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	reSlashDate = regexp.MustCompile(`\d{1,2}/\d{1,2}/\d{2,4}`)
	reISODate   = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)

	// reDueDate finds a date token following a due-style keyword on the
	// same line. reAnyDate is the bare token for the second pass.
	reDueDate = regexp.MustCompile(`(?i)(?:due|pay by|payment due).*?(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})`)
	reAnyDate = regexp.MustCompile(`\d{1,2}[/-]\d{1,2}[/-]\d{2,4}`)
)

// extractDocumentDate returns the transaction/statement date: the first
// M/D/YY[YY] token normalized to ISO form, or failing that the first
// literal YYYY-MM-DD token.
func extractDocumentDate(text string) *string {
	if m := reSlashDate.FindString(text); m != "" {
		if iso, ok := normalizeDate(m); ok {
			return &iso
		}
	}
	if m := reISODate.FindString(text); m != "" {
		if _, err := time.Parse("2006-01-02", m); err == nil {
			return &m
		}
	}
	return nil
}

// extractDueDate is a two-pass search. Pass 1: a line where a due keyword
// is followed by a date token. Pass 2: any date token on a line mentioning
// "due" or "pay". The first pass that produces a match wins; later passes
// are not attempted.
func extractDueDate(text string) *string {
	lines := strings.Split(text, "\n")

	for _, line := range lines {
		if m := reDueDate.FindStringSubmatch(line); m != nil {
			if iso, ok := normalizeDate(m[1]); ok {
				return &iso
			}
		}
	}

	for _, line := range lines {
		lower := strings.ToLower(line)
		if !strings.Contains(lower, "due") && !strings.Contains(lower, "pay") {
			continue
		}
		if m := reAnyDate.FindString(line); m != "" {
			if iso, ok := normalizeDate(m); ok {
				return &iso
			}
		}
	}
	return nil
}

// normalizeDate parses a loosely formatted numeric date with "/" or "-"
// separators into canonical YYYY-MM-DD form. Parts are read positionally
// as (month, day, year); a 2-digit year is taken as 20xx, and a month
// above 12 is assumed to be a day-first reading, so month and day are
// swapped. Genuinely ambiguous dates where both leading components are
// <= 12 stay month-first.
func normalizeDate(s string) (string, bool) {
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == '/' || r == '-' })
	if len(parts) != 3 {
		return "", false
	}

	month, err1 := strconv.Atoi(parts[0])
	day, err2 := strconv.Atoi(parts[1])
	year, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return "", false
	}

	if year < 100 {
		year += 2000
	}
	if month > 12 {
		month, day = day, month
	}

	// time.Date silently rolls invalid components (day 32 becomes the 1st
	// of the next month); a round-trip mismatch means the calendar date
	// did not exist.
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if d.Year() != year || d.Month() != time.Month(month) || d.Day() != day {
		return "", false
	}
	return d.Format("2006-01-02"), true
}
