package export

import (
	"fmt"
	"strings"
	"time"
)

// ArchiveFileName builds the suggested archive name for an accepted
// document: first three letters of the vendor's first word uppercased, the
// amount in cents zero-padded to four digits, and the date as MMDDYYYY.
// The card's last four digits are appended when known.
//
//	"Duke Energy", 125.50, 2024-06-15        -> DUK_12550_06152024
//	"KFB",         45.00,  2024-05-01, 1111  -> KFB_4500_05012024_1111
func ArchiveFileName(vendor string, amount float64, date time.Time, cardLastFour string) string {
	first := vendor
	if i := strings.IndexByte(first, ' '); i >= 0 {
		first = first[:i]
	}
	short := strings.ToUpper(first)
	if r := []rune(short); len(r) > 3 {
		short = string(r[:3])
	}

	cents := fmt.Sprintf("%04d", int64(amount*100+0.5))
	name := fmt.Sprintf("%s_%s_%s", short, cents, date.Format("01022006"))
	if cardLastFour != "" {
		name += "_" + cardLastFour
	}
	return name
}
