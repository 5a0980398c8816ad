// Package extraction turns raw OCR text into structured document fields.
// Every extractor is a pure function over the input string: no state, no
// I/O, no error paths. A field that cannot be recovered is simply absent.
package extraction

import "github.com/billsnap/billsnap/constants"

// Result is the structured output for one captured document. Optional
// fields are nil when the heuristics found nothing. RawText and Confidence
// are always populated (Confidence is 0 for empty input).
//
// A Result is created once per document and never mutated afterwards; the
// caller either persists it as-is or discards it in favor of manual edits.
type Result struct {
	VendorName   *string              `json:"vendor_name,omitempty"`
	Amount       *float64             `json:"amount,omitempty"`
	DocumentDate *string              `json:"document_date,omitempty"` // YYYY-MM-DD
	DueDate      *string              `json:"due_date,omitempty"`      // YYYY-MM-DD
	CardType     *constants.CardBrand `json:"card_type,omitempty"`
	CardLastFour *string              `json:"card_last_four,omitempty"`
	IsBill       bool                 `json:"is_bill"`
	Confidence   float32              `json:"confidence_score"` // 0..1, completeness heuristic
	RawText      string               `json:"raw_text"`
}

// DocumentType derives the document classification from the bill flag.
func (r Result) DocumentType() constants.DocumentType {
	if r.IsBill {
		return constants.DocumentTypeBill
	}
	return constants.DocumentTypeReceipt
}
