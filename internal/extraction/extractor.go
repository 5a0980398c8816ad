package extraction

// Extract runs every field extractor over one blob of OCR text and
// composes the structured result. It never fails: malformed or garbage
// input degrades to absent fields, and the confidence score is the only
// quality signal. The extractors are independent of each other; each sees
// the same raw text and nothing else, so their run order does not affect
// the output.
func Extract(rawText string) Result {
	if rawText == "" {
		return Result{}
	}

	r := Result{RawText: rawText}
	r.VendorName = extractVendor(rawText)
	r.Amount = extractAmount(rawText)
	r.DocumentDate = extractDocumentDate(rawText)
	r.DueDate = extractDueDate(rawText)
	if brand, lastFour, ok := extractCardInfo(rawText); ok {
		b, lf := brand, lastFour
		r.CardType = &b
		r.CardLastFour = &lf
	}
	r.IsBill = classifyBill(rawText)
	r.Confidence = confidenceScore(&r)
	return r
}
