package extraction

// confidenceScore combines extractor outcomes into a single completeness
// signal: +0.2 for each of vendor, amount, document date, card type, and
// a due date on a document classified as a bill, capped at 1.0. It is a
// deterministic function of which fields were found, not a calibrated
// probability.
func confidenceScore(r *Result) float32 {
	var score float32
	if r.VendorName != nil {
		score += 0.2
	}
	if r.Amount != nil {
		score += 0.2
	}
	if r.DocumentDate != nil {
		score += 0.2
	}
	if r.CardType != nil {
		score += 0.2
	}
	if r.IsBill && r.DueDate != nil {
		score += 0.2
	}
	if score > 1.0 {
		score = 1.0
	}
	return score
}
