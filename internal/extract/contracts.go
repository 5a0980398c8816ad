package extract

import (
	"context"
	"time"

	"github.com/billsnap/billsnap/internal/extraction"
)

// TextExtractor is Stage 1: image -> text.
type TextExtractor interface {
	Extract(ctx context.Context, imageBase64 string) (TextExtractionResult, error)
}

type TextExtractionResult struct {
	Text     string
	Method   string // "ocr-space"
	Duration time.Duration
	Warnings []string
}

// FieldExtractor is Stage 2: text -> structured fields. Implementations
// must not fail on malformed text; absent fields are the only degradation.
type FieldExtractor interface {
	ExtractFields(text string) extraction.Result
}

// HeuristicFieldExtractor runs the pure rule-based extraction core.
type HeuristicFieldExtractor struct{}

func (HeuristicFieldExtractor) ExtractFields(text string) extraction.Result {
	return extraction.Extract(text)
}
