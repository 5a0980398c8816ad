package extract

import (
	"context"
	"log/slog"

	"github.com/billsnap/billsnap/internal/ocr"
)

// OCRAdapter exposes the OCR.space client as a TextExtractor.
type OCRAdapter struct {
	c *ocr.Client
}

func NewOCRAdapter(c *ocr.Client, _ *slog.Logger) *OCRAdapter {
	return &OCRAdapter{c: c}
}

func (a *OCRAdapter) Extract(ctx context.Context, imageBase64 string) (TextExtractionResult, error) {
	r, err := a.c.ParseImage(ctx, imageBase64)
	return TextExtractionResult{
		Text:     r.Text,
		Method:   "ocr-space",
		Duration: r.Duration,
	}, err
}
