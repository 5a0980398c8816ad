package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/billsnap/billsnap/internal/extract"
	"github.com/billsnap/billsnap/internal/store"
)

// ErrNoText is returned when OCR succeeds but recognizes nothing usable.
var ErrNoText = errors.New("ocr produced no text")

type OCRStage struct {
	Documents     store.DocumentStore
	Jobs          store.ExtractJobStore
	TextExtractor extract.TextExtractor
	Logger        *slog.Logger
}

func NewOCRStage(documents store.DocumentStore, jobs store.ExtractJobStore, tx extract.TextExtractor, logger *slog.Logger) *OCRStage {
	if logger == nil {
		logger = slog.Default()
	}
	return &OCRStage{Documents: documents, Jobs: jobs, TextExtractor: tx, Logger: logger}
}

// Run starts an extract job for the document, sends the image through OCR
// and persists the recognized text. The parse stage is NOT called.
func (p *OCRStage) Run(ctx context.Context, documentID uuid.UUID, imageBase64 string) (uuid.UUID, extract.TextExtractionResult, error) {
	doc, err := p.Documents.GetByID(ctx, documentID)
	if err != nil {
		return uuid.Nil, extract.TextExtractionResult{}, fmt.Errorf("get document: %w", err)
	}

	job, err := p.Jobs.Start(ctx, doc.ID)
	if err != nil {
		return uuid.Nil, extract.TextExtractionResult{}, err
	}

	res, err := p.TextExtractor.Extract(ctx, imageBase64)
	if err != nil {
		_ = p.Jobs.FinishFailure(ctx, job.ID, err.Error())
		return job.ID, res, fmt.Errorf("text extract: %w", err)
	}
	if strings.TrimSpace(res.Text) == "" {
		_ = p.Jobs.FinishFailure(ctx, job.ID, ErrNoText.Error())
		return job.ID, res, ErrNoText
	}

	if err := p.Jobs.FinishOCRSuccess(ctx, job.ID, res.Text); err != nil {
		return job.ID, res, err
	}

	p.Logger.Info("ocr.ok",
		"document_id", doc.ID, "job_id", job.ID,
		"method", res.Method, "text_bytes", len(res.Text),
		"duration", res.Duration,
	)
	return job.ID, res, nil
}
