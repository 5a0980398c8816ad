package pipeline

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// Processor coordinates the OCR stage then the parse stage.
type Processor struct {
	Logger *slog.Logger
	OCR    *OCRStage
	Parse  *ParseStage
}

func NewProcessor(logger *slog.Logger, ocr *OCRStage, parse *ParseStage) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{Logger: logger, OCR: ocr, Parse: parse}
}

// ProcessDocument runs OCR over the captured image (creating and advancing
// the extract job), then parses the recognized text into fields and
// upserts the receipt or bill. Returns the job ID started by the OCR stage.
func (p *Processor) ProcessDocument(ctx context.Context, documentID uuid.UUID, imageBase64 string) (uuid.UUID, error) {
	jobID, ocrRes, err := p.OCR.Run(ctx, documentID, imageBase64)
	if err != nil {
		p.Logger.Error("processor.ocr.failed", "document_id", documentID, "err", err)
		return jobID, err
	}
	p.Logger.Info("processor.ocr.ok",
		"document_id", documentID,
		"job_id", jobID,
		"method", ocrRes.Method,
		"text_bytes", len(ocrRes.Text),
	)

	if _, err := p.Parse.Run(ctx, jobID); err != nil {
		p.Logger.Error("processor.parse.failed", "job_id", jobID, "err", err)
		return jobID, err
	}
	p.Logger.Info("processor.parse.ok", "job_id", jobID)
	return jobID, nil
}
