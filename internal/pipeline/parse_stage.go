package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/billsnap/billsnap/constants"
	"github.com/billsnap/billsnap/internal/extract"
	"github.com/billsnap/billsnap/internal/extraction"
	"github.com/billsnap/billsnap/internal/store"
)

// Config holds thresholds and behavior flags for the parse stage.
type Config struct {
	MinConfidence float32 // default 0.60
}

type ParseStage struct {
	Logger         *slog.Logger
	Cfg            Config
	Jobs           store.ExtractJobStore
	Documents      store.DocumentStore
	Receipts       store.ReceiptStore
	Bills          store.BillStore
	PaymentMethods store.PaymentMethodStore
	Extractor      extract.FieldExtractor
}

func NewParseStage(
	logger *slog.Logger,
	cfg Config,
	jobs store.ExtractJobStore,
	documents store.DocumentStore,
	receipts store.ReceiptStore,
	bills store.BillStore,
	methods store.PaymentMethodStore,
	fe extract.FieldExtractor,
) *ParseStage {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.MinConfidence <= 0 {
		cfg.MinConfidence = 0.60
	}
	return &ParseStage{
		Logger:         logger,
		Cfg:            cfg,
		Jobs:           jobs,
		Documents:      documents,
		Receipts:       receipts,
		Bills:          bills,
		PaymentMethods: methods,
		Extractor:      fe,
	}
}

// Run executes the parse stage for an existing OCR job.
// Preconditions: job is OCR_OK with non-empty ocr_text.
// Effects: writes extracted_json, confidence and needs_review on the job,
// applies draft fields to the document, and upserts the receipt or bill
// row when the extracted fields are complete enough. The extraction core
// itself cannot fail; only boundary and persistence steps can.
func (p *ParseStage) Run(ctx context.Context, jobID uuid.UUID) (uuid.UUID, error) {
	job, err := p.Jobs.GetByID(ctx, jobID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("load job: %w", err)
	}
	if job.Status != string(constants.JobStatusOCROK) || job.OCRText == nil {
		return job.ID, fmt.Errorf("job not ready for parse: status=%s ocr_text_empty=%t", job.Status, job.OCRText == nil)
	}
	doc, err := p.Documents.GetByID(ctx, job.DocumentID)
	if err != nil {
		return job.ID, fmt.Errorf("load document: %w", err)
	}

	fields := p.Extractor.ExtractFields(*job.OCRText)

	raw, err := json.Marshal(fields)
	if err != nil {
		_ = p.Jobs.FinishFailure(ctx, job.ID, err.Error())
		return job.ID, fmt.Errorf("marshal result: %w", err)
	}
	if err := ValidateJSONAgainstSchema(BuildResultJSONSchema(), raw); err != nil {
		_ = p.Jobs.FinishFailure(ctx, job.ID, err.Error())
		return job.ID, fmt.Errorf("validate result: %w", err)
	}

	needsReview := fields.Confidence < p.Cfg.MinConfidence ||
		fields.VendorName == nil || fields.Amount == nil

	draft := store.DraftFields{
		VendorName:   fields.VendorName,
		Amount:       fields.Amount,
		DocumentType: fields.DocumentType(),
	}
	if d := parseISODate(fields.DocumentDate); d != nil {
		draft.DocumentDate = d
	}
	if fields.CardLastFour != nil {
		pm, err := p.PaymentMethods.FindByLastFour(ctx, doc.UserID, *fields.CardLastFour)
		if err != nil {
			p.Logger.Warn("payment method lookup failed", "job_id", job.ID, "error", err)
		} else if pm != nil {
			draft.PaymentMethodID = &pm.ID
		}
	}
	if _, err := p.Documents.ApplyDraftFields(ctx, doc.ID, draft); err != nil {
		_ = p.Jobs.FinishFailure(ctx, job.ID, err.Error())
		return job.ID, fmt.Errorf("apply draft fields: %w", err)
	}

	if err := p.upsertRow(ctx, doc.UserID, doc.ID, fields, draft.PaymentMethodID); err != nil {
		_ = p.Jobs.FinishFailure(ctx, job.ID, err.Error())
		return job.ID, err
	}

	var extracted map[string]any
	if err := json.Unmarshal(raw, &extracted); err != nil {
		_ = p.Jobs.FinishFailure(ctx, job.ID, err.Error())
		return job.ID, fmt.Errorf("unmarshal result: %w", err)
	}
	if err := p.Jobs.FinishParseSuccess(ctx, job.ID, extracted, fields.Confidence, needsReview); err != nil {
		return job.ID, err
	}

	p.Logger.Info("parse.ok",
		"job_id", job.ID, "document_id", doc.ID,
		"vendor", deref(fields.VendorName),
		"is_bill", fields.IsBill,
		"needs_review", needsReview,
		"confidence", fields.Confidence,
	)
	return job.ID, nil
}

// upsertRow creates or refreshes the receipt or bill row for the document.
// Incomplete extractions leave the document as a draft without a row; the
// user supplies the missing fields before accepting it.
func (p *ParseStage) upsertRow(ctx context.Context, userID, documentID uuid.UUID, fields extraction.Result, paymentMethodID *uuid.UUID) error {
	if fields.VendorName == nil || fields.Amount == nil {
		return nil
	}

	if fields.IsBill {
		due := parseISODate(fields.DueDate)
		if due == nil {
			due = parseISODate(fields.DocumentDate)
		}
		if due == nil {
			return nil
		}
		_, err := p.Bills.Upsert(ctx, &store.CreateBillRequest{
			UserID:     userID,
			DocumentID: documentID,
			VendorName: *fields.VendorName,
			Amount:     *fields.Amount,
			DueDate:    *due,
		})
		if err != nil {
			return fmt.Errorf("upsert bill: %w", err)
		}
		return nil
	}

	date := parseISODate(fields.DocumentDate)
	if date == nil {
		return nil
	}
	_, err := p.Receipts.Upsert(ctx, &store.CreateReceiptRequest{
		UserID:          userID,
		DocumentID:      documentID,
		VendorName:      *fields.VendorName,
		Amount:          *fields.Amount,
		ReceiptDate:     *date,
		PaymentMethodID: paymentMethodID,
	})
	if err != nil {
		return fmt.Errorf("upsert receipt: %w", err)
	}
	return nil
}

func parseISODate(s *string) *time.Time {
	if s == nil {
		return nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil
	}
	return &t
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
