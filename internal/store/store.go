// Package store declares the persistence contracts consumed by the
// pipeline, server and export layers. Implementations live in
// internal/repository; everything here is expressed in transfer types so
// consumers never touch the generated client.
package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/billsnap/billsnap/constants"
	"github.com/billsnap/billsnap/internal/entity"
)

// CreateDocumentRequest wraps parameters for registering a captured image.
type CreateDocumentRequest struct {
	UserID   uuid.UUID
	FileName string
	Notes    *string
}

// DraftFields is the extraction output applied to a document while it is
// still in DRAFT. Nil pointers leave the column untouched so user edits
// survive a reprocess that found less than the first pass.
type DraftFields struct {
	VendorName      *string
	Amount          *float64
	DocumentDate    *time.Time
	PaymentMethodID *uuid.UUID
	DocumentType    constants.DocumentType
}

type DocumentStore interface {
	Create(ctx context.Context, req *CreateDocumentRequest) (*entity.Document, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Document, error)
	ListByUser(ctx context.Context, userID uuid.UUID, docType *constants.DocumentType, status *constants.DocumentStatus) ([]*entity.Document, error)
	ApplyDraftFields(ctx context.Context, id uuid.UUID, fields DraftFields) (*entity.Document, error)
	SetStatus(ctx context.Context, id uuid.UUID, status constants.DocumentStatus) error
}

// CreateReceiptRequest wraps the accepted fields of a processed document.
type CreateReceiptRequest struct {
	UserID          uuid.UUID
	DocumentID      uuid.UUID
	VendorName      string
	Amount          float64
	ReceiptDate     time.Time
	PaymentMethodID *uuid.UUID
	Notes           *string
}

type ReceiptStore interface {
	ListByUser(ctx context.Context, userID uuid.UUID, fromDate, toDate *time.Time) ([]*entity.Receipt, error)
	// Upsert creates the receipt row for a document, or updates it when the
	// document is reprocessed. One receipt per document.
	Upsert(ctx context.Context, req *CreateReceiptRequest) (*entity.Receipt, error)
	GetByDocumentID(ctx context.Context, documentID uuid.UUID) (*entity.Receipt, error)
}

// CreateBillRequest wraps the accepted fields of a document classified
// as a bill.
type CreateBillRequest struct {
	UserID     uuid.UUID
	DocumentID uuid.UUID
	VendorName string
	Amount     float64
	DueDate    time.Time
	Notes      *string
}

type BillStore interface {
	ListByUser(ctx context.Context, userID uuid.UUID, fromDate, toDate *time.Time, unpaidOnly bool) ([]*entity.Bill, error)
	// Upsert creates the bill row for a document, or updates it when the
	// document is reprocessed. Paid state survives a reprocess.
	Upsert(ctx context.Context, req *CreateBillRequest) (*entity.Bill, error)
	GetByDocumentID(ctx context.Context, documentID uuid.UUID) (*entity.Bill, error)
	MarkPaid(ctx context.Context, id uuid.UUID, paidDate time.Time) (*entity.Bill, error)
}

// CreatePaymentMethodRequest wraps parameters for storing a card or account.
type CreatePaymentMethodRequest struct {
	UserID     uuid.UUID
	MethodType string
	CardType   *string
	LastFour   string
	Nickname   *string
}

type PaymentMethodStore interface {
	Create(ctx context.Context, req *CreatePaymentMethodRequest) (*entity.PaymentMethod, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.PaymentMethod, error)
	// FindByLastFour matches a stored method against extracted card digits.
	// Returns nil without error when no method matches.
	FindByLastFour(ctx context.Context, userID uuid.UUID, lastFour string) (*entity.PaymentMethod, error)
}

type ExtractJobStore interface {
	// Start creates a RUNNING job row for a document.
	Start(ctx context.Context, documentID uuid.UUID) (*entity.ExtractJob, error)
	// FinishOCRSuccess stores the recognized text and moves the job to OCR_OK.
	FinishOCRSuccess(ctx context.Context, jobID uuid.UUID, ocrText string) error
	// FinishParseSuccess stores the extracted fields and moves the job to
	// PARSE_OK. The extracted object is the validated extraction result.
	FinishParseSuccess(ctx context.Context, jobID uuid.UUID, extracted map[string]any, confidence float32, needsReview bool) error
	FinishFailure(ctx context.Context, jobID uuid.UUID, errorMessage string) error
	GetByID(ctx context.Context, jobID uuid.UUID) (*entity.ExtractJob, error)
	ListByDocument(ctx context.Context, documentID uuid.UUID) ([]*entity.ExtractJob, error)
}
