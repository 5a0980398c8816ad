package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/billsnap/billsnap/constants"
)

// Document represents a captured document for data transfer between layers.
// It carries the extraction output as editable draft fields; the user either
// accepts them or overwrites them before the document leaves DRAFT.
type Document struct {
	ID              uuid.UUID                `json:"id"`
	UserID          uuid.UUID                `json:"user_id"`
	FileName        string                   `json:"file_name"`
	DocumentType    constants.DocumentType   `json:"document_type"`
	Status          constants.DocumentStatus `json:"status"`
	VendorName      *string                  `json:"vendor_name,omitempty"`
	Amount          *float64                 `json:"amount,omitempty"`
	DocumentDate    *time.Time               `json:"document_date,omitempty"`
	PaymentMethodID *uuid.UUID               `json:"payment_method_id,omitempty"`
	Notes           *string                  `json:"notes,omitempty"`
	CreatedAt       time.Time                `json:"created_at"`
	UpdatedAt       time.Time                `json:"updated_at"`
}
