package entity

import (
	"time"

	"github.com/google/uuid"
)

// Receipt represents proof of a completed payment.
type Receipt struct {
	ID              uuid.UUID  `json:"id"`
	UserID          uuid.UUID  `json:"user_id"`
	DocumentID      uuid.UUID  `json:"document_id"`
	VendorName      string     `json:"vendor_name"`
	Amount          float64    `json:"amount"`
	ReceiptDate     time.Time  `json:"receipt_date"`
	PaymentMethodID *uuid.UUID `json:"payment_method_id,omitempty"`
	Notes           *string    `json:"notes,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}
