package entity

import (
	"time"

	"github.com/google/uuid"
)

// Bill represents an outstanding obligation with a payment deadline.
type Bill struct {
	ID         uuid.UUID  `json:"id"`
	UserID     uuid.UUID  `json:"user_id"`
	DocumentID uuid.UUID  `json:"document_id"`
	VendorName string     `json:"vendor_name"`
	Amount     float64    `json:"amount"`
	DueDate    time.Time  `json:"due_date"`
	Paid       bool       `json:"paid"`
	PaidDate   *time.Time `json:"paid_date,omitempty"`
	Notes      *string    `json:"notes,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}
