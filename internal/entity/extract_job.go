package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ExtractJob represents one pass of the two-stage pipeline over a document:
// stage 1 stores the OCR text, stage 2 stores the extracted fields.
type ExtractJob struct {
	ID            uuid.UUID       `json:"id"`
	DocumentID    uuid.UUID       `json:"document_id"`
	Status        string          `json:"status"`
	StartedAt     time.Time       `json:"started_at"`
	FinishedAt    *time.Time      `json:"finished_at,omitempty"`
	ErrorMessage  *string         `json:"error_message,omitempty"`
	OCRText       *string         `json:"ocr_text,omitempty"`
	ExtractedJSON json.RawMessage `json:"extracted_json,omitempty"`
	Confidence    *float32        `json:"confidence,omitempty"`
	NeedsReview   bool            `json:"needs_review"`
}
