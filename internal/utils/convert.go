package utils

import (
	"encoding/json"

	"github.com/billsnap/billsnap/constants"
	"github.com/billsnap/billsnap/gen/ent"
	"github.com/billsnap/billsnap/internal/entity"
)

// Converters from Ent rows to transfer structs. Everything above the
// repository layer works with entity types only.

func ToDocument(d *ent.Document) *entity.Document {
	return &entity.Document{
		ID:              d.ID,
		UserID:          d.UserID,
		FileName:        d.FileName,
		DocumentType:    constants.DocumentType(d.DocumentType),
		Status:          constants.DocumentStatus(d.Status),
		VendorName:      d.VendorName,
		Amount:          d.Amount,
		DocumentDate:    d.DocumentDate,
		PaymentMethodID: d.PaymentMethodID,
		Notes:           d.Notes,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}

func ToReceipt(r *ent.Receipt) *entity.Receipt {
	return &entity.Receipt{
		ID:              r.ID,
		UserID:          r.UserID,
		DocumentID:      r.DocumentID,
		VendorName:      r.VendorName,
		Amount:          r.Amount,
		ReceiptDate:     r.ReceiptDate,
		PaymentMethodID: r.PaymentMethodID,
		Notes:           r.Notes,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

func ToBill(b *ent.Bill) *entity.Bill {
	return &entity.Bill{
		ID:         b.ID,
		UserID:     b.UserID,
		DocumentID: b.DocumentID,
		VendorName: b.VendorName,
		Amount:     b.Amount,
		DueDate:    b.DueDate,
		Paid:       b.Paid,
		PaidDate:   b.PaidDate,
		Notes:      b.Notes,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}

func ToPaymentMethod(m *ent.PaymentMethod) *entity.PaymentMethod {
	return &entity.PaymentMethod{
		ID:         m.ID,
		UserID:     m.UserID,
		MethodType: string(m.MethodType),
		CardType:   m.CardType,
		LastFour:   m.LastFour,
		Nickname:   m.Nickname,
		CreatedAt:  m.CreatedAt,
	}
}

func ToExtractJob(j *ent.ExtractJob) *entity.ExtractJob {
	var extracted json.RawMessage
	if len(j.ExtractedJSON) > 0 {
		// The schema stores a JSON object; marshaling a map cannot fail.
		extracted, _ = json.Marshal(j.ExtractedJSON)
	}
	return &entity.ExtractJob{
		ID:            j.ID,
		DocumentID:    j.DocumentID,
		Status:        j.Status,
		StartedAt:     j.StartedAt,
		FinishedAt:    j.FinishedAt,
		ErrorMessage:  j.ErrorMessage,
		OCRText:       j.OcrText,
		ExtractedJSON: extracted,
		Confidence:    j.Confidence,
		NeedsReview:   j.NeedsReview,
	}
}
