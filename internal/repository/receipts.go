package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/billsnap/billsnap/gen/ent"
	"github.com/billsnap/billsnap/internal/common"
	"github.com/billsnap/billsnap/gen/ent/receipt"
	"github.com/billsnap/billsnap/internal/entity"
	"github.com/billsnap/billsnap/internal/store"
	"github.com/billsnap/billsnap/internal/utils"
)

type receiptRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewReceiptRepository(client *ent.Client, logger *slog.Logger) store.ReceiptStore {
	return &receiptRepository{
		client: client,
		logger: logger,
	}
}

func (r *receiptRepository) ListByUser(ctx context.Context, userID uuid.UUID, fromDate, toDate *time.Time) ([]*entity.Receipt, error) {
	q := r.client.Receipt.Query().Where(receipt.UserID(userID))
	if fromDate != nil {
		q = q.Where(receipt.ReceiptDateGTE(*fromDate))
	}
	if toDate != nil {
		q = q.Where(receipt.ReceiptDateLTE(*toDate))
	}
	recs, err := q.Order(receipt.ByReceiptDate()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list receipts", "user_id", userID, "error", err)
		return nil, err
	}

	result := make([]*entity.Receipt, len(recs))
	for i, rec := range recs {
		result[i] = utils.ToReceipt(rec)
	}
	return result, nil
}

func (r *receiptRepository) Upsert(ctx context.Context, req *store.CreateReceiptRequest) (*entity.Receipt, error) {
	existing, err := r.client.Receipt.Query().
		Where(receipt.DocumentID(req.DocumentID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, err
	}

	if existing != nil {
		rec, err := r.client.Receipt.UpdateOneID(existing.ID).
			SetVendorName(req.VendorName).
			SetAmount(req.Amount).
			SetReceiptDate(req.ReceiptDate).
			SetNillablePaymentMethodID(req.PaymentMethodID).
			SetNillableNotes(req.Notes).
			Save(ctx)
		if err != nil {
			r.logger.Error("failed to update receipt", "document_id", req.DocumentID, "error", err)
			return nil, err
		}
		return utils.ToReceipt(rec), nil
	}

	rec, err := r.client.Receipt.Create().
		SetUserID(req.UserID).
		SetDocumentID(req.DocumentID).
		SetVendorName(req.VendorName).
		SetAmount(req.Amount).
		SetReceiptDate(req.ReceiptDate).
		SetNillablePaymentMethodID(req.PaymentMethodID).
		SetNillableNotes(req.Notes).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create receipt", "document_id", req.DocumentID, "error", err)
		return nil, err
	}
	return utils.ToReceipt(rec), nil
}

func (r *receiptRepository) GetByDocumentID(ctx context.Context, documentID uuid.UUID) (*entity.Receipt, error) {
	rec, err := r.client.Receipt.Query().
		Where(receipt.DocumentID(documentID)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, fmt.Errorf("receipt for document %s: %w", documentID, common.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return utils.ToReceipt(rec), nil
}
