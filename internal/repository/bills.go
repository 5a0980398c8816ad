package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/billsnap/billsnap/gen/ent"
	"github.com/billsnap/billsnap/internal/common"
	"github.com/billsnap/billsnap/gen/ent/bill"
	"github.com/billsnap/billsnap/internal/entity"
	"github.com/billsnap/billsnap/internal/store"
	"github.com/billsnap/billsnap/internal/utils"
)

type billRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewBillRepository(client *ent.Client, logger *slog.Logger) store.BillStore {
	return &billRepository{
		client: client,
		logger: logger,
	}
}

func (r *billRepository) ListByUser(ctx context.Context, userID uuid.UUID, fromDate, toDate *time.Time, unpaidOnly bool) ([]*entity.Bill, error) {
	q := r.client.Bill.Query().Where(bill.UserID(userID))
	if fromDate != nil {
		q = q.Where(bill.DueDateGTE(*fromDate))
	}
	if toDate != nil {
		q = q.Where(bill.DueDateLTE(*toDate))
	}
	if unpaidOnly {
		q = q.Where(bill.Paid(false))
	}
	bills, err := q.Order(bill.ByDueDate()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list bills", "user_id", userID, "error", err)
		return nil, err
	}

	result := make([]*entity.Bill, len(bills))
	for i, b := range bills {
		result[i] = utils.ToBill(b)
	}
	return result, nil
}

func (r *billRepository) Upsert(ctx context.Context, req *store.CreateBillRequest) (*entity.Bill, error) {
	existing, err := r.client.Bill.Query().
		Where(bill.DocumentID(req.DocumentID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, err
	}

	if existing != nil {
		b, err := r.client.Bill.UpdateOneID(existing.ID).
			SetVendorName(req.VendorName).
			SetAmount(req.Amount).
			SetDueDate(req.DueDate).
			SetNillableNotes(req.Notes).
			Save(ctx)
		if err != nil {
			r.logger.Error("failed to update bill", "document_id", req.DocumentID, "error", err)
			return nil, err
		}
		return utils.ToBill(b), nil
	}

	b, err := r.client.Bill.Create().
		SetUserID(req.UserID).
		SetDocumentID(req.DocumentID).
		SetVendorName(req.VendorName).
		SetAmount(req.Amount).
		SetDueDate(req.DueDate).
		SetNillableNotes(req.Notes).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create bill", "document_id", req.DocumentID, "error", err)
		return nil, err
	}
	return utils.ToBill(b), nil
}

func (r *billRepository) GetByDocumentID(ctx context.Context, documentID uuid.UUID) (*entity.Bill, error) {
	b, err := r.client.Bill.Query().
		Where(bill.DocumentID(documentID)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, fmt.Errorf("bill for document %s: %w", documentID, common.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return utils.ToBill(b), nil
}

func (r *billRepository) MarkPaid(ctx context.Context, id uuid.UUID, paidDate time.Time) (*entity.Bill, error) {
	b, err := r.client.Bill.UpdateOneID(id).
		SetPaid(true).
		SetPaidDate(paidDate).
		Save(ctx)
	if ent.IsNotFound(err) {
		return nil, fmt.Errorf("bill %s: %w", id, common.ErrNotFound)
	}
	if err != nil {
		r.logger.Error("failed to mark bill paid", "bill_id", id, "error", err)
		return nil, err
	}
	r.logger.Info("bill marked paid", "bill_id", id, "paid_date", paidDate.Format("2006-01-02"))
	return utils.ToBill(b), nil
}
