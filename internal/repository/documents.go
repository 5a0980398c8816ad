package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/billsnap/billsnap/constants"
	"github.com/billsnap/billsnap/internal/common"
	"github.com/billsnap/billsnap/gen/ent"
	"github.com/billsnap/billsnap/gen/ent/document"
	"github.com/billsnap/billsnap/internal/entity"
	"github.com/billsnap/billsnap/internal/store"
	"github.com/billsnap/billsnap/internal/utils"
)

type documentRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewDocumentRepository(client *ent.Client, logger *slog.Logger) store.DocumentStore {
	return &documentRepository{
		client: client,
		logger: logger,
	}
}

func (r *documentRepository) Create(ctx context.Context, req *store.CreateDocumentRequest) (*entity.Document, error) {
	if err := constants.ValidateImageName(req.FileName); err != nil {
		return nil, err
	}
	doc, err := r.client.Document.Create().
		SetUserID(req.UserID).
		SetFileName(req.FileName).
		SetNillableNotes(req.Notes).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create document", "user_id", req.UserID, "error", err)
		return nil, err
	}
	r.logger.Info("document created", "document_id", doc.ID, "file_name", doc.FileName)
	return utils.ToDocument(doc), nil
}

func (r *documentRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Document, error) {
	doc, err := r.client.Document.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, fmt.Errorf("document %s: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return utils.ToDocument(doc), nil
}

func (r *documentRepository) ListByUser(ctx context.Context, userID uuid.UUID, docType *constants.DocumentType, status *constants.DocumentStatus) ([]*entity.Document, error) {
	q := r.client.Document.Query().Where(document.UserID(userID))
	if docType != nil {
		q = q.Where(document.DocumentTypeEQ(document.DocumentType(*docType)))
	}
	if status != nil {
		q = q.Where(document.StatusEQ(document.Status(*status)))
	}
	docs, err := q.Order(document.ByCreatedAt(), document.ByID()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list documents", "user_id", userID, "error", err)
		return nil, err
	}

	result := make([]*entity.Document, len(docs))
	for i, d := range docs {
		result[i] = utils.ToDocument(d)
	}
	return result, nil
}

func (r *documentRepository) ApplyDraftFields(ctx context.Context, id uuid.UUID, fields store.DraftFields) (*entity.Document, error) {
	upd := r.client.Document.UpdateOneID(id).
		SetNillableVendorName(fields.VendorName).
		SetNillableAmount(fields.Amount).
		SetNillableDocumentDate(fields.DocumentDate).
		SetNillablePaymentMethodID(fields.PaymentMethodID)
	if fields.DocumentType != "" {
		upd = upd.SetDocumentType(document.DocumentType(fields.DocumentType))
	}
	doc, err := upd.Save(ctx)
	if err != nil {
		r.logger.Error("failed to apply draft fields", "document_id", id, "error", err)
		return nil, err
	}
	return utils.ToDocument(doc), nil
}

func (r *documentRepository) SetStatus(ctx context.Context, id uuid.UUID, status constants.DocumentStatus) error {
	err := r.client.Document.UpdateOneID(id).
		SetStatus(document.Status(status)).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to set document status", "document_id", id, "status", status, "error", err)
		return err
	}
	return nil
}
