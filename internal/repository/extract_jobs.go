package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/billsnap/billsnap/constants"
	"github.com/billsnap/billsnap/gen/ent"
	"github.com/billsnap/billsnap/internal/common"
	"github.com/billsnap/billsnap/gen/ent/extractjob"
	"github.com/billsnap/billsnap/internal/entity"
	"github.com/billsnap/billsnap/internal/store"
	"github.com/billsnap/billsnap/internal/utils"
)

type extractJobRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewExtractJobRepository(client *ent.Client, logger *slog.Logger) store.ExtractJobStore {
	return &extractJobRepository{
		client: client,
		logger: logger,
	}
}

func (r *extractJobRepository) Start(ctx context.Context, documentID uuid.UUID) (*entity.ExtractJob, error) {
	job, err := r.client.ExtractJob.Create().
		SetDocumentID(documentID).
		SetStatus(string(constants.JobStatusRunning)).
		SetStartedAt(time.Now()).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to start extract job", "document_id", documentID, "error", err)
		return nil, err
	}
	r.logger.Info("extract job started", "job_id", job.ID, "document_id", documentID)
	return utils.ToExtractJob(job), nil
}

func (r *extractJobRepository) FinishOCRSuccess(ctx context.Context, jobID uuid.UUID, ocrText string) error {
	err := r.client.ExtractJob.UpdateOneID(jobID).
		SetStatus(string(constants.JobStatusOCROK)).
		SetOcrText(ocrText).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to record OCR success", "job_id", jobID, "error", err)
		return err
	}
	return nil
}

func (r *extractJobRepository) FinishParseSuccess(ctx context.Context, jobID uuid.UUID, extracted map[string]any, confidence float32, needsReview bool) error {
	err := r.client.ExtractJob.UpdateOneID(jobID).
		SetStatus(string(constants.JobStatusParseOK)).
		SetExtractedJSON(extracted).
		SetConfidence(confidence).
		SetNeedsReview(needsReview).
		SetFinishedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to record parse success", "job_id", jobID, "error", err)
		return err
	}
	return nil
}

func (r *extractJobRepository) FinishFailure(ctx context.Context, jobID uuid.UUID, errorMessage string) error {
	err := r.client.ExtractJob.UpdateOneID(jobID).
		SetStatus(string(constants.JobStatusFailed)).
		SetErrorMessage(errorMessage).
		SetFinishedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to record job failure", "job_id", jobID, "error", err)
		return err
	}
	return nil
}

func (r *extractJobRepository) GetByID(ctx context.Context, jobID uuid.UUID) (*entity.ExtractJob, error) {
	job, err := r.client.ExtractJob.Get(ctx, jobID)
	if ent.IsNotFound(err) {
		return nil, fmt.Errorf("extract job %s: %w", jobID, common.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return utils.ToExtractJob(job), nil
}

func (r *extractJobRepository) ListByDocument(ctx context.Context, documentID uuid.UUID) ([]*entity.ExtractJob, error) {
	jobs, err := r.client.ExtractJob.Query().
		Where(extractjob.DocumentID(documentID)).
		Order(extractjob.ByStartedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list extract jobs", "document_id", documentID, "error", err)
		return nil, err
	}

	result := make([]*entity.ExtractJob, len(jobs))
	for i, j := range jobs {
		result[i] = utils.ToExtractJob(j)
	}
	return result, nil
}
