package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/billsnap/billsnap/gen/ent"
	"github.com/billsnap/billsnap/gen/ent/paymentmethod"
	"github.com/billsnap/billsnap/internal/entity"
	"github.com/billsnap/billsnap/internal/store"
	"github.com/billsnap/billsnap/internal/utils"
)

type paymentMethodRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewPaymentMethodRepository(client *ent.Client, logger *slog.Logger) store.PaymentMethodStore {
	return &paymentMethodRepository{
		client: client,
		logger: logger,
	}
}

func (r *paymentMethodRepository) Create(ctx context.Context, req *store.CreatePaymentMethodRequest) (*entity.PaymentMethod, error) {
	m, err := r.client.PaymentMethod.Create().
		SetUserID(req.UserID).
		SetMethodType(paymentmethod.MethodType(req.MethodType)).
		SetNillableCardType(req.CardType).
		SetLastFour(req.LastFour).
		SetNillableNickname(req.Nickname).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create payment method", "user_id", req.UserID, "error", err)
		return nil, err
	}
	return utils.ToPaymentMethod(m), nil
}

func (r *paymentMethodRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.PaymentMethod, error) {
	methods, err := r.client.PaymentMethod.Query().
		Where(paymentmethod.UserID(userID)).
		Order(paymentmethod.ByCreatedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list payment methods", "user_id", userID, "error", err)
		return nil, err
	}

	result := make([]*entity.PaymentMethod, len(methods))
	for i, m := range methods {
		result[i] = utils.ToPaymentMethod(m)
	}
	return result, nil
}

func (r *paymentMethodRepository) FindByLastFour(ctx context.Context, userID uuid.UUID, lastFour string) (*entity.PaymentMethod, error) {
	m, err := r.client.PaymentMethod.Query().
		Where(
			paymentmethod.UserID(userID),
			paymentmethod.LastFour(lastFour),
		).
		First(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return utils.ToPaymentMethod(m), nil
}
