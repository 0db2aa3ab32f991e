package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/omnicart/database-service/internal/apperrors"
	"github.com/omnicart/database-service/internal/model"
	"github.com/omnicart/database-service/internal/order"
	"github.com/omnicart/database-service/internal/payment"
	"github.com/omnicart/database-service/internal/payment/dto"
	"github.com/omnicart/database-service/internal/pkg/logger"
)

type paymentUseCase struct {
	repo   payment.Repository
	orders order.Repository
	logger logger.ZapLogger
}

func NewPaymentUseCase(repo payment.Repository, orders order.Repository, log logger.ZapLogger) payment.UseCase {
	return &paymentUseCase{repo: repo, orders: orders, logger: log}
}

func (uc *paymentUseCase) Create(ctx context.Context, input *dto.CreatePaymentInput) (*model.Payment, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Referential existence is the only invariant payments carry.
	exists, err := uc.orders.Exists(ctx, input.OrderID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.NotFound("order", input.OrderID)
	}

	p := &model.Payment{
		ID:      input.ID,
		OrderID: input.OrderID,
		Amount:  input.Amount,
		Status:  input.Status,
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	uc.logger.Info("payment created", zap.String("payment_id", p.ID), zap.String("order_id", p.OrderID))
	return p, nil
}

func (uc *paymentUseCase) GetByID(ctx context.Context, id string) (*model.Payment, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperrors.NotFound("payment", id)
	}
	return p, nil
}

func (uc *paymentUseCase) List(ctx context.Context) ([]model.Payment, error) {
	return uc.repo.FindAll(ctx)
}

func (uc *paymentUseCase) Update(ctx context.Context, id string, input *dto.UpdatePaymentInput) (*model.Payment, error) {
	p, err := uc.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Amount != nil {
		if *input.Amount < 0 {
			return nil, apperrors.Validation("amount must not be negative")
		}
		p.Amount = *input.Amount
	}
	if input.Status != nil {
		p.Status = *input.Status
	}

	updated, err := uc.repo.Update(ctx, p)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, apperrors.NotFound("payment", id)
	}
	return p, nil
}

func (uc *paymentUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}
