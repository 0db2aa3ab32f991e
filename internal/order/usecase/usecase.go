package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/omnicart/database-service/internal/apperrors"
	"github.com/omnicart/database-service/internal/model"
	"github.com/omnicart/database-service/internal/order"
	"github.com/omnicart/database-service/internal/order/dto"
	"github.com/omnicart/database-service/internal/pkg/logger"
)

type orderUseCase struct {
	repo   order.Repository
	logger logger.ZapLogger
}

func NewOrderUseCase(repo order.Repository, log logger.ZapLogger) order.UseCase {
	return &orderUseCase{repo: repo, logger: log}
}

func (uc *orderUseCase) Create(ctx context.Context, input *dto.CreateOrderInput) (*model.Order, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	currency := input.Currency
	if currency == nil {
		def := "INR"
		currency = &def
	}

	o := &model.Order{
		ID:                  input.ID,
		UserID:              input.UserID,
		Address:             []byte(input.Address),
		Items:               []byte(input.Items),
		Total:               input.Total,
		Currency:            currency,
		Status:              input.Status,
		RefundAttempt:       []byte(input.RefundAttempt),
		PaymentRefundStatus: input.PaymentRefundStatus,
	}
	if err := uc.repo.Create(ctx, o); err != nil {
		return nil, err
	}

	uc.logger.Info("order created", zap.String("order_id", o.ID), zap.Float64("total", o.Total))
	return o, nil
}

func (uc *orderUseCase) GetByID(ctx context.Context, id string) (*model.Order, error) {
	o, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, apperrors.NotFound("order", id)
	}
	return o, nil
}

func (uc *orderUseCase) List(ctx context.Context) ([]model.Order, error) {
	return uc.repo.FindAll(ctx)
}

func (uc *orderUseCase) Update(ctx context.Context, id string, input *dto.UpdateOrderInput) (*model.Order, error) {
	existing, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperrors.NotFound("order", id)
	}

	// Merge: only fields present in the payload override the stored row, so
	// refund metadata written out-of-band survives a plain order update.
	if input.UserID != nil {
		existing.UserID = input.UserID
	}
	if input.Address != nil {
		existing.Address = []byte(input.Address)
	}
	if input.Items != nil {
		existing.Items = []byte(input.Items)
	}
	if input.Total != nil {
		if *input.Total < 0 {
			return nil, apperrors.Validation("total must not be negative")
		}
		existing.Total = *input.Total
	}
	if input.Currency != nil {
		existing.Currency = input.Currency
	}
	if input.Status != nil {
		existing.Status = *input.Status
	}
	if input.RefundAttempt != nil {
		existing.RefundAttempt = []byte(input.RefundAttempt)
	}
	if input.PaymentRefundStatus != nil {
		existing.PaymentRefundStatus = input.PaymentRefundStatus
	}

	updated, err := uc.repo.Update(ctx, existing)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, apperrors.NotFound("order", id)
	}
	return existing, nil
}

func (uc *orderUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func (uc *orderUseCase) SetRefundMetadata(ctx context.Context, id string, input *dto.RefundMetadataInput) (bool, []string, error) {
	var keys []string
	if input.RefundAttempt != nil {
		keys = append(keys, "refund_attempt")
	}
	if input.PaymentRefundStatus != nil {
		keys = append(keys, "payment_refund_status")
	}
	if len(keys) == 0 {
		return false, nil, nil
	}

	updated, err := uc.repo.UpdateRefundMetadata(ctx, id, input.RefundAttempt, input.PaymentRefundStatus)
	if err != nil {
		return false, nil, err
	}
	if !updated {
		return false, nil, apperrors.NotFound("order", id)
	}
	return true, keys, nil
}
