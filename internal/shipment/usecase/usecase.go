package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/omnicart/database-service/internal/apperrors"
	"github.com/omnicart/database-service/internal/model"
	"github.com/omnicart/database-service/internal/order"
	"github.com/omnicart/database-service/internal/pkg/logger"
	"github.com/omnicart/database-service/internal/shipment"
	"github.com/omnicart/database-service/internal/shipment/dto"
)

type shipmentUseCase struct {
	repo   shipment.Repository
	orders order.Repository
	logger logger.ZapLogger
}

func NewShipmentUseCase(repo shipment.Repository, orders order.Repository, log logger.ZapLogger) shipment.UseCase {
	return &shipmentUseCase{repo: repo, orders: orders, logger: log}
}

func (uc *shipmentUseCase) Create(ctx context.Context, input *dto.CreateShipmentInput) (*model.Shipment, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	exists, err := uc.orders.Exists(ctx, input.OrderID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.NotFound("order", input.OrderID)
	}

	s := &model.Shipment{
		ID:      input.ID,
		OrderID: input.OrderID,
		Address: []byte(input.Address),
		Items:   []byte(input.Items),
		Status:  input.Status,
	}
	if err := uc.repo.Create(ctx, s); err != nil {
		return nil, err
	}

	uc.logger.Info("shipment created", zap.String("shipment_id", s.ID), zap.String("order_id", s.OrderID))
	return s, nil
}

func (uc *shipmentUseCase) GetByID(ctx context.Context, id string) (*model.Shipment, error) {
	s, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, apperrors.NotFound("shipment", id)
	}
	return s, nil
}

func (uc *shipmentUseCase) List(ctx context.Context) ([]model.Shipment, error) {
	return uc.repo.FindAll(ctx)
}

func (uc *shipmentUseCase) Update(ctx context.Context, id string, input *dto.UpdateShipmentInput) (*model.Shipment, error) {
	s, err := uc.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Address != nil {
		s.Address = []byte(input.Address)
	}
	if input.Items != nil {
		s.Items = []byte(input.Items)
	}
	if input.Status != nil {
		s.Status = *input.Status
	}

	updated, err := uc.repo.Update(ctx, s)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, apperrors.NotFound("shipment", id)
	}
	return s, nil
}

func (uc *shipmentUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}
