package shipment

import (
	"context"

	"github.com/omnicart/database-service/internal/model"
	"github.com/omnicart/database-service/internal/shipment/dto"
)

type UseCase interface {
	Create(ctx context.Context, input *dto.CreateShipmentInput) (*model.Shipment, error)
	GetByID(ctx context.Context, id string) (*model.Shipment, error)
	List(ctx context.Context) ([]model.Shipment, error)
	Update(ctx context.Context, id string, input *dto.UpdateShipmentInput) (*model.Shipment, error)
	Delete(ctx context.Context, id string) error
}
