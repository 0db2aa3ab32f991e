package shipment

import (
	"context"

	"github.com/omnicart/database-service/internal/model"
)

type Repository interface {
	Create(ctx context.Context, s *model.Shipment) error
	GetByID(ctx context.Context, id string) (*model.Shipment, error)
	FindAll(ctx context.Context) ([]model.Shipment, error)
	Update(ctx context.Context, s *model.Shipment) (bool, error)
	Delete(ctx context.Context, id string) error
}
