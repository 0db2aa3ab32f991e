package inventory

import (
	"context"

	"github.com/omnicart/database-service/internal/inventory/dto"
	"github.com/omnicart/database-service/internal/model"
)

type UseCase interface {
	Upsert(ctx context.Context, input *dto.UpsertInventoryInput) (*model.Inventory, error)
	GetBySKU(ctx context.Context, sku string) (*model.Inventory, error)
	List(ctx context.Context) ([]model.Inventory, error)
	Update(ctx context.Context, sku string, input *dto.UpdateInventoryInput) (*model.Inventory, error)
	Delete(ctx context.Context, sku string) error
}
