package inventory

import (
	"context"

	"github.com/omnicart/database-service/internal/model"
)

type Repository interface {
	Upsert(ctx context.Context, inv *model.Inventory) error
	GetBySKU(ctx context.Context, sku string) (*model.Inventory, error)
	FindAll(ctx context.Context) ([]model.Inventory, error)
	// Update returns false when no row matched the sku.
	Update(ctx context.Context, inv *model.Inventory) (bool, error)
	Delete(ctx context.Context, sku string) error
	// ActiveReserved sums line-item quantities of ACTIVE reservations
	// holding the sku.
	ActiveReserved(ctx context.Context, sku string) (int, error)
}
