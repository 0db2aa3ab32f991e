package order

import (
	"context"

	"github.com/omnicart/database-service/internal/model"
	"github.com/omnicart/database-service/internal/order/dto"
)

type UseCase interface {
	Create(ctx context.Context, input *dto.CreateOrderInput) (*model.Order, error)
	GetByID(ctx context.Context, id string) (*model.Order, error)
	List(ctx context.Context) ([]model.Order, error)
	// Update merges: incoming fields that are set override, everything else
	// (including refund metadata) is preserved.
	Update(ctx context.Context, id string, input *dto.UpdateOrderInput) (*model.Order, error)
	Delete(ctx context.Context, id string) error
	// SetRefundMetadata updates only the refund columns. Reports false when
	// the payload carried nothing to apply.
	SetRefundMetadata(ctx context.Context, id string, input *dto.RefundMetadataInput) (bool, []string, error)
}
