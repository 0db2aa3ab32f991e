package order

import (
	"context"

	"github.com/omnicart/database-service/internal/model"
)

type Repository interface {
	Create(ctx context.Context, o *model.Order) error
	GetByID(ctx context.Context, id string) (*model.Order, error)
	FindAll(ctx context.Context) ([]model.Order, error)
	// Update writes the full (already merged) row. Returns false when no row
	// matched the id.
	Update(ctx context.Context, o *model.Order) (bool, error)
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, id string) (bool, error)
	UpdateRefundMetadata(ctx context.Context, id string, refundAttempt []byte, paymentRefundStatus *string) (bool, error)
}
