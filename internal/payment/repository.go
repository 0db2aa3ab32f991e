package payment

import (
	"context"

	"github.com/omnicart/database-service/internal/model"
)

type Repository interface {
	Create(ctx context.Context, p *model.Payment) error
	GetByID(ctx context.Context, id string) (*model.Payment, error)
	FindAll(ctx context.Context) ([]model.Payment, error)
	Update(ctx context.Context, p *model.Payment) (bool, error)
	Delete(ctx context.Context, id string) error
}
