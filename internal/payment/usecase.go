package payment

import (
	"context"

	"github.com/omnicart/database-service/internal/model"
	"github.com/omnicart/database-service/internal/payment/dto"
)

type UseCase interface {
	Create(ctx context.Context, input *dto.CreatePaymentInput) (*model.Payment, error)
	GetByID(ctx context.Context, id string) (*model.Payment, error)
	List(ctx context.Context) ([]model.Payment, error)
	Update(ctx context.Context, id string, input *dto.UpdatePaymentInput) (*model.Payment, error)
	Delete(ctx context.Context, id string) error
}
