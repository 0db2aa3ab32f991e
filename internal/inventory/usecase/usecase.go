package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/omnicart/database-service/internal/apperrors"
	"github.com/omnicart/database-service/internal/inventory"
	"github.com/omnicart/database-service/internal/inventory/dto"
	"github.com/omnicart/database-service/internal/model"
	"github.com/omnicart/database-service/internal/pkg/cache"
	"github.com/omnicart/database-service/internal/pkg/logger"
)

type inventoryUseCase struct {
	repo   inventory.Repository
	cache  *cache.RedisClient
	logger logger.ZapLogger
}

func NewInventoryUseCase(repo inventory.Repository, c *cache.RedisClient, log logger.ZapLogger) inventory.UseCase {
	return &inventoryUseCase{repo: repo, cache: c, logger: log}
}

func (uc *inventoryUseCase) Upsert(ctx context.Context, input *dto.UpsertInventoryInput) (*model.Inventory, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if err := uc.guardReserved(ctx, input.SKU, input.Quantity); err != nil {
		return nil, err
	}

	inv := &model.Inventory{SKU: input.SKU, Quantity: input.Quantity}
	if err := uc.repo.Upsert(ctx, inv); err != nil {
		return nil, err
	}

	uc.invalidate(ctx, input.SKU)
	uc.logger.Info("inventory upserted", zap.String("sku", inv.SKU), zap.Int("quantity", inv.Quantity))
	return inv, nil
}

func (uc *inventoryUseCase) GetBySKU(ctx context.Context, sku string) (*model.Inventory, error) {
	inv, err := uc.repo.GetBySKU(ctx, sku)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, apperrors.NotFound("sku", sku)
	}
	return inv, nil
}

func (uc *inventoryUseCase) List(ctx context.Context) ([]model.Inventory, error) {
	return uc.repo.FindAll(ctx)
}

func (uc *inventoryUseCase) Update(ctx context.Context, sku string, input *dto.UpdateInventoryInput) (*model.Inventory, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if err := uc.guardReserved(ctx, sku, input.Quantity); err != nil {
		return nil, err
	}

	inv := &model.Inventory{SKU: sku, Quantity: input.Quantity}
	updated, err := uc.repo.Update(ctx, inv)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, apperrors.NotFound("sku", sku)
	}

	uc.invalidate(ctx, sku)
	return inv, nil
}

func (uc *inventoryUseCase) Delete(ctx context.Context, sku string) error {
	if err := uc.repo.Delete(ctx, sku); err != nil {
		return err
	}
	uc.invalidate(ctx, sku)
	return nil
}

// guardReserved rejects writes that would take on-hand quantity below the
// stock already promised to ACTIVE reservations, which would drive derived
// availability negative.
func (uc *inventoryUseCase) guardReserved(ctx context.Context, sku string, quantity int) error {
	reserved, err := uc.repo.ActiveReserved(ctx, sku)
	if err != nil {
		return err
	}
	if quantity < reserved {
		return apperrors.Conflict(
			fmt.Sprintf("quantity %d for %s is below the %d units held by active reservations", quantity, sku, reserved),
			nil,
		)
	}
	return nil
}

func (uc *inventoryUseCase) invalidate(ctx context.Context, sku string) {
	if uc.cache != nil {
		uc.cache.InvalidateAvailable(ctx, sku)
	}
}
