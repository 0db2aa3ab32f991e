package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/omnicart/database-service/internal/apperrors"
	"github.com/omnicart/database-service/internal/model"
	"github.com/omnicart/database-service/internal/pkg/broker"
	"github.com/omnicart/database-service/internal/pkg/cache"
	"github.com/omnicart/database-service/internal/pkg/logger"
	"github.com/omnicart/database-service/internal/reservation"
	"github.com/omnicart/database-service/internal/reservation/dto"
)

type reservationUseCase struct {
	repo     reservation.Repository
	cache    *cache.RedisClient
	producer *broker.Producer
	logger   logger.ZapLogger
	cacheTTL time.Duration
}

// NewReservationUseCase builds the reservation engine. cache and producer are
// optional; the engine degrades to store-only reads and no event publishing.
func NewReservationUseCase(repo reservation.Repository, c *cache.RedisClient, p *broker.Producer, log logger.ZapLogger, cacheTTL time.Duration) reservation.UseCase {
	return &reservationUseCase{
		repo:     repo,
		cache:    c,
		producer: p,
		logger:   log,
		cacheTTL: cacheTTL,
	}
}

func (uc *reservationUseCase) Create(ctx context.Context, input *dto.CreateReservationInput) (*model.Reservation, error) {
	items, err := input.Validate()
	if err != nil {
		return nil, err
	}

	id := input.ID
	if id == "" {
		id = uuid.New().String()
	}
	skus := items.SKUs()

	tx, err := uc.repo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	onHand, err := uc.repo.LockInventory(ctx, tx, skus)
	if err != nil {
		return nil, err
	}
	for _, sku := range skus {
		if _, ok := onHand[sku]; !ok {
			return nil, apperrors.NotFound("sku", sku)
		}
	}

	reserved, err := uc.repo.ActiveReserved(ctx, tx, skus)
	if err != nil {
		return nil, err
	}

	// All-or-nothing: collect every failing sku, then abort the whole
	// reservation if any line cannot be covered.
	var short []string
	for _, item := range items {
		if onHand[item.SKU]-reserved[item.SKU] < item.Quantity {
			short = append(short, item.SKU)
		}
	}
	if len(short) > 0 {
		return nil, apperrors.InsufficientStock(short)
	}

	res := &model.Reservation{
		ID:      id,
		OrderID: input.OrderID,
		Items:   items,
		Status:  model.ReservationStatusActive,
	}
	if err := uc.repo.InsertReservation(ctx, tx, res); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	uc.invalidate(ctx, skus)
	uc.publish(ctx, "ReservationCreated", res)
	uc.logger.Info("reservation created",
		zap.String("reservation_id", res.ID),
		zap.String("order_id", res.OrderID),
		zap.Int("line_items", len(res.Items)),
	)
	return res, nil
}

func (uc *reservationUseCase) Release(ctx context.Context, id string) (*model.Reservation, error) {
	tx, err := uc.repo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	res, err := uc.repo.GetReservationForUpdate(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, apperrors.NotFound("reservation", id)
	}
	if res.Status != model.ReservationStatusActive {
		return nil, apperrors.InvalidState(id, string(res.Status), string(model.ReservationStatusReleased))
	}

	// Availability is derived from ACTIVE reservations, so flipping the
	// status restores the stock by itself.
	if err := uc.repo.UpdateStatus(ctx, tx, id, model.ReservationStatusReleased); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	res.Status = model.ReservationStatusReleased
	uc.invalidate(ctx, res.Items.SKUs())
	uc.publish(ctx, "ReservationReleased", res)
	uc.logger.Info("reservation released", zap.String("reservation_id", id))
	return res, nil
}

func (uc *reservationUseCase) Fulfill(ctx context.Context, id string) (*model.Reservation, error) {
	tx, err := uc.repo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	res, err := uc.repo.GetReservationForUpdate(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, apperrors.NotFound("reservation", id)
	}
	if res.Status != model.ReservationStatusActive {
		return nil, apperrors.InvalidState(id, string(res.Status), string(model.ReservationStatusFulfilled))
	}

	// Physical stock leaves the building: decrement on-hand under the same
	// locks, then stop counting the reservation toward the reserved pool.
	skus := res.Items.SKUs()
	if _, err := uc.repo.LockInventory(ctx, tx, skus); err != nil {
		return nil, err
	}
	for _, item := range res.Items {
		if err := uc.repo.AdjustQuantity(ctx, tx, item.SKU, -item.Quantity); err != nil {
			return nil, err
		}
	}
	if err := uc.repo.UpdateStatus(ctx, tx, id, model.ReservationStatusFulfilled); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	res.Status = model.ReservationStatusFulfilled
	uc.invalidate(ctx, skus)
	uc.publish(ctx, "ReservationFulfilled", res)
	uc.logger.Info("reservation fulfilled", zap.String("reservation_id", id))
	return res, nil
}

func (uc *reservationUseCase) Delete(ctx context.Context, id string) error {
	tx, err := uc.repo.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := uc.repo.GetReservationForUpdate(ctx, tx, id)
	if err != nil {
		return err
	}
	if res == nil {
		// Idempotent delete.
		return tx.Commit()
	}
	if err := uc.repo.DeleteReservation(ctx, tx, id); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	uc.invalidate(ctx, res.Items.SKUs())
	uc.logger.Info("reservation deleted", zap.String("reservation_id", id))
	return nil
}

func (uc *reservationUseCase) GetByID(ctx context.Context, id string) (*model.Reservation, error) {
	res, err := uc.repo.GetReservation(ctx, id)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, apperrors.NotFound("reservation", id)
	}
	return res, nil
}

func (uc *reservationUseCase) List(ctx context.Context, filters *dto.ReservationFilters) ([]model.Reservation, error) {
	return uc.repo.FindAll(ctx, filters)
}

func (uc *reservationUseCase) Available(ctx context.Context, sku string) (int, error) {
	if uc.cache != nil {
		if available, ok := uc.cache.GetAvailable(ctx, sku); ok {
			return available, nil
		}
	}

	available, err := uc.repo.Available(ctx, sku)
	if err != nil {
		return 0, err
	}
	if uc.cache != nil {
		uc.cache.SetAvailable(ctx, sku, available, uc.cacheTTL)
	}
	return available, nil
}

func (uc *reservationUseCase) invalidate(ctx context.Context, skus []string) {
	if uc.cache != nil {
		uc.cache.InvalidateAvailable(ctx, skus...)
	}
}

func (uc *reservationUseCase) publish(ctx context.Context, eventType string, res *model.Reservation) {
	if uc.producer == nil {
		return
	}
	if err := publishReservationEvent(ctx, uc.producer, eventType, res); err != nil {
		// Events are advisory; the transaction already committed.
		uc.logger.Error("failed to publish reservation event",
			zap.String("event_type", eventType),
			zap.String("reservation_id", res.ID),
			zap.Error(err),
		)
	}
}
