package reservation

import (
	"context"

	"github.com/omnicart/database-service/internal/model"
	"github.com/omnicart/database-service/internal/reservation/dto"
)

type UseCase interface {
	// Create allocates stock for every line item atomically, all-or-nothing.
	Create(ctx context.Context, input *dto.CreateReservationInput) (*model.Reservation, error)
	// Release returns an ACTIVE reservation's stock to the available pool.
	// Releasing a reservation twice fails with INVALID_STATE.
	Release(ctx context.Context, id string) (*model.Reservation, error)
	// Fulfill consumes an ACTIVE reservation: on-hand stock is decremented
	// and the reservation stops counting toward the reserved pool.
	Fulfill(ctx context.Context, id string) (*model.Reservation, error)
	// Delete removes a reservation row outright. Missing ids are a no-op.
	Delete(ctx context.Context, id string) error

	GetByID(ctx context.Context, id string) (*model.Reservation, error)
	List(ctx context.Context, filters *dto.ReservationFilters) ([]model.Reservation, error)

	// Available reports quantity on hand minus ACTIVE reservations for a sku.
	// Standalone reads are best-effort and may be served from the advisory
	// cache; mutation paths always recompute under row locks instead.
	Available(ctx context.Context, sku string) (int, error)
}
