package reservation

import (
	"context"

	"github.com/omnicart/database-service/internal/model"
	"github.com/omnicart/database-service/internal/reservation/dto"
)

// Tx is one atomic unit of work. The postgres implementation backs it with a
// database transaction holding the row locks acquired through the methods
// below until Commit or Rollback.
type Tx interface {
	Commit() error
	Rollback() error
}

type Repository interface {
	Begin(ctx context.Context) (Tx, error)

	// LockInventory acquires exclusive locks on the inventory rows for the
	// given skus in ascending sku order and returns on-hand quantity per sku.
	// Skus without a row are absent from the result.
	LockInventory(ctx context.Context, tx Tx, skus []string) (map[string]int, error)
	// ActiveReserved sums line-item quantities of ACTIVE reservations per
	// sku. Only meaningful after LockInventory pinned the rows.
	ActiveReserved(ctx context.Context, tx Tx, skus []string) (map[string]int, error)
	GetReservationForUpdate(ctx context.Context, tx Tx, id string) (*model.Reservation, error)

	InsertReservation(ctx context.Context, tx Tx, r *model.Reservation) error
	UpdateStatus(ctx context.Context, tx Tx, id string, status model.ReservationStatus) error
	AdjustQuantity(ctx context.Context, tx Tx, sku string, delta int) error
	DeleteReservation(ctx context.Context, tx Tx, id string) error

	// Plain reads, outside any transaction.
	GetReservation(ctx context.Context, id string) (*model.Reservation, error)
	FindAll(ctx context.Context, filters *dto.ReservationFilters) ([]model.Reservation, error)
	Available(ctx context.Context, sku string) (int, error)
}
