package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/omnicart/database-service/internal/apperrors"
	"github.com/omnicart/database-service/internal/model"
	"github.com/omnicart/database-service/internal/reservation"
	"github.com/omnicart/database-service/internal/reservation/dto"
)

// lockNotAvailable is the postgres error class raised when lock_timeout
// expires while waiting on a conflicting row lock.
const lockNotAvailable = "55P03"

const uniqueViolation = "23505"

type PGRepository struct {
	DB          *sqlx.DB
	LockTimeout time.Duration
}

func NewPGRepository(db *sqlx.DB, lockTimeout time.Duration) *PGRepository {
	return &PGRepository{DB: db, LockTimeout: lockTimeout}
}

func (r *PGRepository) Begin(ctx context.Context) (reservation.Tx, error) {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	if r.LockTimeout > 0 {
		stmt := fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", r.LockTimeout.Milliseconds())
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			tx.Rollback()
			return nil, err
		}
	}
	return tx, nil
}

func sqlTx(tx reservation.Tx) (*sqlx.Tx, error) {
	t, ok := tx.(*sqlx.Tx)
	if !ok {
		return nil, fmt.Errorf("unexpected transaction type %T", tx)
	}
	return t, nil
}

// asConflict converts a lock-timeout failure into the CONFLICT taxonomy code;
// everything else passes through unchanged.
func asConflict(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == lockNotAvailable {
		return apperrors.Conflict("timed out waiting for inventory row lock", err)
	}
	return err
}

// asDuplicate converts a duplicate-id insert failure into CONFLICT; any other
// failure is wrapped as a plain insert error.
func asDuplicate(err error, id string) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return apperrors.Conflict(fmt.Sprintf("reservation %s already exists", id), err)
	}
	return fmt.Errorf("failed to insert reservation: %w", err)
}

func (r *PGRepository) LockInventory(ctx context.Context, tx reservation.Tx, skus []string) (map[string]int, error) {
	t, err := sqlTx(tx)
	if err != nil {
		return nil, err
	}

	// ORDER BY sku fixes the lock acquisition order so overlapping
	// reservations cannot deadlock each other.
	query, args, err := sqlx.In(`SELECT sku, quantity FROM inventory WHERE sku IN (?) ORDER BY sku FOR UPDATE`, skus)
	if err != nil {
		return nil, err
	}
	query = t.Rebind(query)

	var rows []model.Inventory
	if err := t.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, asConflict(err)
	}

	onHand := make(map[string]int, len(rows))
	for _, row := range rows {
		onHand[row.SKU] = row.Quantity
	}
	return onHand, nil
}

func (r *PGRepository) ActiveReserved(ctx context.Context, tx reservation.Tx, skus []string) (map[string]int, error) {
	t, err := sqlTx(tx)
	if err != nil {
		return nil, err
	}

	query, args, err := sqlx.In(`
        SELECT it->>'sku' AS sku, SUM((it->>'qty')::int) AS reserved
        FROM inventory_reservations res, jsonb_array_elements(res.items) it
        WHERE res.status = ? AND it->>'sku' IN (?)
        GROUP BY it->>'sku'
    `, model.ReservationStatusActive, skus)
	if err != nil {
		return nil, err
	}
	query = t.Rebind(query)

	var rows []struct {
		SKU      string `db:"sku"`
		Reserved int    `db:"reserved"`
	}
	if err := t.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	reserved := make(map[string]int, len(rows))
	for _, row := range rows {
		reserved[row.SKU] = row.Reserved
	}
	return reserved, nil
}

func (r *PGRepository) GetReservationForUpdate(ctx context.Context, tx reservation.Tx, id string) (*model.Reservation, error) {
	t, err := sqlTx(tx)
	if err != nil {
		return nil, err
	}

	var res model.Reservation
	query := `SELECT id, "orderId", items, status FROM inventory_reservations WHERE id = $1 FOR UPDATE`
	if err := t.GetContext(ctx, &res, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, asConflict(err)
	}
	return &res, nil
}

func (r *PGRepository) InsertReservation(ctx context.Context, tx reservation.Tx, res *model.Reservation) error {
	t, err := sqlTx(tx)
	if err != nil {
		return err
	}

	query := `
        INSERT INTO inventory_reservations (id, "orderId", items, status)
        VALUES (:id, :orderId, :items, :status)
    `
	if _, err := t.NamedExecContext(ctx, query, res); err != nil {
		return asDuplicate(err, res.ID)
	}
	return nil
}

func (r *PGRepository) UpdateStatus(ctx context.Context, tx reservation.Tx, id string, status model.ReservationStatus) error {
	t, err := sqlTx(tx)
	if err != nil {
		return err
	}

	result, err := t.ExecContext(ctx, `UPDATE inventory_reservations SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update reservation status: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperrors.NotFound("reservation", id)
	}
	return nil
}

func (r *PGRepository) AdjustQuantity(ctx context.Context, tx reservation.Tx, sku string, delta int) error {
	t, err := sqlTx(tx)
	if err != nil {
		return err
	}

	result, err := t.ExecContext(ctx, `UPDATE inventory SET quantity = quantity + $1 WHERE sku = $2`, delta, sku)
	if err != nil {
		return fmt.Errorf("failed to adjust inventory for %s: %w", sku, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperrors.NotFound("sku", sku)
	}
	return nil
}

func (r *PGRepository) DeleteReservation(ctx context.Context, tx reservation.Tx, id string) error {
	t, err := sqlTx(tx)
	if err != nil {
		return err
	}
	if _, err := t.ExecContext(ctx, `DELETE FROM inventory_reservations WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete reservation: %w", err)
	}
	return nil
}

func (r *PGRepository) GetReservation(ctx context.Context, id string) (*model.Reservation, error) {
	var res model.Reservation
	query := `SELECT id, "orderId", items, status FROM inventory_reservations WHERE id = $1`
	if err := r.DB.GetContext(ctx, &res, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &res, nil
}

func (r *PGRepository) FindAll(ctx context.Context, f *dto.ReservationFilters) ([]model.Reservation, error) {
	conditions := []string{}
	args := map[string]interface{}{}

	if f != nil && f.OrderID != "" {
		conditions = append(conditions, `"orderId" = :order_id`)
		args["order_id"] = f.OrderID
	}
	if f != nil && f.Status != "" {
		conditions = append(conditions, "status = :status")
		args["status"] = f.Status
	}

	query := `SELECT id, "orderId", items, status FROM inventory_reservations`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY id"

	nstmt, err := r.DB.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer nstmt.Close()

	items := []model.Reservation{}
	if err := nstmt.SelectContext(ctx, &items, args); err != nil {
		return nil, err
	}
	return items, nil
}

// Available computes on-hand minus ACTIVE reserved in a single statement so
// the read is one consistent snapshot.
func (r *PGRepository) Available(ctx context.Context, sku string) (int, error) {
	query := `
        SELECT i.quantity - COALESCE((
            SELECT SUM((it->>'qty')::int)
            FROM inventory_reservations res, jsonb_array_elements(res.items) it
            WHERE res.status = $2 AND it->>'sku' = i.sku
        ), 0)
        FROM inventory i
        WHERE i.sku = $1
    `
	var available int
	if err := r.DB.GetContext(ctx, &available, query, sku, model.ReservationStatusActive); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, apperrors.NotFound("sku", sku)
		}
		return 0, err
	}
	return available, nil
}
