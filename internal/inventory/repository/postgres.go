package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/omnicart/database-service/internal/model"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Upsert(ctx context.Context, inv *model.Inventory) error {
	query := `
        INSERT INTO inventory (sku, quantity)
        VALUES (:sku, :quantity)
        ON CONFLICT (sku)
        DO UPDATE SET quantity = EXCLUDED.quantity
    `
	if _, err := r.DB.NamedExecContext(ctx, query, inv); err != nil {
		return fmt.Errorf("failed to upsert inventory: %w", err)
	}
	return nil
}

func (r *PGRepository) GetBySKU(ctx context.Context, sku string) (*model.Inventory, error) {
	var inv model.Inventory
	err := r.DB.GetContext(ctx, &inv, `SELECT sku, quantity FROM inventory WHERE sku = $1`, sku)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &inv, nil
}

func (r *PGRepository) FindAll(ctx context.Context) ([]model.Inventory, error) {
	items := []model.Inventory{}
	if err := r.DB.SelectContext(ctx, &items, `SELECT sku, quantity FROM inventory ORDER BY sku`); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PGRepository) Update(ctx context.Context, inv *model.Inventory) (bool, error) {
	result, err := r.DB.ExecContext(ctx, `UPDATE inventory SET quantity = $1 WHERE sku = $2`, inv.Quantity, inv.SKU)
	if err != nil {
		return false, fmt.Errorf("failed to update inventory: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *PGRepository) Delete(ctx context.Context, sku string) error {
	if _, err := r.DB.ExecContext(ctx, `DELETE FROM inventory WHERE sku = $1`, sku); err != nil {
		return fmt.Errorf("failed to delete inventory: %w", err)
	}
	return nil
}

func (r *PGRepository) ActiveReserved(ctx context.Context, sku string) (int, error) {
	query := `
        SELECT COALESCE(SUM((it->>'qty')::int), 0)
        FROM inventory_reservations res, jsonb_array_elements(res.items) it
        WHERE res.status = $1 AND it->>'sku' = $2
    `
	var reserved int
	if err := r.DB.GetContext(ctx, &reserved, query, model.ReservationStatusActive, sku); err != nil {
		return 0, err
	}
	return reserved, nil
}
