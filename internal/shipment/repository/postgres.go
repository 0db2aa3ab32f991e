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

func (r *PGRepository) Create(ctx context.Context, s *model.Shipment) error {
	query := `
        INSERT INTO shipments (id, order_id, address, items, status)
        VALUES (:id, :order_id, :address, :items, :status)
    `
	if _, err := r.DB.NamedExecContext(ctx, query, s); err != nil {
		return fmt.Errorf("failed to insert shipment: %w", err)
	}
	return nil
}

func (r *PGRepository) GetByID(ctx context.Context, id string) (*model.Shipment, error) {
	var s model.Shipment
	query := `SELECT id, order_id, address, items, status FROM shipments WHERE id = $1`
	if err := r.DB.GetContext(ctx, &s, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *PGRepository) FindAll(ctx context.Context) ([]model.Shipment, error) {
	items := []model.Shipment{}
	query := `SELECT id, order_id, address, items, status FROM shipments ORDER BY id`
	if err := r.DB.SelectContext(ctx, &items, query); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PGRepository) Update(ctx context.Context, s *model.Shipment) (bool, error) {
	result, err := r.DB.ExecContext(ctx,
		`UPDATE shipments SET address = $1, items = $2, status = $3 WHERE id = $4`,
		s.Address, s.Items, s.Status, s.ID)
	if err != nil {
		return false, fmt.Errorf("failed to update shipment: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *PGRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.DB.ExecContext(ctx, `DELETE FROM shipments WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete shipment: %w", err)
	}
	return nil
}
