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

func (r *PGRepository) Create(ctx context.Context, p *model.Payment) error {
	query := `
        INSERT INTO payments (id, order_id, amount, status)
        VALUES (:id, :order_id, :amount, :status)
    `
	if _, err := r.DB.NamedExecContext(ctx, query, p); err != nil {
		return fmt.Errorf("failed to insert payment: %w", err)
	}
	return nil
}

func (r *PGRepository) GetByID(ctx context.Context, id string) (*model.Payment, error) {
	var p model.Payment
	if err := r.DB.GetContext(ctx, &p, `SELECT id, order_id, amount, status FROM payments WHERE id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *PGRepository) FindAll(ctx context.Context) ([]model.Payment, error) {
	items := []model.Payment{}
	if err := r.DB.SelectContext(ctx, &items, `SELECT id, order_id, amount, status FROM payments ORDER BY id`); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PGRepository) Update(ctx context.Context, p *model.Payment) (bool, error) {
	result, err := r.DB.ExecContext(ctx,
		`UPDATE payments SET amount = $1, status = $2 WHERE id = $3`,
		p.Amount, p.Status, p.ID)
	if err != nil {
		return false, fmt.Errorf("failed to update payment: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *PGRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.DB.ExecContext(ctx, `DELETE FROM payments WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete payment: %w", err)
	}
	return nil
}
