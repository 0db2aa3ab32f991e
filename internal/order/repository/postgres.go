package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/omnicart/database-service/internal/apperrors"
	"github.com/omnicart/database-service/internal/model"
)

const uniqueViolation = "23505"

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

const orderColumns = `id, "userId", address, items, total, currency, status, refund_attempt, payment_refund_status`

func (r *PGRepository) Create(ctx context.Context, o *model.Order) error {
	query := `
        INSERT INTO orders (id, "userId", address, items, total, currency, status, refund_attempt, payment_refund_status)
        VALUES (:id, :userId, :address, :items, :total, :currency, :status, :refund_attempt, :payment_refund_status)
    `
	if _, err := r.DB.NamedExecContext(ctx, query, o); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return apperrors.Conflict(fmt.Sprintf("order %s already exists", o.ID), err)
		}
		return fmt.Errorf("failed to insert order: %w", err)
	}
	return nil
}

func (r *PGRepository) GetByID(ctx context.Context, id string) (*model.Order, error) {
	var o model.Order
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	if err := r.DB.GetContext(ctx, &o, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &o, nil
}

func (r *PGRepository) FindAll(ctx context.Context) ([]model.Order, error) {
	items := []model.Order{}
	query := `SELECT ` + orderColumns + ` FROM orders ORDER BY id`
	if err := r.DB.SelectContext(ctx, &items, query); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PGRepository) Update(ctx context.Context, o *model.Order) (bool, error) {
	query := `
        UPDATE orders SET
            "userId" = :userId,
            address = :address,
            items = :items,
            total = :total,
            currency = :currency,
            status = :status,
            refund_attempt = :refund_attempt,
            payment_refund_status = :payment_refund_status
        WHERE id = :id
    `
	result, err := r.DB.NamedExecContext(ctx, query, o)
	if err != nil {
		return false, fmt.Errorf("failed to update order: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *PGRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.DB.ExecContext(ctx, `DELETE FROM orders WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	return nil
}

func (r *PGRepository) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.DB.QueryRowxContext(ctx, `SELECT EXISTS (SELECT 1 FROM orders WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check order existence: %w", err)
	}
	return exists, nil
}

func (r *PGRepository) UpdateRefundMetadata(ctx context.Context, id string, refundAttempt []byte, paymentRefundStatus *string) (bool, error) {
	query := `UPDATE orders SET`
	args := []interface{}{}
	set := 0

	if refundAttempt != nil {
		args = append(args, refundAttempt)
		query += fmt.Sprintf(" refund_attempt = $%d", len(args))
		set++
	}
	if paymentRefundStatus != nil {
		if set > 0 {
			query += ","
		}
		args = append(args, *paymentRefundStatus)
		query += fmt.Sprintf(" payment_refund_status = $%d", len(args))
		set++
	}
	if set == 0 {
		return false, nil
	}

	args = append(args, id)
	query += fmt.Sprintf(" WHERE id = $%d", len(args))

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to update refund metadata: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
