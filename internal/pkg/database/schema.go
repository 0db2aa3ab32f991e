package database

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// schema mirrors the columns the repositories expect. Column names that came
// in camelCase from the upstream consumers ("userId", "orderId") are kept
// quoted so the wire format stays stable.
const schema = `
CREATE TABLE IF NOT EXISTS orders (
    id                    TEXT PRIMARY KEY,
    "userId"              TEXT,
    address               JSONB,
    items                 JSONB NOT NULL,
    total                 DOUBLE PRECISION NOT NULL,
    currency              TEXT,
    status                TEXT NOT NULL,
    refund_attempt        JSONB,
    payment_refund_status TEXT
);

CREATE TABLE IF NOT EXISTS inventory (
    sku      TEXT PRIMARY KEY,
    quantity INTEGER NOT NULL CHECK (quantity >= 0)
);

CREATE TABLE IF NOT EXISTS inventory_reservations (
    id        TEXT PRIMARY KEY,
    "orderId" TEXT NOT NULL,
    items     JSONB NOT NULL,
    status    TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_inventory_reservations_order
    ON inventory_reservations ("orderId");
CREATE INDEX IF NOT EXISTS idx_inventory_reservations_status
    ON inventory_reservations (status);

CREATE TABLE IF NOT EXISTS payments (
    id       TEXT PRIMARY KEY,
    order_id TEXT NOT NULL,
    amount   DOUBLE PRECISION NOT NULL,
    status   TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS shipments (
    id       TEXT PRIMARY KEY,
    order_id TEXT NOT NULL,
    address  JSONB NOT NULL,
    items    JSONB NOT NULL,
    status   TEXT NOT NULL
);
`

// EnsureSchema creates any missing tables on startup.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, schema)
	return err
}
