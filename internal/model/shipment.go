package model

import "github.com/jmoiron/sqlx/types"

type Shipment struct {
	ID      string         `db:"id" json:"id"`
	OrderID string         `db:"order_id" json:"order_id"`
	Address types.JSONText `db:"address" json:"address"`
	Items   types.JSONText `db:"items" json:"items"`
	Status  string         `db:"status" json:"status"`
}
