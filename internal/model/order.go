package model

import "github.com/jmoiron/sqlx/types"

type Order struct {
	ID                  string         `db:"id" json:"id"`
	UserID              *string        `db:"userId" json:"userId"`
	Address             types.JSONText `db:"address" json:"address"`
	Items               types.JSONText `db:"items" json:"items"`
	Total               float64        `db:"total" json:"total"`
	Currency            *string        `db:"currency" json:"currency"`
	Status              string         `db:"status" json:"status"`
	RefundAttempt       types.JSONText `db:"refund_attempt" json:"refund_attempt"`
	PaymentRefundStatus *string        `db:"payment_refund_status" json:"payment_refund_status"`
}
