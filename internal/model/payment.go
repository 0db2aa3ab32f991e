package model

type Payment struct {
	ID      string  `db:"id" json:"id"`
	OrderID string  `db:"order_id" json:"order_id"`
	Amount  float64 `db:"amount" json:"amount"`
	Status  string  `db:"status" json:"status"`
}
