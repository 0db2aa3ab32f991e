package model

// Inventory is one stock row: quantity is the physical on-hand count.
// Reserved quantity is never stored; it is derived from ACTIVE reservations.
type Inventory struct {
	SKU      string `db:"sku" json:"sku"`
	Quantity int    `db:"quantity" json:"quantity"`
}
