package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

type ReservationStatus string

const (
	ReservationStatusActive    ReservationStatus = "ACTIVE"
	ReservationStatusReleased  ReservationStatus = "RELEASED"
	ReservationStatusFulfilled ReservationStatus = "FULFILLED"
)

// LineItem is one {sku, qty} pair of a reservation. The JSON keys match the
// serialized form stored in the inventory_reservations.items column.
type LineItem struct {
	SKU      string `json:"sku"`
	Quantity int    `json:"qty"`
}

// LineItems is stored as a JSONB column.
type LineItems []LineItem

func (li LineItems) Value() (driver.Value, error) {
	if li == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(li)
}

func (li *LineItems) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, li)
	case string:
		return json.Unmarshal([]byte(v), li)
	case nil:
		*li = nil
		return nil
	default:
		return fmt.Errorf("unsupported type %T for LineItems", src)
	}
}

// SKUs returns the referenced skus in ascending order, which is also the
// row-lock acquisition order used by the reservation engine.
func (li LineItems) SKUs() []string {
	skus := make([]string, 0, len(li))
	for _, item := range li {
		skus = append(skus, item.SKU)
	}
	for i := 1; i < len(skus); i++ {
		for j := i; j > 0 && skus[j] < skus[j-1]; j-- {
			skus[j], skus[j-1] = skus[j-1], skus[j]
		}
	}
	return skus
}

type Reservation struct {
	ID      string            `db:"id" json:"id"`
	OrderID string            `db:"orderId" json:"orderId"`
	Items   LineItems         `db:"items" json:"items"`
	Status  ReservationStatus `db:"status" json:"status"`
}
