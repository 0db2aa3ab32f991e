package dto

type ReservationFilters struct {
	OrderID string
	Status  string
}
