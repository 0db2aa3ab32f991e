package dto

import (
	"github.com/omnicart/database-service/internal/apperrors"
	"github.com/omnicart/database-service/internal/model"
)

type LineItemInput struct {
	SKU      string `json:"sku"`
	Quantity int    `json:"qty"`
}

type CreateReservationInput struct {
	// ID is optional; callers that pre-generate reservation ids may pass one.
	ID      string          `json:"id"`
	OrderID string          `json:"orderId"`
	Items   []LineItemInput `json:"items"`
}

// Validate turns the loosely typed request body into typed line items.
// Duplicate skus within one reservation are rejected rather than merged.
func (in *CreateReservationInput) Validate() (model.LineItems, error) {
	if in.OrderID == "" {
		return nil, apperrors.Validation("orderId is required")
	}
	if len(in.Items) == 0 {
		return nil, apperrors.Validation("items must not be empty")
	}

	seen := make(map[string]bool, len(in.Items))
	items := make(model.LineItems, 0, len(in.Items))
	for _, it := range in.Items {
		if it.SKU == "" {
			return nil, apperrors.Validation("line item sku is required")
		}
		if it.Quantity <= 0 {
			return nil, apperrors.Newf(apperrors.CodeValidation, "line item quantity for %s must be positive", it.SKU)
		}
		if seen[it.SKU] {
			return nil, apperrors.Newf(apperrors.CodeValidation, "duplicate sku %s in reservation", it.SKU)
		}
		seen[it.SKU] = true
		items = append(items, model.LineItem{SKU: it.SKU, Quantity: it.Quantity})
	}
	return items, nil
}

type UpdateReservationInput struct {
	Status string `json:"status"`
}

// Transition maps the requested status onto one of the two legal transitions.
func (in *UpdateReservationInput) Transition() (model.ReservationStatus, error) {
	switch model.ReservationStatus(in.Status) {
	case model.ReservationStatusReleased:
		return model.ReservationStatusReleased, nil
	case model.ReservationStatusFulfilled:
		return model.ReservationStatusFulfilled, nil
	default:
		return "", apperrors.Newf(apperrors.CodeValidation, "status must be %s or %s",
			model.ReservationStatusReleased, model.ReservationStatusFulfilled)
	}
}
