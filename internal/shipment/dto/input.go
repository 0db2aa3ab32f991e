package dto

import (
	"encoding/json"

	"github.com/omnicart/database-service/internal/apperrors"
)

type CreateShipmentInput struct {
	ID      string          `json:"id"`
	OrderID string          `json:"order_id"`
	Address json.RawMessage `json:"address"`
	Items   json.RawMessage `json:"items"`
	Status  string          `json:"status"`
}

func (in *CreateShipmentInput) Validate() error {
	if in.ID == "" {
		return apperrors.Validation("id is required")
	}
	if in.OrderID == "" {
		return apperrors.Validation("order_id is required")
	}
	if len(in.Address) == 0 {
		return apperrors.Validation("address is required")
	}
	if len(in.Items) == 0 {
		return apperrors.Validation("items is required")
	}
	if in.Status == "" {
		return apperrors.Validation("status is required")
	}
	return nil
}

type UpdateShipmentInput struct {
	Address json.RawMessage `json:"address"`
	Items   json.RawMessage `json:"items"`
	Status  *string         `json:"status"`
}
