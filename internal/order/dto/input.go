package dto

import (
	"encoding/json"

	"github.com/omnicart/database-service/internal/apperrors"
)

type CreateOrderInput struct {
	ID                  string          `json:"id"`
	UserID              *string         `json:"userId"`
	Address             json.RawMessage `json:"address"`
	Items               json.RawMessage `json:"items"`
	Total               float64         `json:"total"`
	Currency            *string         `json:"currency"`
	Status              string          `json:"status"`
	RefundAttempt       json.RawMessage `json:"refund_attempt"`
	PaymentRefundStatus *string         `json:"payment_refund_status"`
}

func (in *CreateOrderInput) Validate() error {
	if in.ID == "" {
		return apperrors.Validation("id is required")
	}
	if len(in.Items) == 0 {
		return apperrors.Validation("items is required")
	}
	if in.Status == "" {
		return apperrors.Validation("status is required")
	}
	if in.Total < 0 {
		return apperrors.Validation("total must not be negative")
	}
	return nil
}

// UpdateOrderInput carries only the fields present in the request body; nil
// fields leave the stored value untouched.
type UpdateOrderInput struct {
	UserID              *string         `json:"userId"`
	Address             json.RawMessage `json:"address"`
	Items               json.RawMessage `json:"items"`
	Total               *float64        `json:"total"`
	Currency            *string         `json:"currency"`
	Status              *string         `json:"status"`
	RefundAttempt       json.RawMessage `json:"refund_attempt"`
	PaymentRefundStatus *string         `json:"payment_refund_status"`
}

type RefundMetadataInput struct {
	RefundAttempt       json.RawMessage `json:"refund_attempt"`
	PaymentRefundStatus *string         `json:"payment_refund_status"`
}
