package dto

import "github.com/omnicart/database-service/internal/apperrors"

type CreatePaymentInput struct {
	ID      string  `json:"id"`
	OrderID string  `json:"order_id"`
	Amount  float64 `json:"amount"`
	Status  string  `json:"status"`
}

func (in *CreatePaymentInput) Validate() error {
	if in.ID == "" {
		return apperrors.Validation("id is required")
	}
	if in.OrderID == "" {
		return apperrors.Validation("order_id is required")
	}
	if in.Amount < 0 {
		return apperrors.Validation("amount must not be negative")
	}
	if in.Status == "" {
		return apperrors.Validation("status is required")
	}
	return nil
}

type UpdatePaymentInput struct {
	Amount *float64 `json:"amount"`
	Status *string  `json:"status"`
}
