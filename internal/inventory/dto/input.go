package dto

import "github.com/omnicart/database-service/internal/apperrors"

type UpsertInventoryInput struct {
	SKU      string `json:"sku"`
	Quantity int    `json:"quantity"`
}

func (in *UpsertInventoryInput) Validate() error {
	if in.SKU == "" {
		return apperrors.Validation("sku is required")
	}
	if in.Quantity < 0 {
		return apperrors.Validation("quantity must not be negative")
	}
	return nil
}

type UpdateInventoryInput struct {
	Quantity int `json:"quantity"`
}

func (in *UpdateInventoryInput) Validate() error {
	if in.Quantity < 0 {
		return apperrors.Validation("quantity must not be negative")
	}
	return nil
}
