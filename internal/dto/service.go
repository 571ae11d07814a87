package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateServiceRequestDTO struct {
	Name        string          `json:"name" validate:"required" example:"Haircut"`
	Description string          `json:"description" example:"30 minute haircut"`
	Price       decimal.Decimal `json:"price" example:"25.00"`
}

type UpdateServiceRequestDTO struct {
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
}

type ServiceResponseDTO struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ProviderID  string          `json:"providerId"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}
