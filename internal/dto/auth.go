package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type RegisterRequestDTO struct {
	Email    string `json:"email" validate:"required,email" example:"maria@example.com"`
	NIF      string `json:"nif" validate:"required,len=9,numeric" example:"123456789"`
	Name     string `json:"name" validate:"required" example:"Maria Silva"`
	Password string `json:"password" validate:"required,min=6" example:"s3cret!"`
	Role     string `json:"role" validate:"required,oneof=CLIENT SERVICE_PROVIDER" example:"CLIENT"`
}

type LoginRequestDTO struct {
	Email    string `json:"email" validate:"required,email" example:"maria@example.com"`
	Password string `json:"password" validate:"required" example:"s3cret!"`
}

type UserResponseDTO struct {
	ID        string          `json:"id" example:"6f1b9c1e-9f30-4f8a-b2cd-0f5ce12a7b10"`
	Email     string          `json:"email" example:"maria@example.com"`
	NIF       string          `json:"nif" example:"123456789"`
	Name      string          `json:"name" example:"Maria Silva"`
	Credit    decimal.Decimal `json:"credit" example:"100.00"`
	Role      string          `json:"role" example:"CLIENT"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

type AuthResponseDTO struct {
	AccessToken string          `json:"accessToken"`
	User        UserResponseDTO `json:"user"`
}
