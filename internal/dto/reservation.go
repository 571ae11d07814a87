package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateReservationRequestDTO struct {
	ServiceID string `json:"serviceId" validate:"required,uuid" example:"6f1b9c1e-9f30-4f8a-b2cd-0f5ce12a7b10"`
	Date      string `json:"date" validate:"required" example:"2026-09-15T10:00:00Z"`
}

type UpdateReservationStatusRequestDTO struct {
	Status string `json:"status" validate:"required,oneof=PENDING CONFIRMED CANCELLED COMPLETED" example:"COMPLETED"`
}

type ReservationResponseDTO struct {
	ID                 string          `json:"id"`
	UserID             string          `json:"userId"`
	ServiceID          string          `json:"serviceId"`
	ServiceName        string          `json:"serviceName,omitempty"`
	ServiceDescription string          `json:"serviceDescription,omitempty"`
	Amount             decimal.Decimal `json:"amount"`
	Date               time.Time       `json:"date"`
	Status             string          `json:"status"`
	CreatedAt          time.Time       `json:"createdAt"`
	UpdatedAt          time.Time       `json:"updatedAt"`
	ClientName         string          `json:"clientName,omitempty"`
	ProviderName       string          `json:"providerName,omitempty"`
}
