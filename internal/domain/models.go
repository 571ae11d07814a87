package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	RoleClient   = "CLIENT"
	RoleProvider = "SERVICE_PROVIDER"
)

const (
	StatusPending   = "PENDING"
	StatusConfirmed = "CONFIRMED"
	StatusCancelled = "CANCELLED"
	StatusCompleted = "COMPLETED"
)

type User struct {
	ID           uuid.UUID       `db:"id"`
	Email        string          `db:"email"`
	NIF          string          `db:"nif"`
	Name         string          `db:"name"`
	PasswordHash string          `db:"password_hash"`
	Role         string          `db:"role"`
	Credit       decimal.Decimal `db:"credit"`
	CreatedAt    time.Time       `db:"created_at"`
	UpdatedAt    time.Time       `db:"updated_at"`
}

type Service struct {
	ID          uuid.UUID       `db:"id"`
	ProviderID  uuid.UUID       `db:"provider_id"`
	Name        string          `db:"name"`
	Description string          `db:"description"`
	Price       decimal.Decimal `db:"price"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`
}

// Reservation snapshots the service price into Amount at creation time;
// later price edits never touch it. The trailing fields are filled from
// joins for display and are not stored on the reservations table.
type Reservation struct {
	ID        uuid.UUID       `db:"id"`
	UserID    uuid.UUID       `db:"user_id"`
	ServiceID uuid.UUID       `db:"service_id"`
	Amount    decimal.Decimal `db:"amount"`
	Date      time.Time       `db:"date"`
	Status    string          `db:"status"`
	CreatedAt time.Time       `db:"created_at"`
	UpdatedAt time.Time       `db:"updated_at"`

	ProviderID         uuid.UUID `db:"provider_id"`
	ServiceName        string    `db:"service_name"`
	ServiceDescription string    `db:"service_description"`
	ClientName         string    `db:"client_name"`
	ProviderName       string    `db:"provider_name"`
}

// ValidStatus reports whether s is one of the reservation status wire values.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// CanTransition encodes the reservation state machine: PENDING may move to
// CONFIRMED or CANCELLED, CONFIRMED to COMPLETED or CANCELLED. The terminal
// states accept nothing.
func CanTransition(from, to string) bool {
	switch from {
	case StatusPending:
		return to == StatusConfirmed || to == StatusCancelled
	case StatusConfirmed:
		return to == StatusCompleted || to == StatusCancelled
	}
	return false
}
