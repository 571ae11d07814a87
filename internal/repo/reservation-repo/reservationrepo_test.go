package reservationrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/servimarket/servimarket/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

var enrichedColumns = []string{
	"id", "user_id", "service_id", "amount", "date", "status", "created_at", "updated_at",
	"provider_id", "service_name", "service_description", "client_name", "provider_name",
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)

	reservationID := uuid.New()
	clientID := uuid.New()
	serviceID := uuid.New()
	now := time.Now()
	date := time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC)
	amount := decimal.RequireFromString("25.00")

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Successfully creates reservation",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO reservations (user_id, service_id, amount, date, status)`)).
					WithArgs(clientID, serviceID, amount, date, domain.StatusConfirmed).
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).
						AddRow(reservationID, now, now))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO reservations (user_id, service_id, amount, date, status)`)).
					WithArgs(clientID, serviceID, amount, date, domain.StatusConfirmed).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			reservation := &domain.Reservation{
				UserID:    clientID,
				ServiceID: serviceID,
				Amount:    amount,
				Date:      date,
				Status:    domain.StatusConfirmed,
			}
			result, err := repo.Create(context.Background(), reservation)

			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, reservationID, result.ID)
				assert.True(t, result.Amount.Equal(amount))
			}
		})
	}
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)

	reservationID := uuid.New()
	clientID := uuid.New()
	providerID := uuid.New()
	serviceID := uuid.New()
	now := time.Now()
	amount := decimal.RequireFromString("25.00")

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.Reservation
	}{
		{
			name: "Existing id returns enriched reservation",
			mockSetup: func() {
				rows := pgxmock.NewRows(enrichedColumns).
					AddRow(reservationID, clientID, serviceID, amount, now, domain.StatusConfirmed, now, now,
						providerID, "Haircut", "30 minute haircut", "Maria Silva", "Joao Santos")
				mock.ExpectQuery(regexp.QuoteMeta(`JOIN users p ON p.id = s.provider_id WHERE r.id = $1`)).
					WithArgs(reservationID).
					WillReturnRows(rows)
			},
			result: &domain.Reservation{
				ID:                 reservationID,
				UserID:             clientID,
				ServiceID:          serviceID,
				Amount:             amount,
				Date:               now,
				Status:             domain.StatusConfirmed,
				CreatedAt:          now,
				UpdatedAt:          now,
				ProviderID:         providerID,
				ServiceName:        "Haircut",
				ServiceDescription: "30 minute haircut",
				ClientName:         "Maria Silva",
				ProviderName:       "Joao Santos",
			},
		},
		{
			name: "Non-existing id returns nil",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`JOIN users p ON p.id = s.provider_id WHERE r.id = $1`)).
					WithArgs(reservationID).
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`JOIN users p ON p.id = s.provider_id WHERE r.id = $1`)).
					WithArgs(reservationID).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByID(context.Background(), reservationID)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_FindByUserID(t *testing.T) {
	repo, mock := NewMock(t)

	clientID := uuid.New()
	now := time.Now()
	amount := decimal.RequireFromString("25.00")

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		count     int
	}{
		{
			name: "Returns client reservations",
			mockSetup: func() {
				rows := pgxmock.NewRows(enrichedColumns).
					AddRow(uuid.New(), clientID, uuid.New(), amount, now, domain.StatusConfirmed, now, now,
						uuid.New(), "Haircut", "30 minute haircut", "Maria Silva", "Joao Santos").
					AddRow(uuid.New(), clientID, uuid.New(), amount, now, domain.StatusCancelled, now, now,
						uuid.New(), "Cleaning", "Full apartment cleaning", "Maria Silva", "Ana Costa")
				mock.ExpectQuery(regexp.QuoteMeta(`JOIN users p ON p.id = s.provider_id WHERE r.user_id = $1 ORDER BY r.created_at DESC`)).
					WithArgs(clientID).
					WillReturnRows(rows)
			},
			count: 2,
		},
		{
			name: "No reservations returns empty",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`JOIN users p ON p.id = s.provider_id WHERE r.user_id = $1 ORDER BY r.created_at DESC`)).
					WithArgs(clientID).
					WillReturnRows(pgxmock.NewRows(enrichedColumns))
			},
			count: 0,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`JOIN users p ON p.id = s.provider_id WHERE r.user_id = $1 ORDER BY r.created_at DESC`)).
					WithArgs(clientID).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByUserID(context.Background(), clientID)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Len(t, result, tt.count)
			}
		})
	}
}

func TestRepository_FindByProviderID(t *testing.T) {
	repo, mock := NewMock(t)

	providerID := uuid.New()
	now := time.Now()

	rows := pgxmock.NewRows(enrichedColumns).
		AddRow(uuid.New(), uuid.New(), uuid.New(), decimal.RequireFromString("25.00"), now, domain.StatusConfirmed, now, now,
			providerID, "Haircut", "30 minute haircut", "Maria Silva", "Joao Santos")
	mock.ExpectQuery(regexp.QuoteMeta(`JOIN users p ON p.id = s.provider_id WHERE s.provider_id = $1 ORDER BY r.created_at DESC`)).
		WithArgs(providerID).
		WillReturnRows(rows)

	result, err := repo.FindByProviderID(context.Background(), providerID)
	assert.NoError(t, err)
	assert.Len(t, result, 1)
	assert.Equal(t, providerID, result[0].ProviderID)
}

func TestRepository_UpdateStatus(t *testing.T) {
	repo, mock := NewMock(t)

	reservationID := uuid.New()
	clientID := uuid.New()
	serviceID := uuid.New()
	now := time.Now()
	amount := decimal.RequireFromString("25.00")

	tests := []struct {
		name      string
		status    string
		mockSetup func()
		expectErr bool
	}{
		{
			name:   "Successfully updates status",
			status: domain.StatusCancelled,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
			UPDATE reservations
			SET status = $1, updated_at = now()
			WHERE id = $2
			RETURNING id, user_id, service_id, amount, date, status, created_at, updated_at
		`)).
					WithArgs(domain.StatusCancelled, reservationID).
					WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "service_id", "amount", "date", "status", "created_at", "updated_at"}).
						AddRow(reservationID, clientID, serviceID, amount, now, domain.StatusCancelled, now, now))
			},
		},
		{
			name:   "Database error",
			status: domain.StatusCompleted,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
			UPDATE reservations
			SET status = $1, updated_at = now()
			WHERE id = $2
			RETURNING id, user_id, service_id, amount, date, status, created_at, updated_at
		`)).
					WithArgs(domain.StatusCompleted, reservationID).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.UpdateStatus(context.Background(), reservationID, tt.status)

			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.status, result.Status)
				assert.True(t, result.Amount.Equal(amount))
			}
		})
	}
}
