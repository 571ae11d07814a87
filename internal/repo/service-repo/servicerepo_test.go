package servicerepo

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

var serviceRowColumns = []string{"id", "provider_id", "name", "description", "price", "created_at", "updated_at"}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)

	serviceID := uuid.New()
	providerID := uuid.New()
	now := time.Now()
	price := decimal.RequireFromString("25.00")

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Successfully creates service",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO services (provider_id, name, description, price)`)).
					WithArgs(providerID, "Haircut", "30 minute haircut", price).
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).
						AddRow(serviceID, now, now))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO services (provider_id, name, description, price)`)).
					WithArgs(providerID, "Haircut", "30 minute haircut", price).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			svc := &domain.Service{
				ProviderID:  providerID,
				Name:        "Haircut",
				Description: "30 minute haircut",
				Price:       price,
			}
			result, err := repo.Create(context.Background(), svc)

			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, serviceID, result.ID)
			}
		})
	}
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)

	serviceID := uuid.New()
	providerID := uuid.New()
	now := time.Now()
	price := decimal.RequireFromString("25.00")

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.Service
	}{
		{
			name: "Existing id returns service",
			mockSetup: func() {
				rows := pgxmock.NewRows(serviceRowColumns).
					AddRow(serviceID, providerID, "Haircut", "30 minute haircut", price, now, now)
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, provider_id, name, description, price, created_at, updated_at FROM services WHERE id = $1`)).
					WithArgs(serviceID).
					WillReturnRows(rows)
			},
			result: &domain.Service{
				ID:          serviceID,
				ProviderID:  providerID,
				Name:        "Haircut",
				Description: "30 minute haircut",
				Price:       price,
				CreatedAt:   now,
				UpdatedAt:   now,
			},
		},
		{
			name: "Non-existing id returns nil",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, provider_id, name, description, price, created_at, updated_at FROM services WHERE id = $1`)).
					WithArgs(serviceID).
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, provider_id, name, description, price, created_at, updated_at FROM services WHERE id = $1`)).
					WithArgs(serviceID).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByID(context.Background(), serviceID)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_FindAll(t *testing.T) {
	repo, mock := NewMock(t)

	now := time.Now()
	price := decimal.RequireFromString("25.00")

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		count     int
	}{
		{
			name: "Returns all services",
			mockSetup: func() {
				rows := pgxmock.NewRows(serviceRowColumns).
					AddRow(uuid.New(), uuid.New(), "Haircut", "30 minute haircut", price, now, now).
					AddRow(uuid.New(), uuid.New(), "Cleaning", "Full apartment cleaning", price, now, now)
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, provider_id, name, description, price, created_at, updated_at FROM services ORDER BY created_at DESC`)).
					WillReturnRows(rows)
			},
			count: 2,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, provider_id, name, description, price, created_at, updated_at FROM services ORDER BY created_at DESC`)).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindAll(context.Background())

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

	rows := pgxmock.NewRows(serviceRowColumns).
		AddRow(uuid.New(), providerID, "Haircut", "30 minute haircut", decimal.RequireFromString("25.00"), now, now)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, provider_id, name, description, price, created_at, updated_at FROM services WHERE provider_id = $1 ORDER BY created_at DESC`)).
		WithArgs(providerID).
		WillReturnRows(rows)

	result, err := repo.FindByProviderID(context.Background(), providerID)
	assert.NoError(t, err)
	assert.Len(t, result, 1)
	assert.Equal(t, providerID, result[0].ProviderID)
}

func TestRepository_Update(t *testing.T) {
	repo, mock := NewMock(t)

	serviceID := uuid.New()
	now := time.Now()
	price := decimal.RequireFromString("30.00")

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Successfully updates service",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SET name = $1, description = $2, price = $3, updated_at = now()`)).
					WithArgs("Haircut", "45 minute haircut", price, serviceID).
					WillReturnRows(pgxmock.NewRows([]string{"updated_at"}).AddRow(now))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SET name = $1, description = $2, price = $3, updated_at = now()`)).
					WithArgs("Haircut", "45 minute haircut", price, serviceID).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			svc := &domain.Service{
				ID:          serviceID,
				Name:        "Haircut",
				Description: "45 minute haircut",
				Price:       price,
			}
			result, err := repo.Update(context.Background(), svc)

			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, now, result.UpdatedAt)
			}
		})
	}
}

func TestRepository_Delete(t *testing.T) {
	repo, mock := NewMock(t)

	serviceID := uuid.New()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Successfully deletes service",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM services WHERE id = $1`)).
					WithArgs(serviceID).
					WillReturnResult(pgxmock.NewResult("DELETE", 1))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM services WHERE id = $1`)).
					WithArgs(serviceID).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			err := repo.Delete(context.Background(), serviceID)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
