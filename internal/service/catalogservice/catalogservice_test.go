package catalogservice

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/servimarket/servimarket/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	serviceRepo := NewMockRepo(ctrl)
	service := New(serviceRepo)
	defer ctrl.Finish()
	return service, serviceRepo
}

func TestCreate(t *testing.T) {
	service, serviceRepo := NewMock(t)

	providerID := uuid.New()
	serviceID := uuid.New()
	price := decimal.RequireFromString("25.00")

	tests := []struct {
		name          string
		price         decimal.Decimal
		prepareMock   func()
		expectedError error
	}{
		{
			name:  "Successful creation",
			price: price,
			prepareMock: func() {
				serviceRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, svc *domain.Service) (*domain.Service, error) {
						svc.ID = serviceID
						return svc, nil
					})
			},
		},
		{
			name:          "Negative price is rejected",
			price:         decimal.RequireFromString("-1.00"),
			prepareMock:   func() {},
			expectedError: ErrNegativePrice,
		},
		{
			name:  "Zero price is allowed",
			price: decimal.Zero,
			prepareMock: func() {
				serviceRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, svc *domain.Service) (*domain.Service, error) {
						svc.ID = serviceID
						return svc, nil
					})
			},
		},
		{
			name:  "Database error",
			price: price,
			prepareMock: func() {
				serviceRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			svc, err := service.Create(context.Background(), providerID, "Haircut", "30 minute haircut", tt.price)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, svc)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, serviceID, svc.ID)
				assert.Equal(t, providerID, svc.ProviderID)
				assert.True(t, svc.Price.Equal(tt.price))
			}
		})
	}
}

func TestFindByID(t *testing.T) {
	service, serviceRepo := NewMock(t)

	serviceID := uuid.New()
	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Service found",
			prepareMock: func() {
				serviceRepo.EXPECT().FindByID(gomock.Any(), serviceID).Return(&domain.Service{ID: serviceID}, nil)
			},
		},
		{
			name: "Service not found",
			prepareMock: func() {
				serviceRepo.EXPECT().FindByID(gomock.Any(), serviceID).Return(nil, nil)
			},
			expectedError: ErrServiceNotFound,
		},
		{
			name: "Database error",
			prepareMock: func() {
				serviceRepo.EXPECT().FindByID(gomock.Any(), serviceID).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			svc, err := service.FindByID(context.Background(), serviceID)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, serviceID, svc.ID)
			}
		})
	}
}

func TestFindAll(t *testing.T) {
	service, serviceRepo := NewMock(t)

	serviceRepo.EXPECT().FindAll(gomock.Any()).Return([]domain.Service{
		{ID: uuid.New()}, {ID: uuid.New()},
	}, nil)
	services, err := service.FindAll(context.Background())
	assert.NoError(t, err)
	assert.Len(t, services, 2)

	serviceRepo.EXPECT().FindAll(gomock.Any()).Return(nil, errors.New("db error"))
	_, err = service.FindAll(context.Background())
	assert.Error(t, err)
}

func TestFindMine(t *testing.T) {
	service, serviceRepo := NewMock(t)

	providerID := uuid.New()
	serviceRepo.EXPECT().FindByProviderID(gomock.Any(), providerID).Return([]domain.Service{
		{ID: uuid.New(), ProviderID: providerID},
	}, nil)
	services, err := service.FindMine(context.Background(), providerID)
	assert.NoError(t, err)
	assert.Len(t, services, 1)
}

func TestUpdate(t *testing.T) {
	service, serviceRepo := NewMock(t)

	providerID := uuid.New()
	otherID := uuid.New()
	serviceID := uuid.New()

	existing := func() *domain.Service {
		return &domain.Service{
			ID:          serviceID,
			ProviderID:  providerID,
			Name:        "Haircut",
			Description: "30 minute haircut",
			Price:       decimal.RequireFromString("25.00"),
		}
	}

	newName := "Beard trim"
	newPrice := decimal.RequireFromString("15.00")
	negativePrice := decimal.RequireFromString("-5.00")

	tests := []struct {
		name          string
		callerID      uuid.UUID
		updName       *string
		updPrice      *decimal.Decimal
		prepareMock   func()
		expectedError error
		check         func(t *testing.T, svc *domain.Service)
	}{
		{
			name:     "Owner updates name and price",
			callerID: providerID,
			updName:  &newName,
			updPrice: &newPrice,
			prepareMock: func() {
				serviceRepo.EXPECT().FindByID(gomock.Any(), serviceID).Return(existing(), nil)
				serviceRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, svc *domain.Service) (*domain.Service, error) {
						return svc, nil
					})
			},
			check: func(t *testing.T, svc *domain.Service) {
				assert.Equal(t, "Beard trim", svc.Name)
				assert.Equal(t, "30 minute haircut", svc.Description)
				assert.True(t, svc.Price.Equal(newPrice))
			},
		},
		{
			name:     "Nil fields are left untouched",
			callerID: providerID,
			prepareMock: func() {
				serviceRepo.EXPECT().FindByID(gomock.Any(), serviceID).Return(existing(), nil)
				serviceRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, svc *domain.Service) (*domain.Service, error) {
						return svc, nil
					})
			},
			check: func(t *testing.T, svc *domain.Service) {
				assert.Equal(t, "Haircut", svc.Name)
				assert.True(t, svc.Price.Equal(decimal.RequireFromString("25.00")))
			},
		},
		{
			name:     "Non-owner is rejected",
			callerID: otherID,
			updName:  &newName,
			prepareMock: func() {
				serviceRepo.EXPECT().FindByID(gomock.Any(), serviceID).Return(existing(), nil)
			},
			expectedError: ErrNotOwner,
		},
		{
			name:     "Negative price is rejected",
			callerID: providerID,
			updPrice: &negativePrice,
			prepareMock: func() {
				serviceRepo.EXPECT().FindByID(gomock.Any(), serviceID).Return(existing(), nil)
			},
			expectedError: ErrNegativePrice,
		},
		{
			name:     "Service not found",
			callerID: providerID,
			prepareMock: func() {
				serviceRepo.EXPECT().FindByID(gomock.Any(), serviceID).Return(nil, nil)
			},
			expectedError: ErrServiceNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			svc, err := service.Update(context.Background(), serviceID, tt.callerID, tt.updName, nil, tt.updPrice)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, svc)
			} else {
				assert.NoError(t, err)
				tt.check(t, svc)
			}
		})
	}
}

func TestDelete(t *testing.T) {
	service, serviceRepo := NewMock(t)

	providerID := uuid.New()
	otherID := uuid.New()
	serviceID := uuid.New()

	existing := &domain.Service{ID: serviceID, ProviderID: providerID}

	tests := []struct {
		name          string
		callerID      uuid.UUID
		prepareMock   func()
		expectedError error
	}{
		{
			name:     "Owner deletes the service",
			callerID: providerID,
			prepareMock: func() {
				serviceRepo.EXPECT().FindByID(gomock.Any(), serviceID).Return(existing, nil)
				serviceRepo.EXPECT().Delete(gomock.Any(), serviceID).Return(nil)
			},
		},
		{
			name:     "Non-owner is rejected",
			callerID: otherID,
			prepareMock: func() {
				serviceRepo.EXPECT().FindByID(gomock.Any(), serviceID).Return(existing, nil)
			},
			expectedError: ErrNotOwner,
		},
		{
			name:     "Service not found",
			callerID: providerID,
			prepareMock: func() {
				serviceRepo.EXPECT().FindByID(gomock.Any(), serviceID).Return(nil, nil)
			},
			expectedError: ErrServiceNotFound,
		},
		{
			name:     "Database error on delete",
			callerID: providerID,
			prepareMock: func() {
				serviceRepo.EXPECT().FindByID(gomock.Any(), serviceID).Return(existing, nil)
				serviceRepo.EXPECT().Delete(gomock.Any(), serviceID).Return(errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			err := service.Delete(context.Background(), serviceID, tt.callerID)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
