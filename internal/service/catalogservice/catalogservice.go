package catalogservice

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/servimarket/servimarket/internal/domain"
)

type Repo interface {
	Create(ctx context.Context, svc *domain.Service) (*domain.Service, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Service, error)
	FindAll(ctx context.Context) ([]domain.Service, error)
	FindByProviderID(ctx context.Context, providerID uuid.UUID) ([]domain.Service, error)
	Update(ctx context.Context, svc *domain.Service) (*domain.Service, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	serviceRepo Repo
}

func New(repo Repo) *Service {
	return &Service{
		serviceRepo: repo,
	}
}

var (
	ErrServiceNotFound = errors.New("service not found")
	ErrNotOwner        = errors.New("permission denied: only the owning provider may modify this service")
	ErrNegativePrice   = errors.New("price cannot be negative")
)

func (s *Service) Create(ctx context.Context, providerID uuid.UUID, name, description string, price decimal.Decimal) (*domain.Service, error) {
	if price.IsNegative() {
		return nil, ErrNegativePrice
	}

	svc := &domain.Service{
		ProviderID:  providerID,
		Name:        name,
		Description: description,
		Price:       price,
	}
	created, err := s.serviceRepo.Create(ctx, svc)
	if err != nil {
		zap.L().Error("can't create service: ", zap.Error(err))
		return nil, err
	}

	zap.L().Info("service created", zap.String("service_id", created.ID.String()))
	return created, nil
}

func (s *Service) FindAll(ctx context.Context) ([]domain.Service, error) {
	services, err := s.serviceRepo.FindAll(ctx)
	if err != nil {
		zap.L().Error("failed to fetch services", zap.Error(err))
		return nil, err
	}
	return services, nil
}

func (s *Service) FindByID(ctx context.Context, id uuid.UUID) (*domain.Service, error) {
	svc, err := s.serviceRepo.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("can't find service", zap.Error(err))
		return nil, err
	}
	if svc == nil {
		return nil, ErrServiceNotFound
	}
	return svc, nil
}

func (s *Service) FindMine(ctx context.Context, providerID uuid.UUID) ([]domain.Service, error) {
	services, err := s.serviceRepo.FindByProviderID(ctx, providerID)
	if err != nil {
		zap.L().Error("failed to fetch provider services", zap.Error(err))
		return nil, err
	}
	return services, nil
}

// Update applies the non-nil fields. Existing reservations keep the amount
// they snapshotted at creation time, so price edits never touch them.
func (s *Service) Update(ctx context.Context, id, callerID uuid.UUID, name, description *string, price *decimal.Decimal) (*domain.Service, error) {
	svc, err := s.serviceRepo.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("can't find service", zap.Error(err))
		return nil, err
	}
	if svc == nil {
		return nil, ErrServiceNotFound
	}
	if svc.ProviderID != callerID {
		return nil, ErrNotOwner
	}

	if name != nil {
		svc.Name = *name
	}
	if description != nil {
		svc.Description = *description
	}
	if price != nil {
		if price.IsNegative() {
			return nil, ErrNegativePrice
		}
		svc.Price = *price
	}

	updated, err := s.serviceRepo.Update(ctx, svc)
	if err != nil {
		zap.L().Error("can't update service: ", zap.Error(err))
		return nil, err
	}
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id, callerID uuid.UUID) error {
	svc, err := s.serviceRepo.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("can't find service", zap.Error(err))
		return err
	}
	if svc == nil {
		return ErrServiceNotFound
	}
	if svc.ProviderID != callerID {
		return ErrNotOwner
	}

	if err := s.serviceRepo.Delete(ctx, id); err != nil {
		zap.L().Error("can't delete service: ", zap.Error(err))
		return err
	}

	zap.L().Info("service deleted", zap.String("service_id", id.String()))
	return nil
}
