package reservationservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/servimarket/servimarket/internal/domain"
	"github.com/servimarket/servimarket/internal/pg"
)

type ReservationRepo interface {
	Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Reservation, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]domain.Reservation, error)
	FindByProviderID(ctx context.Context, providerID uuid.UUID) ([]domain.Reservation, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*domain.Reservation, error)
}

type AccountRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	AdjustCredit(ctx context.Context, id uuid.UUID, delta decimal.Decimal) error
}

type CatalogRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Service, error)
}

type Service struct {
	reservationRepo ReservationRepo
	accountRepo     AccountRepo
	catalogRepo     CatalogRepo
	txManager       pg.TXManager
}

func New(reservationRepo ReservationRepo, accountRepo AccountRepo, catalogRepo CatalogRepo, txManager pg.TXManager) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		accountRepo:     accountRepo,
		catalogRepo:     catalogRepo,
		txManager:       txManager,
	}
}

var (
	ErrServiceNotFound     = errors.New("service not found")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrAccountNotFound     = errors.New("account not found")
	ErrOwnService          = errors.New("cannot reserve your own service")
	ErrInsufficientCredit  = errors.New("insufficient credit")
	ErrInvalidTransition   = errors.New("invalid status transition")
	ErrCancelFinalized     = errors.New("cannot cancel a reservation")
	ErrNotAllowed          = errors.New("permission denied")
)

// Create validates the request and then moves the money and inserts the
// reservation row as one transaction. The price is snapshotted into the
// reservation amount, so later service edits never affect it.
func (s *Service) Create(ctx context.Context, serviceID uuid.UUID, date time.Time, callerID uuid.UUID) (*domain.Reservation, error) {
	svc, err := s.catalogRepo.FindByID(ctx, serviceID)
	if err != nil {
		zap.L().Error("can't find service", zap.Error(err))
		return nil, err
	}
	if svc == nil {
		return nil, ErrServiceNotFound
	}

	if svc.ProviderID == callerID {
		return nil, ErrOwnService
	}

	client, err := s.accountRepo.FindByID(ctx, callerID)
	if err != nil {
		zap.L().Error("can't find client account", zap.Error(err))
		return nil, err
	}
	if client == nil {
		return nil, fmt.Errorf("client %w", ErrAccountNotFound)
	}

	if client.Credit.LessThan(svc.Price) {
		return nil, fmt.Errorf("%w: you have %s and the service costs %s",
			ErrInsufficientCredit, client.Credit.StringFixed(2), svc.Price.StringFixed(2))
	}

	provider, err := s.accountRepo.FindByID(ctx, svc.ProviderID)
	if err != nil {
		zap.L().Error("can't find provider account", zap.Error(err))
		return nil, err
	}
	if provider == nil {
		return nil, fmt.Errorf("provider %w", ErrAccountNotFound)
	}

	reservation := &domain.Reservation{
		UserID:    callerID,
		ServiceID: svc.ID,
		Amount:    svc.Price,
		Date:      date,
		Status:    domain.StatusConfirmed,
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.accountRepo.AdjustCredit(ctx, callerID, svc.Price.Neg()); err != nil {
			return err
		}
		if err := s.accountRepo.AdjustCredit(ctx, svc.ProviderID, svc.Price); err != nil {
			return err
		}
		_, err := s.reservationRepo.Create(ctx, reservation)
		return err
	})
	if err != nil {
		zap.L().Error("reservation transaction aborted", zap.Error(err))
		return nil, err
	}

	reservation.ProviderID = svc.ProviderID
	reservation.ServiceName = svc.Name
	reservation.ServiceDescription = svc.Description
	reservation.ClientName = client.Name
	reservation.ProviderName = provider.Name

	zap.L().Info("reservation created",
		zap.String("reservation_id", reservation.ID.String()),
		zap.String("amount", reservation.Amount.StringFixed(2)))
	return reservation, nil
}

func (s *Service) FindMyReservations(ctx context.Context, callerID uuid.UUID) ([]domain.Reservation, error) {
	reservations, err := s.reservationRepo.FindByUserID(ctx, callerID)
	if err != nil {
		zap.L().Error("failed to fetch reservations", zap.Error(err))
		return nil, err
	}
	return reservations, nil
}

func (s *Service) FindServiceReservations(ctx context.Context, callerID uuid.UUID) ([]domain.Reservation, error) {
	reservations, err := s.reservationRepo.FindByProviderID(ctx, callerID)
	if err != nil {
		zap.L().Error("failed to fetch service reservations", zap.Error(err))
		return nil, err
	}
	return reservations, nil
}

func (s *Service) FindByID(ctx context.Context, id uuid.UUID, callerID uuid.UUID) (*domain.Reservation, error) {
	reservation, err := s.reservationRepo.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("can't find reservation", zap.Error(err))
		return nil, err
	}
	if reservation == nil {
		return nil, ErrReservationNotFound
	}

	if reservation.UserID != callerID && reservation.ProviderID != callerID {
		return nil, fmt.Errorf("%w: only the client or the provider may view this reservation", ErrNotAllowed)
	}

	return reservation, nil
}

// UpdateStatus is restricted to the provider of the underlying service and to
// the transitions allowed by the state machine. Moving to CANCELLED through
// this path refunds the client in the same transaction as the status write,
// so a provider-side cancellation can never keep the client's payment.
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, status string, callerID uuid.UUID) (*domain.Reservation, error) {
	reservation, err := s.reservationRepo.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("can't find reservation", zap.Error(err))
		return nil, err
	}
	if reservation == nil {
		return nil, ErrReservationNotFound
	}

	if reservation.ProviderID != callerID {
		return nil, fmt.Errorf("%w: only the provider may update the reservation status", ErrNotAllowed)
	}

	if !domain.CanTransition(reservation.Status, status) {
		return nil, fmt.Errorf("%w: %s cannot move to %s", ErrInvalidTransition, reservation.Status, status)
	}

	var updated *domain.Reservation
	if status == domain.StatusCancelled {
		err = s.txManager.Begin(ctx, func(ctx context.Context) error {
			if err := s.refund(ctx, reservation); err != nil {
				return err
			}
			updated, err = s.reservationRepo.UpdateStatus(ctx, id, status)
			return err
		})
	} else {
		updated, err = s.reservationRepo.UpdateStatus(ctx, id, status)
	}
	if err != nil {
		zap.L().Error("can't update reservation status", zap.Error(err))
		return nil, err
	}

	zap.L().Info("reservation status updated",
		zap.String("reservation_id", id.String()),
		zap.String("status", status))
	return updated, nil
}

// Cancel is the exact inverse of Create: it moves the snapshotted amount back
// from the provider to the client and marks the reservation CANCELLED, all in
// one transaction. Terminal reservations are rejected before any effect.
func (s *Service) Cancel(ctx context.Context, id uuid.UUID, callerID uuid.UUID) error {
	reservation, err := s.reservationRepo.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("can't find reservation", zap.Error(err))
		return err
	}
	if reservation == nil {
		return ErrReservationNotFound
	}

	if reservation.UserID != callerID {
		return fmt.Errorf("%w: only the client may cancel the reservation", ErrNotAllowed)
	}

	if reservation.Status == domain.StatusCancelled || reservation.Status == domain.StatusCompleted {
		return fmt.Errorf("%w with status %s", ErrCancelFinalized, reservation.Status)
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.refund(ctx, reservation); err != nil {
			return err
		}
		_, err := s.reservationRepo.UpdateStatus(ctx, id, domain.StatusCancelled)
		return err
	})
	if err != nil {
		zap.L().Error("cancellation transaction aborted", zap.Error(err))
		return err
	}

	zap.L().Info("reservation cancelled", zap.String("reservation_id", id.String()))
	return nil
}

func (s *Service) refund(ctx context.Context, reservation *domain.Reservation) error {
	if err := s.accountRepo.AdjustCredit(ctx, reservation.UserID, reservation.Amount); err != nil {
		return err
	}
	return s.accountRepo.AdjustCredit(ctx, reservation.ProviderID, reservation.Amount.Neg())
}
