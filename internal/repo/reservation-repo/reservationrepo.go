package reservationrepo

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/servimarket/servimarket/internal/domain"
	"github.com/servimarket/servimarket/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// enrichedSelect joins the service and both parties so a reservation row
// carries the display fields (service name/description, client and provider
// names) the way the API returns them.
const enrichedSelect = `
        SELECT r.id, r.user_id, r.service_id, r.amount, r.date, r.status, r.created_at, r.updated_at,
               s.provider_id, s.name AS service_name, s.description AS service_description,
               c.name AS client_name, p.name AS provider_name
        FROM reservations r
        JOIN services s ON s.id = r.service_id
        JOIN users c ON c.id = r.user_id
        JOIN users p ON p.id = s.provider_id`

func scanEnriched(row pgx.Row) (*domain.Reservation, error) {
	var res domain.Reservation
	err := row.Scan(
		&res.ID, &res.UserID, &res.ServiceID, &res.Amount, &res.Date, &res.Status, &res.CreatedAt, &res.UpdatedAt,
		&res.ProviderID, &res.ServiceName, &res.ServiceDescription,
		&res.ClientName, &res.ProviderName,
	)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// Create inserts the reservation row. When called with a context carrying a
// transaction it joins that transaction, so the insert commits or aborts
// together with the credit transfer.
func (r *Repository) Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error) {
	query := `
		INSERT INTO reservations (user_id, service_id, amount, date, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query,
		reservation.UserID, reservation.ServiceID, reservation.Amount, reservation.Date, reservation.Status).
		Scan(&reservation.ID, &reservation.CreatedAt, &reservation.UpdatedAt)
	if err != nil {
		zap.L().Error("can't save reservation", zap.Error(err))
		return nil, err
	}
	return reservation, nil
}

func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Reservation, error) {
	res, err := scanEnriched(r.db.QueryRow(ctx, enrichedSelect+" WHERE r.id = $1", id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find reservation", zap.Error(err))
		return nil, err
	}
	return res, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]domain.Reservation, error) {
	rows, err := r.db.Query(ctx, enrichedSelect+" WHERE r.user_id = $1 ORDER BY r.created_at DESC", userID)
	if err != nil {
		zap.L().Error("failed to fetch reservations", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return collectReservations(rows)
}

func (r *Repository) FindByProviderID(ctx context.Context, providerID uuid.UUID) ([]domain.Reservation, error) {
	rows, err := r.db.Query(ctx, enrichedSelect+" WHERE s.provider_id = $1 ORDER BY r.created_at DESC", providerID)
	if err != nil {
		zap.L().Error("failed to fetch service reservations", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return collectReservations(rows)
}

func collectReservations(rows pgx.Rows) ([]domain.Reservation, error) {
	var reservations []domain.Reservation
	for rows.Next() {
		var res domain.Reservation
		err := rows.Scan(
			&res.ID, &res.UserID, &res.ServiceID, &res.Amount, &res.Date, &res.Status, &res.CreatedAt, &res.UpdatedAt,
			&res.ProviderID, &res.ServiceName, &res.ServiceDescription,
			&res.ClientName, &res.ProviderName,
		)
		if err != nil {
			zap.L().Error("failed to scan reservation row", zap.Error(err))
			return nil, err
		}
		reservations = append(reservations, res)
	}
	return reservations, nil
}

// UpdateStatus writes the status only; the amount column is never touched
// after creation. Joins the ambient transaction when one is present.
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*domain.Reservation, error) {
	query := `
		UPDATE reservations
		SET status = $1, updated_at = now()
		WHERE id = $2
		RETURNING id, user_id, service_id, amount, date, status, created_at, updated_at
	`
	var res domain.Reservation
	err := r.db.QueryRow(ctx, query, status, id).
		Scan(&res.ID, &res.UserID, &res.ServiceID, &res.Amount, &res.Date, &res.Status, &res.CreatedAt, &res.UpdatedAt)
	if err != nil {
		zap.L().Error("can't update reservation status", zap.Error(err))
		return nil, err
	}
	return &res, nil
}
