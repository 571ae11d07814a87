package servicerepo

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

const serviceColumns = "id, provider_id, name, description, price, created_at, updated_at"

func scanService(row pgx.Row) (*domain.Service, error) {
	var svc domain.Service
	err := row.Scan(&svc.ID, &svc.ProviderID, &svc.Name, &svc.Description, &svc.Price, &svc.CreatedAt, &svc.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &svc, nil
}

func (r *Repository) Create(ctx context.Context, svc *domain.Service) (*domain.Service, error) {
	query := `
		INSERT INTO services (provider_id, name, description, price)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query, svc.ProviderID, svc.Name, svc.Description, svc.Price).
		Scan(&svc.ID, &svc.CreatedAt, &svc.UpdatedAt)
	if err != nil {
		zap.L().Error("can't save service", zap.Error(err))
		return nil, err
	}
	return svc, nil
}

func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Service, error) {
	svc, err := scanService(r.db.QueryRow(ctx, "SELECT "+serviceColumns+" FROM services WHERE id = $1", id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find service", zap.Error(err))
		return nil, err
	}
	return svc, nil
}

func (r *Repository) FindAll(ctx context.Context) ([]domain.Service, error) {
	query := "SELECT " + serviceColumns + " FROM services ORDER BY created_at DESC"
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("failed to fetch services", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return collectServices(rows)
}

func (r *Repository) FindByProviderID(ctx context.Context, providerID uuid.UUID) ([]domain.Service, error) {
	query := "SELECT " + serviceColumns + " FROM services WHERE provider_id = $1 ORDER BY created_at DESC"
	rows, err := r.db.Query(ctx, query, providerID)
	if err != nil {
		zap.L().Error("failed to fetch provider services", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return collectServices(rows)
}

func collectServices(rows pgx.Rows) ([]domain.Service, error) {
	var services []domain.Service
	for rows.Next() {
		var svc domain.Service
		err := rows.Scan(&svc.ID, &svc.ProviderID, &svc.Name, &svc.Description, &svc.Price, &svc.CreatedAt, &svc.UpdatedAt)
		if err != nil {
			zap.L().Error("failed to scan service row", zap.Error(err))
			return nil, err
		}
		services = append(services, svc)
	}
	return services, nil
}

func (r *Repository) Update(ctx context.Context, svc *domain.Service) (*domain.Service, error) {
	query := `
		UPDATE services
		SET name = $1, description = $2, price = $3, updated_at = now()
		WHERE id = $4
		RETURNING updated_at
	`
	err := r.db.QueryRow(ctx, query, svc.Name, svc.Description, svc.Price, svc.ID).Scan(&svc.UpdatedAt)
	if err != nil {
		zap.L().Error("can't update service", zap.Error(err))
		return nil, err
	}
	return svc, nil
}

func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, "DELETE FROM services WHERE id = $1", id)
	if err != nil {
		zap.L().Error("can't delete service", zap.Error(err))
		return err
	}
	return nil
}
