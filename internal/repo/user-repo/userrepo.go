package userrepo

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
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

const userColumns = "id, email, nif, name, password_hash, role, credit, created_at, updated_at"

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(&user.ID, &user.Email, &user.NIF, &user.Name, &user.PasswordHash, &user.Role, &user.Credit, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := scanUser(r.db.QueryRow(ctx, "SELECT "+userColumns+" FROM users WHERE id = $1", id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find user by id", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (r *Repository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := scanUser(r.db.QueryRow(ctx, "SELECT "+userColumns+" FROM users WHERE email = $1", email))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find user by email", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (r *Repository) FindByNif(ctx context.Context, nif string) (*domain.User, error) {
	user, err := scanUser(r.db.QueryRow(ctx, "SELECT "+userColumns+" FROM users WHERE nif = $1", nif))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find user by nif", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (r *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (email, nif, name, password_hash, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, credit, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query, user.Email, user.NIF, user.Name, user.PasswordHash, user.Role).
		Scan(&user.ID, &user.Credit, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

// AdjustCredit applies a relative credit change. The row lock taken by the
// UPDATE serializes concurrent transfers touching the same account, and the
// credit >= 0 check constraint aborts any transaction that would overdraw.
func (r *Repository) AdjustCredit(ctx context.Context, id uuid.UUID, delta decimal.Decimal) error {
	query := `
		UPDATE users
		SET credit = credit + $1, updated_at = now()
		WHERE id = $2
		RETURNING credit
	`
	var credit decimal.Decimal
	err := r.db.QueryRow(ctx, query, delta, id).Scan(&credit)
	if err != nil {
		zap.L().Error("can't adjust user credit", zap.Error(err))
		return err
	}
	return nil
}
