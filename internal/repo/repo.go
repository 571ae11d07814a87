package repo

import (
	"github.com/servimarket/servimarket/internal/pg"
	reservationrepo "github.com/servimarket/servimarket/internal/repo/reservation-repo"
	servicerepo "github.com/servimarket/servimarket/internal/repo/service-repo"
	userrepo "github.com/servimarket/servimarket/internal/repo/user-repo"
	"github.com/servimarket/servimarket/internal/service/authservice"
	"github.com/servimarket/servimarket/internal/service/catalogservice"
	"github.com/servimarket/servimarket/internal/service/reservationservice"
)

// UserRepo is the union of what the auth and reservation services need from
// the users table: profile lookups plus the credit mutation used by the
// transfer transaction.
type UserRepo interface {
	authservice.Repo
	reservationservice.AccountRepo
}

type ServiceRepo interface {
	catalogservice.Repo
	reservationservice.CatalogRepo
}

type Repositories struct {
	UserRepo        UserRepo
	ServiceRepo     ServiceRepo
	ReservationRepo reservationservice.ReservationRepo
}

func New(conn pg.Database) *Repositories {
	userRepo := userrepo.New(conn)
	serviceRepo := servicerepo.New(conn)
	reservationRepo := reservationrepo.New(conn)

	return &Repositories{
		UserRepo:        userRepo,
		ServiceRepo:     serviceRepo,
		ReservationRepo: reservationRepo,
	}
}
