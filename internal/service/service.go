package service

import (
	authhandlers "github.com/servimarket/servimarket/internal/handlers/auth"
	reservationhandlers "github.com/servimarket/servimarket/internal/handlers/reservations"
	servicehandlers "github.com/servimarket/servimarket/internal/handlers/services"

	pkgauth "github.com/servimarket/servimarket/pkg/auth"

	"github.com/servimarket/servimarket/internal/pg"
	"github.com/servimarket/servimarket/internal/repo"
	"github.com/servimarket/servimarket/internal/service/authservice"
	"github.com/servimarket/servimarket/internal/service/catalogservice"
	"github.com/servimarket/servimarket/internal/service/reservationservice"
)

type Services struct {
	AuthService        authhandlers.Service
	CatalogService     servicehandlers.Service
	ReservationService reservationhandlers.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager) *Services {
	authService := authservice.New(repo.UserRepo, &pkgauth.HashService{}, &pkgauth.JWTService{})
	catalogService := catalogservice.New(repo.ServiceRepo)
	reservationService := reservationservice.New(repo.ReservationRepo, repo.UserRepo, repo.ServiceRepo, txManager)

	return &Services{
		AuthService:        authService,
		CatalogService:     catalogService,
		ReservationService: reservationService,
	}
}
