package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/servimarket/servimarket/docs"
	"github.com/servimarket/servimarket/internal/domain"
	authhandlers "github.com/servimarket/servimarket/internal/handlers/auth"
	reservationhandlers "github.com/servimarket/servimarket/internal/handlers/reservations"
	servicehandlers "github.com/servimarket/servimarket/internal/handlers/services"
	"github.com/servimarket/servimarket/internal/service"
	"github.com/servimarket/servimarket/pkg/auth"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
}

type ServiceHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Mine(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type ReservationHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	MyReservations(w http.ResponseWriter, r *http.Request)
	ServiceReservations(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler        AuthHandler
	ServiceHandler     ServiceHandler
	ReservationHandler ReservationHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:        authhandlers.New(s.AuthService),
		ServiceHandler:     servicehandlers.New(s.CatalogService),
		ReservationHandler: reservationhandlers.New(s.ReservationService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/login", h.AuthHandler.Login)

			r.Group(func(r chi.Router) {
				r.Use(auth.AuthMiddleware)
				r.Get("/me", h.AuthHandler.Me)
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)

			r.Route("/services", func(r chi.Router) {
				r.Get("/", h.ServiceHandler.List)
				r.Get("/{id}", h.ServiceHandler.Get)

				r.Group(func(r chi.Router) {
					r.Use(auth.RequireRole(domain.RoleProvider))
					r.Get("/my-services", h.ServiceHandler.Mine)
					r.Post("/", h.ServiceHandler.Create)
					r.Put("/{id}", h.ServiceHandler.Update)
					r.Delete("/{id}", h.ServiceHandler.Delete)
				})
			})

			r.Route("/reservations", func(r chi.Router) {
				r.Get("/{id}", h.ReservationHandler.Get)

				r.Group(func(r chi.Router) {
					r.Use(auth.RequireRole(domain.RoleClient))
					r.Post("/", h.ReservationHandler.Create)
					r.Get("/my-reservations", h.ReservationHandler.MyReservations)
					r.Delete("/{id}", h.ReservationHandler.Cancel)
				})

				r.Group(func(r chi.Router) {
					r.Use(auth.RequireRole(domain.RoleProvider))
					r.Get("/service-reservations", h.ReservationHandler.ServiceReservations)
					r.Put("/{id}/status", h.ReservationHandler.UpdateStatus)
				})
			})
		})
	})

	return r
}
