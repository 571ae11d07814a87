package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/servimarket/servimarket/internal/domain"
	"github.com/servimarket/servimarket/internal/dto"
	"github.com/servimarket/servimarket/internal/service/catalogservice"
	pkgauth "github.com/servimarket/servimarket/pkg/auth"
	"github.com/servimarket/servimarket/pkg/utils"
	"github.com/servimarket/servimarket/pkg/validate"
)

type Service interface {
	Create(ctx context.Context, providerID uuid.UUID, name, description string, price decimal.Decimal) (*domain.Service, error)
	FindAll(ctx context.Context) ([]domain.Service, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Service, error)
	FindMine(ctx context.Context, providerID uuid.UUID) ([]domain.Service, error)
	Update(ctx context.Context, id, callerID uuid.UUID, name, description *string, price *decimal.Decimal) (*domain.Service, error)
	Delete(ctx context.Context, id, callerID uuid.UUID) error
}

type ServiceHandler struct {
	catalogService Service
}

func New(catalogService Service) *ServiceHandler {
	return &ServiceHandler{
		catalogService: catalogService,
	}
}

// Create godoc
//
//	@Summary		Publish a new service
//	@Tags			Services
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateServiceRequestDTO	true	"Service payload"
//	@Success		201		{object}	dto.ServiceResponseDTO		"Created service"
//	@Failure		400		{object}	utils.ValidationResponse	"Invalid request body"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		403		{object}	utils.Response				"Providers only"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/services [post]
func (h *ServiceHandler) Create(w http.ResponseWriter, r *http.Request) {
	callerID := r.Context().Value(pkgauth.UserIDKey).(uuid.UUID)

	var req dto.CreateServiceRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if msgs := validate.Struct(req); msgs != nil {
		utils.RespondWithValidationErrors(w, msgs)
		return
	}

	svc, err := h.catalogService.Create(r.Context(), callerID, req.Name, req.Description, req.Price)
	if err != nil {
		switch {
		case errors.Is(err, catalogservice.ErrNegativePrice):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toServiceDTO(svc))
}

// List godoc
//
//	@Summary		List all published services
//	@Tags			Services
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.ServiceResponseDTO	"Services, newest first"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/services [get]
func (h *ServiceHandler) List(w http.ResponseWriter, r *http.Request) {
	servicesList, err := h.catalogService.FindAll(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toServiceDTOs(servicesList))
}

// Mine godoc
//
//	@Summary		List the authenticated provider's services
//	@Tags			Services
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.ServiceResponseDTO	"Provider services, newest first"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		403	{object}	utils.Response			"Providers only"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/services/my-services [get]
func (h *ServiceHandler) Mine(w http.ResponseWriter, r *http.Request) {
	callerID := r.Context().Value(pkgauth.UserIDKey).(uuid.UUID)

	servicesList, err := h.catalogService.FindMine(r.Context(), callerID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toServiceDTOs(servicesList))
}

// Get godoc
//
//	@Summary		Get a service by id
//	@Tags			Services
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Service id"
//	@Success		200	{object}	dto.ServiceResponseDTO	"Service"
//	@Failure		400	{object}	utils.Response			"Invalid id"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		404	{object}	utils.Response			"Service not found"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/services/{id} [get]
func (h *ServiceHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid service id")
		return
	}

	svc, err := h.catalogService.FindByID(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, catalogservice.ErrServiceNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toServiceDTO(svc))
}

// Update godoc
//
//	@Summary		Update a service (owning provider only)
//	@Description	Changes only future reservations; existing reservations keep their snapshotted amount.
//	@Tags			Services
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Service id"
//	@Param			request	body		dto.UpdateServiceRequestDTO	true	"Fields to update"
//	@Success		200		{object}	dto.ServiceResponseDTO		"Updated service"
//	@Failure		400		{object}	utils.Response				"Invalid body or id"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		403		{object}	utils.Response				"Not the owning provider"
//	@Failure		404		{object}	utils.Response				"Service not found"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/services/{id} [put]
func (h *ServiceHandler) Update(w http.ResponseWriter, r *http.Request) {
	callerID := r.Context().Value(pkgauth.UserIDKey).(uuid.UUID)

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid service id")
		return
	}

	var req dto.UpdateServiceRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	svc, err := h.catalogService.Update(r.Context(), id, callerID, req.Name, req.Description, req.Price)
	if err != nil {
		switch {
		case errors.Is(err, catalogservice.ErrServiceNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, catalogservice.ErrNotOwner):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		case errors.Is(err, catalogservice.ErrNegativePrice):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toServiceDTO(svc))
}

// Delete godoc
//
//	@Summary		Delete a service (owning provider only)
//	@Tags			Services
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Service id"
//	@Success		204	"Deleted"
//	@Failure		400	{object}	utils.Response	"Invalid id"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Not the owning provider"
//	@Failure		404	{object}	utils.Response	"Service not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/services/{id} [delete]
func (h *ServiceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	callerID := r.Context().Value(pkgauth.UserIDKey).(uuid.UUID)

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid service id")
		return
	}

	if err := h.catalogService.Delete(r.Context(), id, callerID); err != nil {
		switch {
		case errors.Is(err, catalogservice.ErrServiceNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, catalogservice.ErrNotOwner):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func toServiceDTO(svc *domain.Service) dto.ServiceResponseDTO {
	return dto.ServiceResponseDTO{
		ID:          svc.ID.String(),
		Name:        svc.Name,
		Description: svc.Description,
		Price:       svc.Price,
		ProviderID:  svc.ProviderID.String(),
		CreatedAt:   svc.CreatedAt,
		UpdatedAt:   svc.UpdatedAt,
	}
}

func toServiceDTOs(servicesList []domain.Service) []dto.ServiceResponseDTO {
	response := make([]dto.ServiceResponseDTO, len(servicesList))
	for i := range servicesList {
		response[i] = toServiceDTO(&servicesList[i])
	}
	return response
}
