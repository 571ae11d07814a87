package reservations

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/servimarket/servimarket/internal/domain"
	"github.com/servimarket/servimarket/internal/dto"
	"github.com/servimarket/servimarket/internal/service/reservationservice"
	pkgauth "github.com/servimarket/servimarket/pkg/auth"
	"github.com/servimarket/servimarket/pkg/utils"
	"github.com/servimarket/servimarket/pkg/validate"
)

type Service interface {
	Create(ctx context.Context, serviceID uuid.UUID, date time.Time, callerID uuid.UUID) (*domain.Reservation, error)
	FindMyReservations(ctx context.Context, callerID uuid.UUID) ([]domain.Reservation, error)
	FindServiceReservations(ctx context.Context, callerID uuid.UUID) ([]domain.Reservation, error)
	FindByID(ctx context.Context, id uuid.UUID, callerID uuid.UUID) (*domain.Reservation, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string, callerID uuid.UUID) (*domain.Reservation, error)
	Cancel(ctx context.Context, id uuid.UUID, callerID uuid.UUID) error
}

type ReservationHandler struct {
	reservationService Service
}

func New(reservationService Service) *ReservationHandler {
	return &ReservationHandler{
		reservationService: reservationService,
	}
}

// Create godoc
//
//	@Summary		Create a reservation (clients only)
//	@Description	Debits the client, credits the provider and stores the reservation atomically. The service price is snapshotted into the reservation.
//	@Tags			Reservations
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateReservationRequestDTO	true	"Reservation payload"
//	@Success		201		{object}	dto.ReservationResponseDTO		"Created reservation"
//	@Failure		400		{object}	utils.Response					"Insufficient credit, own service or invalid body"
//	@Failure		401		{object}	utils.Response					"User not authorized"
//	@Failure		403		{object}	utils.Response					"Clients only"
//	@Failure		404		{object}	utils.Response					"Service or account not found"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/reservations [post]
func (h *ReservationHandler) Create(w http.ResponseWriter, r *http.Request) {
	callerID := r.Context().Value(pkgauth.UserIDKey).(uuid.UUID)

	var req dto.CreateReservationRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if msgs := validate.Struct(req); msgs != nil {
		utils.RespondWithValidationErrors(w, msgs)
		return
	}

	serviceID, err := uuid.Parse(req.ServiceID)
	if err != nil {
		utils.RespondWithValidationErrors(w, []string{"serviceId must be a valid UUID"})
		return
	}
	date, err := time.Parse(time.RFC3339, req.Date)
	if err != nil {
		utils.RespondWithValidationErrors(w, []string{"date must be a valid ISO8601 timestamp"})
		return
	}

	reservation, err := h.reservationService.Create(r.Context(), serviceID, date, callerID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toReservationDTO(reservation))
}

// MyReservations godoc
//
//	@Summary		List the authenticated client's reservations
//	@Tags			Reservations
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.ReservationResponseDTO	"Reservations, newest first"
//	@Failure		401	{object}	utils.Response				"User not authorized"
//	@Failure		403	{object}	utils.Response				"Clients only"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/reservations/my-reservations [get]
func (h *ReservationHandler) MyReservations(w http.ResponseWriter, r *http.Request) {
	callerID := r.Context().Value(pkgauth.UserIDKey).(uuid.UUID)

	reservations, err := h.reservationService.FindMyReservations(r.Context(), callerID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toReservationDTOs(reservations))
}

// ServiceReservations godoc
//
//	@Summary		List reservations on the authenticated provider's services
//	@Tags			Reservations
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.ReservationResponseDTO	"Reservations, newest first"
//	@Failure		401	{object}	utils.Response				"User not authorized"
//	@Failure		403	{object}	utils.Response				"Providers only"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/reservations/service-reservations [get]
func (h *ReservationHandler) ServiceReservations(w http.ResponseWriter, r *http.Request) {
	callerID := r.Context().Value(pkgauth.UserIDKey).(uuid.UUID)

	reservations, err := h.reservationService.FindServiceReservations(r.Context(), callerID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toReservationDTOs(reservations))
}

// Get godoc
//
//	@Summary		Get a reservation by id (client or provider of the service)
//	@Tags			Reservations
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Reservation id"
//	@Success		200	{object}	dto.ReservationResponseDTO	"Reservation"
//	@Failure		400	{object}	utils.Response				"Invalid id"
//	@Failure		401	{object}	utils.Response				"User not authorized"
//	@Failure		403	{object}	utils.Response				"Not a party to this reservation"
//	@Failure		404	{object}	utils.Response				"Reservation not found"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/reservations/{id} [get]
func (h *ReservationHandler) Get(w http.ResponseWriter, r *http.Request) {
	callerID := r.Context().Value(pkgauth.UserIDKey).(uuid.UUID)

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid reservation id")
		return
	}

	reservation, err := h.reservationService.FindByID(r.Context(), id, callerID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toReservationDTO(reservation))
}

// UpdateStatus godoc
//
//	@Summary		Update a reservation status (provider of the service only)
//	@Description	Allowed transitions: PENDING to CONFIRMED or CANCELLED, CONFIRMED to COMPLETED or CANCELLED. Moving to CANCELLED refunds the client atomically.
//	@Tags			Reservations
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string								true	"Reservation id"
//	@Param			request	body		dto.UpdateReservationStatusRequestDTO	true	"New status"
//	@Success		200		{object}	dto.ReservationResponseDTO			"Updated reservation"
//	@Failure		400		{object}	utils.Response						"Invalid transition or body"
//	@Failure		401		{object}	utils.Response						"User not authorized"
//	@Failure		403		{object}	utils.Response						"Not the provider"
//	@Failure		404		{object}	utils.Response						"Reservation not found"
//	@Failure		500		{object}	utils.Response						"Internal server error"
//	@Router			/api/reservations/{id}/status [put]
func (h *ReservationHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	callerID := r.Context().Value(pkgauth.UserIDKey).(uuid.UUID)

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid reservation id")
		return
	}

	var req dto.UpdateReservationStatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if msgs := validate.Struct(req); msgs != nil {
		utils.RespondWithValidationErrors(w, msgs)
		return
	}

	reservation, err := h.reservationService.UpdateStatus(r.Context(), id, req.Status, callerID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toReservationDTO(reservation))
}

// Cancel godoc
//
//	@Summary		Cancel a reservation (owning client only)
//	@Description	Refunds the client and debits the provider atomically; the reservation row is kept with status CANCELLED.
//	@Tags			Reservations
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Reservation id"
//	@Success		204	"Cancelled"
//	@Failure		400	{object}	utils.Response	"Already cancelled or completed"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Not the owning client"
//	@Failure		404	{object}	utils.Response	"Reservation not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/reservations/{id} [delete]
func (h *ReservationHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	callerID := r.Context().Value(pkgauth.UserIDKey).(uuid.UUID)

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid reservation id")
		return
	}

	if err := h.reservationService.Cancel(r.Context(), id, callerID); err != nil {
		respondWithServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// respondWithServiceError maps the workflow error taxonomy onto HTTP codes.
// Store-level faults fall through to a generic 500 and are never leaked.
func respondWithServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, reservationservice.ErrServiceNotFound),
		errors.Is(err, reservationservice.ErrReservationNotFound),
		errors.Is(err, reservationservice.ErrAccountNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, reservationservice.ErrOwnService),
		errors.Is(err, reservationservice.ErrInsufficientCredit),
		errors.Is(err, reservationservice.ErrInvalidTransition),
		errors.Is(err, reservationservice.ErrCancelFinalized):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, reservationservice.ErrNotAllowed):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func toReservationDTO(reservation *domain.Reservation) dto.ReservationResponseDTO {
	return dto.ReservationResponseDTO{
		ID:                 reservation.ID.String(),
		UserID:             reservation.UserID.String(),
		ServiceID:          reservation.ServiceID.String(),
		ServiceName:        reservation.ServiceName,
		ServiceDescription: reservation.ServiceDescription,
		Amount:             reservation.Amount,
		Date:               reservation.Date,
		Status:             reservation.Status,
		CreatedAt:          reservation.CreatedAt,
		UpdatedAt:          reservation.UpdatedAt,
		ClientName:         reservation.ClientName,
		ProviderName:       reservation.ProviderName,
	}
}

func toReservationDTOs(reservations []domain.Reservation) []dto.ReservationResponseDTO {
	response := make([]dto.ReservationResponseDTO, len(reservations))
	for i := range reservations {
		response[i] = toReservationDTO(&reservations[i])
	}
	return response
}
