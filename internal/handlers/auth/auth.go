package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/servimarket/servimarket/internal/domain"
	"github.com/servimarket/servimarket/internal/dto"
	"github.com/servimarket/servimarket/internal/service/authservice"
	pkgauth "github.com/servimarket/servimarket/pkg/auth"
	"github.com/servimarket/servimarket/pkg/utils"
	"github.com/servimarket/servimarket/pkg/validate"
)

type Service interface {
	Register(ctx context.Context, email, nif, name, password, role string) (*domain.User, error)
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
	GenerateToken(user *domain.User) (string, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*domain.User, error)
}

type AuthHandler struct {
	authService Service
}

func New(authService Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register godoc
//
//	@Summary		Register a new user
//	@Description	Create a client or service provider account. New accounts start with the default credit balance.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RegisterRequestDTO	true	"Registration payload"
//	@Success		201		{object}	dto.UserResponseDTO		"Created user"
//	@Failure		400		{object}	utils.ValidationResponse	"Invalid request body"
//	@Failure		409		{object}	utils.Response			"Email or NIF already registered"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if msgs := validate.Struct(req); msgs != nil {
		utils.RespondWithValidationErrors(w, msgs)
		return
	}

	user, err := h.authService.Register(r.Context(), req.Email, req.NIF, req.Name, req.Password, req.Role)
	if err != nil {
		switch {
		case errors.Is(err, authservice.ErrEmailTaken), errors.Is(err, authservice.ErrNifTaken):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toUserDTO(user))
}

// Login godoc
//
//	@Summary		Authenticate a user
//	@Description	Exchange email and password for a bearer token carrying the user id and role.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequestDTO	true	"Login payload"
//	@Success		200		{object}	dto.AuthResponseDTO	"Access token and profile"
//	@Failure		400		{object}	utils.ValidationResponse	"Invalid request body"
//	@Failure		401		{object}	utils.Response		"Invalid credentials"
//	@Failure		500		{object}	utils.Response		"Internal server error"
//	@Router			/api/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if msgs := validate.Struct(req); msgs != nil {
		utils.RespondWithValidationErrors(w, msgs)
		return
	}

	user, err := h.authService.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, authservice.ErrInvalidCredentials):
			utils.RespondWithError(w, http.StatusUnauthorized, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	token, err := h.authService.GenerateToken(user)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.AuthResponseDTO{
		AccessToken: token,
		User:        toUserDTO(user),
	})
}

// Me godoc
//
//	@Summary		Get the authenticated user's profile
//	@Tags			Auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.UserResponseDTO	"Profile with current credit"
//	@Failure		401	{object}	utils.Response		"User not authorized"
//	@Failure		404	{object}	utils.Response		"User not found"
//	@Failure		500	{object}	utils.Response		"Internal server error"
//	@Router			/api/auth/me [get]
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(pkgauth.UserIDKey).(uuid.UUID)

	user, err := h.authService.GetProfile(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, authservice.ErrUserNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toUserDTO(user))
}

func toUserDTO(user *domain.User) dto.UserResponseDTO {
	return dto.UserResponseDTO{
		ID:        user.ID.String(),
		Email:     user.Email,
		NIF:       user.NIF,
		Name:      user.Name,
		Credit:    user.Credit,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
