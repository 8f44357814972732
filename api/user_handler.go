package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/devconnect-app/backend/database"
	"github.com/devconnect-app/backend/errs"
	"github.com/devconnect-app/backend/services"
)

type userHandler struct {
	responder Responder
	logger    zerolog.Logger
	userRepo  *database.UserRepo
	auth      services.AuthService
}

func newUserHandler(userRepo *database.UserRepo, auth services.AuthService) userHandler {
	logger := log.With().Str("handlerName", "userHandler").Logger()

	return userHandler{
		responder: NewResponder(logger),
		logger:    logger,
		userRepo:  userRepo,
		auth:      auth,
	}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// register creates a new account and returns a signed token alongside it
func (h userHandler) register() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode register request body")
			h.responder.WriteError(w, errs.Malformed("user"))
			return
		}

		user, token, err := h.auth.Register(r.Context(), req.Name, req.Email, req.Password)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSONStatus(w, http.StatusCreated, TokenResponse{
			Token: token,
			User:  newUserProfile(*user),
		})
	}
}

// getAllUsers lists every registered user, sanitized
func (h userHandler) getAllUsers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := h.userRepo.FindAll(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "users", err))
			return
		}

		h.responder.WriteJSON(w, newUserProfiles(users))
	}
}

// getUser retrieves one user by id, sanitized
func (h userHandler) getUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := uuid.Parse(chi.URLParam(r, "userID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewNotFoundError("User not found"))
			return
		}

		user, err := h.userRepo.FindByID(r.Context(), userID)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "user", err))
			return
		}
		if user == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("User not found"))
			return
		}

		h.responder.WriteJSON(w, newUserProfile(*user))
	}
}
