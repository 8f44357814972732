package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/devconnect-app/backend/database"
	"github.com/devconnect-app/backend/errs"
	"github.com/devconnect-app/backend/services"
)

type authHandler struct {
	responder Responder
	logger    zerolog.Logger
	userRepo  *database.UserRepo
	auth      services.AuthService
}

func newAuthHandler(userRepo *database.UserRepo, auth services.AuthService) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder: NewResponder(logger),
		logger:    logger,
		userRepo:  userRepo,
		auth:      auth,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// login exchanges credentials for a signed token
func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode login request body")
			h.responder.WriteError(w, errs.Malformed("credentials"))
			return
		}

		user, token, err := h.auth.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, TokenResponse{
			Token: token,
			User:  newUserProfile(*user),
		})
	}
}

// me returns the authenticated caller's own account, sanitized
func (h authHandler) me() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		callerID, err := ctxGetUserID(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		user, err := h.userRepo.FindByID(r.Context(), callerID)
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
