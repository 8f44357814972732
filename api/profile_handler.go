package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"

	"github.com/devconnect-app/backend/database"
	"github.com/devconnect-app/backend/errs"
	"github.com/devconnect-app/backend/models"
)

type profileHandler struct {
	responder Responder
	logger    zerolog.Logger
	userRepo  *database.UserRepo
}

func newProfileHandler(userRepo *database.UserRepo) profileHandler {
	logger := log.With().Str("handlerName", "profileHandler").Logger()

	return profileHandler{
		responder: NewResponder(logger),
		logger:    logger,
		userRepo:  userRepo,
	}
}

// profileRequest is a partial update: only fields present in the body are
// merged into the caller's own profile.
type profileRequest struct {
	Name           *string             `json:"name"`
	Bio            *string             `json:"bio"`
	ProfilePicture *string             `json:"profilePicture"`
	Skills         *[]string           `json:"skills"`
	Location       *string             `json:"location"`
	SocialLinks    *models.SocialLinks `json:"socialLinks"`
}

// getAllProfiles lists every profile, sanitized
func (h profileHandler) getAllProfiles() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := h.userRepo.FindAll(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "profiles", err))
			return
		}

		h.responder.WriteJSON(w, newUserProfiles(users))
	}
}

// getMyProfile returns the authenticated caller's profile
func (h profileHandler) getMyProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		callerID, err := ctxGetUserID(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		user, err := h.userRepo.FindByID(r.Context(), callerID)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "profile", err))
			return
		}
		if user == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("User not found"))
			return
		}

		h.responder.WriteJSON(w, newUserProfile(*user))
	}
}

// getProfile retrieves one profile by user id
func (h profileHandler) getProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := uuid.Parse(chi.URLParam(r, "userID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Profile not found"))
			return
		}

		user, err := h.userRepo.FindByID(r.Context(), userID)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "profile", err))
			return
		}
		if user == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Profile not found"))
			return
		}

		h.responder.WriteJSON(w, newUserProfile(*user))
	}
}

// updateProfile merges the provided fields into the caller's own profile.
// By construction it can only ever touch the authenticated user's row.
func (h profileHandler) updateProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		callerID, err := ctxGetUserID(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		var req profileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode profile request body")
			h.responder.WriteError(w, errs.Malformed("profile"))
			return
		}

		user, err := h.userRepo.FindByID(r.Context(), callerID)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "profile", err))
			return
		}
		if user == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("User not found"))
			return
		}

		if req.Name != nil {
			if *req.Name == "" {
				h.responder.WriteError(w, errs.NewValidationError("name", "is required"))
				return
			}
			user.Name = *req.Name
		}
		if req.Bio != nil {
			user.Bio = *req.Bio
		}
		if req.ProfilePicture != nil {
			user.ProfilePicture = *req.ProfilePicture
		}
		if req.Location != nil {
			user.Location = *req.Location
		}
		if req.SocialLinks != nil {
			// Merge link by link so an omitted field keeps its value
			links := user.SocialLinks.Data()
			if req.SocialLinks.Github != "" {
				links.Github = req.SocialLinks.Github
			}
			if req.SocialLinks.Linkedin != "" {
				links.Linkedin = req.SocialLinks.Linkedin
			}
			if req.SocialLinks.Portfolio != "" {
				links.Portfolio = req.SocialLinks.Portfolio
			}
			user.SocialLinks = datatypes.NewJSONType(links)
		}

		if err := h.userRepo.Update(r.Context(), user); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("update", "profile", err))
			return
		}

		if req.Skills != nil {
			if err := h.userRepo.ReplaceSkills(r.Context(), callerID, *req.Skills); err != nil {
				h.responder.WriteError(w, errs.NewDatabaseError("update skills for", "profile", err))
				return
			}
		}

		updated, err := h.userRepo.FindByID(r.Context(), callerID)
		if err != nil || updated == nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find updated", "profile", err))
			return
		}

		h.responder.WriteJSON(w, newUserProfile(*updated))
	}
}
