package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"

	"github.com/devconnect-app/backend/database"
	"github.com/devconnect-app/backend/errs"
	"github.com/devconnect-app/backend/models"
)

type projectHandler struct {
	responder   Responder
	logger      zerolog.Logger
	projectRepo *database.ProjectRepo
}

func newProjectHandler(projectRepo *database.ProjectRepo) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		projectRepo: projectRepo,
	}
}

// projectRequest is the create payload.
type projectRequest struct {
	Title       string               `json:"title"`
	Description string               `json:"description"`
	Image       string               `json:"image"`
	Tags        []string             `json:"tags"`
	Links       *models.ProjectLinks `json:"links"`
}

// projectUpdateRequest is the update payload. Only fields present in the
// body are applied; the owner is not patchable.
type projectUpdateRequest struct {
	Title       *string              `json:"title"`
	Description *string              `json:"description"`
	Image       *string              `json:"image"`
	Tags        *[]string            `json:"tags"`
	Links       *models.ProjectLinks `json:"links"`
}

func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return errs.NewValidationError("title", "is required")
	}
	if len(title) > models.TitleMaxLength {
		return errs.NewValidationError("title", fmt.Sprintf("cannot be more than %d characters", models.TitleMaxLength))
	}
	return nil
}

func validateDescription(description string) error {
	if strings.TrimSpace(description) == "" {
		return errs.NewValidationError("description", "is required")
	}
	if len(description) > models.DescriptionMaxLength {
		return errs.NewValidationError("description", fmt.Sprintf("cannot be more than %d characters", models.DescriptionMaxLength))
	}
	return nil
}

// parseProjectID treats a malformed id exactly like an unknown one, so the
// route surface never distinguishes the two.
func parseProjectID(r *http.Request) (uuid.UUID, error) {
	projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
	if err != nil {
		return uuid.Nil, errs.NewNotFoundError("Project not found")
	}
	return projectID, nil
}

// createProject creates a new project owned by the authenticated caller
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		callerID, err := ctxGetUserID(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		var req projectRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.Malformed("project"))
			return
		}

		if err := validateTitle(req.Title); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if err := validateDescription(req.Description); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project := models.Project{
			OwnerID:     callerID,
			Title:       req.Title,
			Description: req.Description,
			Image:       req.Image,
		}
		if req.Links != nil {
			project.Links = datatypes.NewJSONType(*req.Links)
		}

		if err := h.projectRepo.Add(r.Context(), &project); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("create", "project", err))
			return
		}

		if len(req.Tags) > 0 {
			if err := h.projectRepo.ReplaceTags(r.Context(), project.ID, req.Tags); err != nil {
				h.responder.WriteError(w, errs.NewDatabaseError("create tags for", "project", err))
				return
			}
		}

		// Reload to get tags and the owner's public fields
		created, err := h.projectRepo.FindByID(r.Context(), project.ID)
		if err != nil || created == nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find created", "project", err))
			return
		}

		h.responder.WriteJSONStatus(w, http.StatusCreated, newProjectResponse(*created))
	}
}

// getAllProjects retrieves all projects, newest first, with owner summaries
func (h projectHandler) getAllProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.projectRepo.FindAll(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "projects", err))
			return
		}

		h.responder.WriteJSON(w, newProjectResponses(projects))
	}
}

// getProject retrieves a single project with the owner's full public profile
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseProjectID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.projectRepo.FindByID(r.Context(), projectID)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Project not found"))
			return
		}

		h.responder.WriteJSON(w, newProjectDetailResponse(*project))
	}
}

// getProjectsByOwner retrieves one user's projects, newest first
func (h projectHandler) getProjectsByOwner() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, err := uuid.Parse(chi.URLParam(r, "userID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewNotFoundError("User not found"))
			return
		}

		projects, err := h.projectRepo.FindByOwner(r.Context(), ownerID)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "projects", err))
			return
		}

		h.responder.WriteJSON(w, newProjectResponses(projects))
	}
}

// updateProject applies a whitelisted patch to a project the caller owns
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		callerID, err := ctxGetUserID(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		projectID, err := parseProjectID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.projectRepo.FindByID(r.Context(), projectID)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Project not found"))
			return
		}

		if project.OwnerID != callerID {
			h.responder.WriteError(w, errs.NewNotOwnerError("Not authorized to update this project"))
			return
		}

		var req projectUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project update body")
			h.responder.WriteError(w, errs.Malformed("project"))
			return
		}

		if req.Title != nil {
			if err := validateTitle(*req.Title); err != nil {
				h.responder.WriteError(w, err)
				return
			}
			project.Title = *req.Title
		}
		if req.Description != nil {
			if err := validateDescription(*req.Description); err != nil {
				h.responder.WriteError(w, err)
				return
			}
			project.Description = *req.Description
		}
		if req.Image != nil {
			project.Image = *req.Image
			if project.Image == "" {
				project.Image = models.DefaultProjectImage
			}
		}
		if req.Links != nil {
			project.Links = datatypes.NewJSONType(*req.Links)
		}

		if err := h.projectRepo.Update(r.Context(), project); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("update", "project", err))
			return
		}

		if req.Tags != nil {
			if err := h.projectRepo.ReplaceTags(r.Context(), projectID, *req.Tags); err != nil {
				h.responder.WriteError(w, errs.NewDatabaseError("update tags for", "project", err))
				return
			}
		}

		updated, err := h.projectRepo.FindByID(r.Context(), projectID)
		if err != nil || updated == nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find updated", "project", err))
			return
		}

		h.responder.WriteJSON(w, newProjectResponse(*updated))
	}
}

// deleteProject removes a project the caller owns. Its comments are left
// behind; they are unreachable once the project row is gone.
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		callerID, err := ctxGetUserID(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		projectID, err := parseProjectID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.projectRepo.FindByID(r.Context(), projectID)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Project not found"))
			return
		}

		if project.OwnerID != callerID {
			h.responder.WriteError(w, errs.NewNotOwnerError("Not authorized to delete this project"))
			return
		}

		if err := h.projectRepo.Delete(r.Context(), projectID); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("delete", "project", err))
			return
		}

		h.responder.WriteJSON(w, msgResponse{Msg: "Project removed"})
	}
}
