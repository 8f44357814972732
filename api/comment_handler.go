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

	"github.com/devconnect-app/backend/database"
	"github.com/devconnect-app/backend/errs"
	"github.com/devconnect-app/backend/models"
)

type commentHandler struct {
	responder   Responder
	logger      zerolog.Logger
	commentRepo *database.CommentRepo
	projectRepo *database.ProjectRepo
}

func newCommentHandler(commentRepo *database.CommentRepo, projectRepo *database.ProjectRepo) commentHandler {
	logger := log.With().Str("handlerName", "commentHandler").Logger()

	return commentHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		commentRepo: commentRepo,
		projectRepo: projectRepo,
	}
}

type commentRequest struct {
	Text string `json:"text"`
}

func validateCommentText(text string) error {
	if strings.TrimSpace(text) == "" {
		return errs.NewValidationError("text", "is required")
	}
	if len(text) > models.CommentMaxLength {
		return errs.NewValidationError("text", fmt.Sprintf("cannot be more than %d characters", models.CommentMaxLength))
	}
	return nil
}

// requireProject resolves the projectID path param to an existing project,
// folding malformed and unknown ids into the same NotFound.
func (h commentHandler) requireProject(r *http.Request) (uuid.UUID, error) {
	projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
	if err != nil {
		return uuid.Nil, errs.NewNotFoundError("Project not found")
	}

	project, err := h.projectRepo.FindByID(r.Context(), projectID)
	if err != nil {
		return uuid.Nil, errs.NewDatabaseError("find", "project", err)
	}
	if project == nil {
		return uuid.Nil, errs.NewNotFoundError("Project not found")
	}
	return projectID, nil
}

// addComment creates a comment on an existing project
func (h commentHandler) addComment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		callerID, err := ctxGetUserID(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		projectID, err := h.requireProject(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var req commentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode comment request body")
			h.responder.WriteError(w, errs.Malformed("comment"))
			return
		}

		if err := validateCommentText(req.Text); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		comment := models.Comment{
			Text:      req.Text,
			AuthorID:  callerID,
			ProjectID: projectID,
		}
		if err := h.commentRepo.Add(r.Context(), &comment); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("create", "comment", err))
			return
		}

		// Reload to get the author's public fields
		created, err := h.commentRepo.FindByID(r.Context(), comment.ID)
		if err != nil || created == nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find created", "comment", err))
			return
		}

		h.responder.WriteJSONStatus(w, http.StatusCreated, newCommentResponse(*created))
	}
}

// getProjectComments lists a project's comments, newest first
func (h commentHandler) getProjectComments() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := h.requireProject(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		comments, err := h.commentRepo.FindByProject(r.Context(), projectID)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "comments", err))
			return
		}

		h.responder.WriteJSON(w, newCommentResponses(comments))
	}
}

// deleteComment removes a comment authored by the caller. A repeated
// delete of the same id reports NotFound, never a silent success.
func (h commentHandler) deleteComment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		callerID, err := ctxGetUserID(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		commentID, err := uuid.Parse(chi.URLParam(r, "commentID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Comment not found"))
			return
		}

		comment, err := h.commentRepo.FindByID(r.Context(), commentID)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "comment", err))
			return
		}
		if comment == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Comment not found"))
			return
		}

		if comment.AuthorID != callerID {
			h.responder.WriteError(w, errs.NewNotOwnerError("Not authorized to delete this comment"))
			return
		}

		if err := h.commentRepo.Delete(r.Context(), commentID); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("delete", "comment", err))
			return
		}

		h.responder.WriteJSON(w, msgResponse{Msg: "Comment removed"})
	}
}
