package api

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddComment(t *testing.T) {
	router := newTestRouter(t)
	adaToken, _ := registerUser(t, router, "Ada", "ada@example.com")
	linToken, lin := registerUser(t, router, "Lin", "lin@example.com")

	project := createProject(t, router, adaToken, map[string]any{
		"title":       "Compiler playground",
		"description": "A small compiler playground",
	})

	rec := doJSON(t, router, http.MethodPost, "/api/projects/"+project.ID.String()+"/comments", map[string]any{
		"text": "nice work",
	}, linToken)
	require.Equal(t, http.StatusCreated, rec.Code, "body: %s", rec.Body.String())

	comment := decodeBody[CommentResponse](t, rec)
	assert.Equal(t, "nice work", comment.Text)
	assert.Equal(t, project.ID, comment.ProjectID)
	assert.Equal(t, lin.ID, comment.Author.ID)
	assert.Equal(t, "Lin", comment.Author.Name)
}

func TestAddCommentValidation(t *testing.T) {
	router := newTestRouter(t)
	token, _ := registerUser(t, router, "Ada", "ada@example.com")

	project := createProject(t, router, token, map[string]any{
		"title":       "Compiler playground",
		"description": "A small compiler playground",
	})

	rec := doJSON(t, router, http.MethodPost, "/api/projects/"+project.ID.String()+"/comments", map[string]any{
		"text": "",
	}, token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/projects/"+project.ID.String()+"/comments", map[string]any{
		"text": strings.Repeat("x", 501),
	}, token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAddCommentProjectNotFound(t *testing.T) {
	router := newTestRouter(t)
	token, _ := registerUser(t, router, "Ada", "ada@example.com")

	rec := doJSON(t, router, http.MethodPost, "/api/projects/7e6f1a3e-0000-4000-8000-000000000000/comments", map[string]any{
		"text": "into the void",
	}, token)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListCommentsNewestFirst(t *testing.T) {
	router := newTestRouter(t)
	adaToken, _ := registerUser(t, router, "Ada", "ada@example.com")
	linToken, _ := registerUser(t, router, "Lin", "lin@example.com")

	project := createProject(t, router, adaToken, map[string]any{
		"title":       "Compiler playground",
		"description": "A small compiler playground",
	})

	path := "/api/projects/" + project.ID.String() + "/comments"

	rec := doJSON(t, router, http.MethodPost, path, map[string]any{"text": "first!"}, adaToken)
	require.Equal(t, http.StatusCreated, rec.Code)
	time.Sleep(5 * time.Millisecond) // keep the two creation timestamps apart
	rec = doJSON(t, router, http.MethodPost, path, map[string]any{"text": "nice work"}, linToken)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodGet, path, nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	comments := decodeBody[[]CommentResponse](t, rec)
	require.Len(t, comments, 2)
	assert.Equal(t, "nice work", comments[0].Text)
	assert.Equal(t, "Lin", comments[0].Author.Name)
	assert.Equal(t, "first!", comments[1].Text)
}

func TestListCommentsProjectNotFound(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/projects/not-a-uuid/comments", nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteComment(t *testing.T) {
	router := newTestRouter(t)
	adaToken, _ := registerUser(t, router, "Ada", "ada@example.com")
	linToken, _ := registerUser(t, router, "Lin", "lin@example.com")

	project := createProject(t, router, adaToken, map[string]any{
		"title":       "Compiler playground",
		"description": "A small compiler playground",
	})

	rec := doJSON(t, router, http.MethodPost, "/api/projects/"+project.ID.String()+"/comments", map[string]any{
		"text": "delete me",
	}, linToken)
	require.Equal(t, http.StatusCreated, rec.Code)
	comment := decodeBody[CommentResponse](t, rec)

	// Only the author may delete it, not even the project owner
	rec = doJSON(t, router, http.MethodDelete, "/api/comments/"+comment.ID.String(), nil, adaToken)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, router, http.MethodDelete, "/api/comments/"+comment.ID.String(), nil, linToken)
	require.Equal(t, http.StatusOK, rec.Code)
	msg := decodeBody[msgResponse](t, rec)
	assert.Equal(t, "Comment removed", msg.Msg)

	// Deleting it again reports NotFound, never a silent success
	rec = doJSON(t, router, http.MethodDelete, "/api/comments/"+comment.ID.String(), nil, linToken)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCommentsUnreachableAfterProjectDelete(t *testing.T) {
	router := newTestRouter(t)
	token, _ := registerUser(t, router, "Ada", "ada@example.com")

	project := createProject(t, router, token, map[string]any{
		"title":       "Short lived",
		"description": "about to be deleted",
	})

	rec := doJSON(t, router, http.MethodPost, "/api/projects/"+project.ID.String()+"/comments", map[string]any{
		"text": "soon orphaned",
	}, token)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodDelete, "/api/projects/"+project.ID.String(), nil, token)
	require.Equal(t, http.StatusOK, rec.Code)

	// Listing requires the project, so the orphaned comment is invisible
	rec = doJSON(t, router, http.MethodGet, "/api/projects/"+project.ID.String()+"/comments", nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
