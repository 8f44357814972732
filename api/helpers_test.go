package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/devconnect-app/backend/database"
	"github.com/devconnect-app/backend/models"
)

const testJWTSecret = "test-secret"

// newTestRouter builds the full router over an isolated in-memory store.
func newTestRouter(t *testing.T) *chi.Mux {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.UserSkill{},
		&models.Project{},
		&models.ProjectTag{},
		&models.Comment{},
	))

	router, err := newRouter(database.New(db), withConfig(map[string]string{
		"JWT_SECRET": testJWTSecret,
	}))
	require.NoError(t, err)
	return router
}

// doJSON performs a request with an optional JSON body and bearer token.
func doJSON(t *testing.T, router http.Handler, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), "body: %s", rec.Body.String())
	return out
}

// registerUser creates an account through the API and returns its token
// and profile.
func registerUser(t *testing.T, router http.Handler, name, email string) (string, UserProfile) {
	t.Helper()

	rec := doJSON(t, router, http.MethodPost, "/api/users", map[string]string{
		"name":     name,
		"email":    email,
		"password": "hunter22",
	}, "")
	require.Equal(t, http.StatusCreated, rec.Code, "body: %s", rec.Body.String())

	resp := decodeBody[TokenResponse](t, rec)
	require.NotEmpty(t, resp.Token)
	return resp.Token, resp.User
}

// createProject creates a project through the API as the token's user.
func createProject(t *testing.T, router http.Handler, token string, body map[string]any) ProjectResponse {
	t.Helper()

	rec := doJSON(t, router, http.MethodPost, "/api/projects", body, token)
	require.Equal(t, http.StatusCreated, rec.Code, "body: %s", rec.Body.String())
	return decodeBody[ProjectResponse](t, rec)
}
