package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	router := newTestRouter(t)

	token, user := registerUser(t, router, "Ada", "ada@example.com")
	assert.NotEmpty(t, token)
	assert.Equal(t, "Ada", user.Name)
	assert.Equal(t, "ada@example.com", user.Email)
}

func TestRegisterValidation(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name string
		body map[string]string
		want int
	}{
		{
			name: "missing name",
			body: map[string]string{"email": "a@b.com", "password": "hunter22"},
			want: http.StatusBadRequest,
		},
		{
			name: "missing email",
			body: map[string]string{"name": "Ada", "password": "hunter22"},
			want: http.StatusBadRequest,
		},
		{
			name: "short password",
			body: map[string]string{"name": "Ada", "email": "a@b.com", "password": "abc"},
			want: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, router, http.MethodPost, "/api/users", tt.body, "")
			assert.Equal(t, tt.want, rec.Code, "body: %s", rec.Body.String())
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	router := newTestRouter(t)
	registerUser(t, router, "Ada", "ada@example.com")

	rec := doJSON(t, router, http.MethodPost, "/api/users", map[string]string{
		"name":     "Other Ada",
		"email":    "ada@example.com",
		"password": "hunter22",
	}, "")
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestLogin(t *testing.T) {
	router := newTestRouter(t)
	registerUser(t, router, "Ada", "ada@example.com")

	rec := doJSON(t, router, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "ada@example.com",
		"password": "hunter22",
	}, "")
	require.Equal(t, http.StatusOK, rec.Code, "body: %s", rec.Body.String())

	resp := decodeBody[TokenResponse](t, rec)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "Ada", resp.User.Name)

	// The fresh token authenticates against /api/auth/me
	rec = doJSON(t, router, http.MethodGet, "/api/auth/me", nil, resp.Token)
	require.Equal(t, http.StatusOK, rec.Code)
	me := decodeBody[UserProfile](t, rec)
	assert.Equal(t, "ada@example.com", me.Email)
}

func TestLoginInvalidCredentials(t *testing.T) {
	router := newTestRouter(t)
	registerUser(t, router, "Ada", "ada@example.com")

	// Wrong password and unknown email fail identically
	rec := doJSON(t, router, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "ada@example.com",
		"password": "wrong-password",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	wrongPassword := rec.Body.String()

	rec = doJSON(t, router, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "nobody@example.com",
		"password": "hunter22",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, wrongPassword, rec.Body.String())
}

func TestMeRequiresToken(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/auth/me", nil, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPasswordNeverSerialized(t *testing.T) {
	router := newTestRouter(t)
	token, user := registerUser(t, router, "Ada", "ada@example.com")

	paths := []string{
		"/api/users",
		"/api/users/" + user.ID.String(),
		"/api/profile",
		"/api/profile/" + user.ID.String(),
	}
	for _, path := range paths {
		rec := doJSON(t, router, http.MethodGet, path, nil, token)
		require.Equal(t, http.StatusOK, rec.Code, path)
		assert.NotContains(t, rec.Body.String(), "password", path)
		assert.NotContains(t, rec.Body.String(), "hunter22", path)
	}
}
