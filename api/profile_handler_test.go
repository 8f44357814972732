package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateProfileMergesFields(t *testing.T) {
	router := newTestRouter(t)
	token, _ := registerUser(t, router, "Ada", "ada@example.com")

	rec := doJSON(t, router, http.MethodPost, "/api/profile", map[string]any{
		"bio":      "compilers and coffee",
		"location": "London",
		"skills":   []string{"go", "rust"},
		"socialLinks": map[string]string{
			"github": "https://github.com/ada",
		},
	}, token)
	require.Equal(t, http.StatusOK, rec.Code, "body: %s", rec.Body.String())

	// A later partial update leaves everything unnamed alone
	rec = doJSON(t, router, http.MethodPost, "/api/profile", map[string]any{
		"bio": "mostly compilers",
		"socialLinks": map[string]string{
			"linkedin": "https://linkedin.com/in/ada",
		},
	}, token)
	require.Equal(t, http.StatusOK, rec.Code)

	profile := decodeBody[UserProfile](t, rec)
	assert.Equal(t, "mostly compilers", profile.Bio)
	assert.Equal(t, "London", profile.Location)
	assert.Equal(t, []string{"go", "rust"}, profile.Skills)
	assert.Equal(t, "https://github.com/ada", profile.SocialLinks.Github)
	assert.Equal(t, "https://linkedin.com/in/ada", profile.SocialLinks.Linkedin)
}

func TestUpdateProfileReplacesSkillsInOrder(t *testing.T) {
	router := newTestRouter(t)
	token, _ := registerUser(t, router, "Ada", "ada@example.com")

	rec := doJSON(t, router, http.MethodPost, "/api/profile", map[string]any{
		"skills": []string{"go", "rust", "llvm"},
	}, token)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/profile", map[string]any{
		"skills": []string{"zig", "go"},
	}, token)
	require.Equal(t, http.StatusOK, rec.Code)

	profile := decodeBody[UserProfile](t, rec)
	assert.Equal(t, []string{"zig", "go"}, profile.Skills)
}

func TestUpdateProfileRequiresToken(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/profile", map[string]any{
		"bio": "anonymous",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetMyProfile(t *testing.T) {
	router := newTestRouter(t)
	token, user := registerUser(t, router, "Ada", "ada@example.com")

	rec := doJSON(t, router, http.MethodGet, "/api/profile/me", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)

	profile := decodeBody[UserProfile](t, rec)
	assert.Equal(t, user.ID, profile.ID)
}

func TestGetProfileNotFound(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/profile/7e6f1a3e-0000-4000-8000-000000000000", nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/profile/not-a-uuid", nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListUsers(t *testing.T) {
	router := newTestRouter(t)
	registerUser(t, router, "Ada", "ada@example.com")
	registerUser(t, router, "Lin", "lin@example.com")

	rec := doJSON(t, router, http.MethodGet, "/api/users", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	users := decodeBody[[]UserProfile](t, rec)
	require.Len(t, users, 2)
	// Listing order is stable: by registration time
	assert.Equal(t, "Ada", users[0].Name)
	assert.Equal(t, "Lin", users[1].Name)
}
