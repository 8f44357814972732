package api

import (
	"time"

	"github.com/google/uuid"

	"github.com/devconnect-app/backend/models"
)

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	userHandler    userHandler
	authHandler    authHandler
	profileHandler profileHandler
	projectHandler projectHandler
	commentHandler commentHandler
	searchHandler  searchHandler
}

type msgResponse struct {
	Msg string `json:"msg"`
}

// UserSummary is the slice of a user attached to list entries: enough to
// render a byline, nothing more.
type UserSummary struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	ProfilePicture string    `json:"profilePicture,omitempty"`
}

func newUserSummary(u models.User) UserSummary {
	return UserSummary{
		ID:             u.ID,
		Name:           u.Name,
		ProfilePicture: u.ProfilePicture,
	}
}

// UserProfile is the full public view of a user. The password hash is not
// part of this type, so it cannot leak through any response.
type UserProfile struct {
	ID             uuid.UUID          `json:"id"`
	Name           string             `json:"name"`
	Email          string             `json:"email"`
	Bio            string             `json:"bio,omitempty"`
	ProfilePicture string             `json:"profilePicture,omitempty"`
	Skills         []string           `json:"skills"`
	Location       string             `json:"location,omitempty"`
	SocialLinks    models.SocialLinks `json:"socialLinks"`
	CreatedAt      time.Time          `json:"createdAt"`
}

func newUserProfile(u models.User) UserProfile {
	return UserProfile{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		Bio:            u.Bio,
		ProfilePicture: u.ProfilePicture,
		Skills:         u.SkillValues(),
		Location:       u.Location,
		SocialLinks:    u.SocialLinks.Data(),
		CreatedAt:      u.CreatedAt,
	}
}

func newUserProfiles(users []*models.User) []UserProfile {
	profiles := make([]UserProfile, 0, len(users))
	for _, u := range users {
		profiles = append(profiles, newUserProfile(*u))
	}
	return profiles
}

// TokenResponse is returned by register and login.
type TokenResponse struct {
	Token string      `json:"token"`
	User  UserProfile `json:"user"`
}

// ProjectResponse is the list view of a project, owner reduced to a summary.
type ProjectResponse struct {
	ID          uuid.UUID           `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Image       string              `json:"image"`
	Tags        []string            `json:"tags"`
	Links       models.ProjectLinks `json:"links"`
	CreatedAt   time.Time           `json:"createdAt"`
	Owner       UserSummary         `json:"owner"`
}

func newProjectResponse(p models.Project) ProjectResponse {
	return ProjectResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Image:       p.Image,
		Tags:        p.TagValues(),
		Links:       p.Links.Data(),
		CreatedAt:   p.CreatedAt,
		Owner:       newUserSummary(p.Owner),
	}
}

func newProjectResponses(projects []*models.Project) []ProjectResponse {
	responses := make([]ProjectResponse, 0, len(projects))
	for _, p := range projects {
		responses = append(responses, newProjectResponse(*p))
	}
	return responses
}

// ProjectDetailResponse is the single-project view, owner expanded to the
// full public profile.
type ProjectDetailResponse struct {
	ID          uuid.UUID           `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Image       string              `json:"image"`
	Tags        []string            `json:"tags"`
	Links       models.ProjectLinks `json:"links"`
	CreatedAt   time.Time           `json:"createdAt"`
	Owner       UserProfile         `json:"owner"`
}

func newProjectDetailResponse(p models.Project) ProjectDetailResponse {
	return ProjectDetailResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Image:       p.Image,
		Tags:        p.TagValues(),
		Links:       p.Links.Data(),
		CreatedAt:   p.CreatedAt,
		Owner:       newUserProfile(p.Owner),
	}
}

// CommentResponse carries a comment with its author's summary attached.
type CommentResponse struct {
	ID        uuid.UUID   `json:"id"`
	Text      string      `json:"text"`
	ProjectID uuid.UUID   `json:"project_id"`
	CreatedAt time.Time   `json:"createdAt"`
	Author    UserSummary `json:"author"`
}

func newCommentResponse(c models.Comment) CommentResponse {
	return CommentResponse{
		ID:        c.ID,
		Text:      c.Text,
		ProjectID: c.ProjectID,
		CreatedAt: c.CreatedAt,
		Author:    newUserSummary(c.Author),
	}
}

func newCommentResponses(comments []*models.Comment) []CommentResponse {
	responses := make([]CommentResponse, 0, len(comments))
	for _, c := range comments {
		responses = append(responses, newCommentResponse(*c))
	}
	return responses
}

// SearchResponse groups the two halves of a search result.
type SearchResponse struct {
	People   []UserProfile     `json:"people"`
	Projects []ProjectResponse `json:"projects"`
}
