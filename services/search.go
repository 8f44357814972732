package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/devconnect-app/backend/database"
	"github.com/devconnect-app/backend/errs"
	"github.com/devconnect-app/backend/models"
)

// SearchResult groups the matches of a single query. People keep the
// store's listing order, projects stay newest first, so a fixed data
// snapshot always yields the same result.
type SearchResult struct {
	People   []*models.User
	Projects []*models.Project
}

// MatchUsers filters users down to those whose name or any skill contains
// query, case-insensitively. Pure function over the corpus; it never hits
// the store.
func MatchUsers(users []*models.User, query string) []*models.User {
	needle := strings.ToLower(query)
	matched := make([]*models.User, 0)
	for _, user := range users {
		if strings.Contains(strings.ToLower(user.Name), needle) {
			matched = append(matched, user)
			continue
		}
		for _, skill := range user.Skills {
			if strings.Contains(strings.ToLower(skill.Value), needle) {
				matched = append(matched, user)
				break
			}
		}
	}
	return matched
}

// MatchProjects filters projects down to those whose title, description or
// any tag contains query, case-insensitively.
func MatchProjects(projects []*models.Project, query string) []*models.Project {
	needle := strings.ToLower(query)
	matched := make([]*models.Project, 0)
	for _, project := range projects {
		if strings.Contains(strings.ToLower(project.Title), needle) ||
			strings.Contains(strings.ToLower(project.Description), needle) {
			matched = append(matched, project)
			continue
		}
		for _, tag := range project.Tags {
			if strings.Contains(strings.ToLower(tag.Value), needle) {
				matched = append(matched, project)
				break
			}
		}
	}
	return matched
}

// SearchService answers free-text queries over users and projects with
// exact substring semantics: no tokenizing, no ranking, no limit.
type SearchService struct {
	userRepo    *database.UserRepo
	projectRepo *database.ProjectRepo
	logger      zerolog.Logger
}

func NewSearchService(userRepo *database.UserRepo, projectRepo *database.ProjectRepo) SearchService {
	return SearchService{
		userRepo:    userRepo,
		projectRepo: projectRepo,
		logger:      log.With().Str("serviceName", "searchService").Logger(),
	}
}

// Search returns the users and projects matching query. A blank query is
// rejected before any store access.
func (s SearchService) Search(ctx context.Context, query string) (SearchResult, error) {
	if strings.TrimSpace(query) == "" {
		return SearchResult{}, errs.NewBadRequestError("please provide a search query")
	}

	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return SearchResult{}, errs.NewDatabaseError("search", "users", err)
	}

	projects, err := s.projectRepo.FindAll(ctx)
	if err != nil {
		return SearchResult{}, errs.NewDatabaseError("search", "projects", err)
	}

	result := SearchResult{
		People:   MatchUsers(users, query),
		Projects: MatchProjects(projects, query),
	}

	s.logger.Debug().
		Str("query", query).
		Int("people", len(result.People)).
		Int("projects", len(result.Projects)).
		Msg("search completed")

	return result, nil
}
