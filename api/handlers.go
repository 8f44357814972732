package api

import (
	"github.com/devconnect-app/backend/database"
	"github.com/devconnect-app/backend/services"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, auth services.AuthService, search services.SearchService) *routeHandlers {
	return &routeHandlers{
		userHandler:    newUserHandler(database.UserRepo(), auth),
		authHandler:    newAuthHandler(database.UserRepo(), auth),
		profileHandler: newProfileHandler(database.UserRepo()),
		projectHandler: newProjectHandler(database.ProjectRepo()),
		commentHandler: newCommentHandler(database.CommentRepo(), database.ProjectRepo()),
		searchHandler:  newSearchHandler(search),
	}
}
