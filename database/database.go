package database

import (
	"gorm.io/gorm"
)

type Database struct {
	userRepo    *UserRepo
	projectRepo *ProjectRepo
	commentRepo *CommentRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		userRepo:    NewUserRepo(db),
		projectRepo: NewProjectRepo(db),
		commentRepo: NewCommentRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) UserRepo() *UserRepo {
	return d.userRepo
}

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) CommentRepo() *CommentRepo {
	return d.commentRepo
}
