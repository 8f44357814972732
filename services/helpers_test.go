package services

import (
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/devconnect-app/backend/database"
	"github.com/devconnect-app/backend/models"
)

// newTestDatabase opens an isolated in-memory store with the full schema.
func newTestDatabase(t *testing.T) database.Database {
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

	return database.New(db)
}
