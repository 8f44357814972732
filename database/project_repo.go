package database

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/devconnect-app/backend/models"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// orderedTags preloads tag rows in their submitted order.
func orderedTags(db *gorm.DB) *gorm.DB {
	return db.Order("project_tags.position")
}

// withAssociations attaches the tag list and the owner (including the
// owner's skills, for detail views) to every loaded project.
func (r *ProjectRepo) withAssociations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Tags", orderedTags).
		Preload("Owner").
		Preload("Owner.Skills", orderedSkills)
}

// FindAll returns all projects, newest first.
func (r *ProjectRepo) FindAll(ctx context.Context) ([]*models.Project, error) {
	var projects []*models.Project
	err := r.withAssociations(ctx).
		Order("created_at DESC, id").
		Find(&projects).Error
	return projects, err
}

// FindByID returns a project by its ID, or nil when no such project exists.
func (r *ProjectRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.withAssociations(ctx).First(&project, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// FindByOwner returns one user's projects, newest first.
func (r *ProjectRepo) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*models.Project, error) {
	var projects []*models.Project
	err := r.withAssociations(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC, id").
		Find(&projects).Error
	return projects, err
}

// Add inserts a new project into the database
func (r *ProjectRepo) Add(ctx context.Context, project *models.Project) error {
	return r.db.WithContext(ctx).Omit("Owner").Create(project).Error
}

// Update saves changed fields of an existing project. Tag rows are managed
// separately through ReplaceTags.
func (r *ProjectRepo) Update(ctx context.Context, project *models.Project) error {
	return r.db.WithContext(ctx).Omit("Owner", "Tags").Save(project).Error
}

// ReplaceTags swaps a project's tag list for values, keeping their order.
func (r *ProjectRepo) ReplaceTags(ctx context.Context, projectID uuid.UUID, values []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", projectID).Delete(&models.ProjectTag{}).Error; err != nil {
			return err
		}
		for i, value := range values {
			tag := models.ProjectTag{ProjectID: projectID, Value: value, Position: i}
			if err := tx.Create(&tag).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete removes a project from the database by id. Comments referencing
// the project are left in place; they become unreachable because every
// listing path requires the project row to exist.
func (r *ProjectRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Select("Tags").Delete(&models.Project{ID: id}).Error
}
