package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectTag represents a tag associated with a project. Position preserves
// the order the tags were submitted in.
type ProjectTag struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	ProjectID uuid.UUID `json:"project_id" db:"project_id" gorm:"type:uuid;not null;index:idx_project_tags_project_id"`
	Value     string    `json:"value" db:"value" gorm:"type:text;not null"`
	Position  int       `json:"position" db:"position" gorm:"not null;default:0"`
}

func (t *ProjectTag) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
