package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	TitleMaxLength       = 100
	DescriptionMaxLength = 2000

	// DefaultProjectImage is used when a project is created without an image URL.
	DefaultProjectImage = "default-project.jpg"
)

// ProjectLinks holds the optional external links of a project
type ProjectLinks struct {
	Github string `json:"github,omitempty"`
	Demo   string `json:"demo,omitempty"`
}

// Project represents a portfolio entry owned by exactly one user.
// OwnerID is fixed at creation and never updated afterwards.
type Project struct {
	ID          uuid.UUID                        `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	OwnerID     uuid.UUID                        `json:"owner_id" db:"owner_id" gorm:"type:uuid;not null;index:idx_projects_owner_id"`
	Title       string                           `json:"title" db:"title" gorm:"type:text;not null"`
	Description string                           `json:"description" db:"description" gorm:"type:text;not null"`
	Image       string                           `json:"image" db:"image" gorm:"type:text;not null"`
	Links       datatypes.JSONType[ProjectLinks] `json:"links" db:"links"`
	Tags        []ProjectTag                     `json:"tags,omitempty" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time                        `json:"createdAt" db:"created_at"`

	Owner User `json:"owner,omitempty" gorm:"foreignKey:OwnerID;references:ID"`
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.Image == "" {
		p.Image = DefaultProjectImage
	}
	return nil
}

// TagValues flattens the preloaded tag rows into their display order.
func (p Project) TagValues() []string {
	values := make([]string, 0, len(p.Tags))
	for _, tag := range p.Tags {
		values = append(values, tag.Value)
	}
	return values
}
