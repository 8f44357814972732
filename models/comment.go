package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const CommentMaxLength = 500

// Comment represents a text annotation on a project. Author and project
// references are fixed at creation.
type Comment struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Text      string    `json:"text" db:"text" gorm:"type:text;not null"`
	AuthorID  uuid.UUID `json:"author_id" db:"author_id" gorm:"type:uuid;not null;index:idx_comments_author_id"`
	ProjectID uuid.UUID `json:"project_id" db:"project_id" gorm:"type:uuid;not null;index:idx_comments_project_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`

	Author User `json:"author,omitempty" gorm:"foreignKey:AuthorID;references:ID"`
}

func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
