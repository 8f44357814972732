package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserSkill represents one skill tag on a user profile. Position preserves
// the order the user listed their skills in.
type UserSkill struct {
	ID       uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	UserID   uuid.UUID `json:"user_id" db:"user_id" gorm:"type:uuid;not null;index:idx_user_skills_user_id"`
	Value    string    `json:"value" db:"value" gorm:"type:text;not null"`
	Position int       `json:"position" db:"position" gorm:"not null;default:0"`
}

func (s *UserSkill) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
