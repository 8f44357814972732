package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SocialLinks holds the optional outbound links shown on a user's profile
type SocialLinks struct {
	Github    string `json:"github,omitempty"`
	Linkedin  string `json:"linkedin,omitempty"`
	Portfolio string `json:"portfolio,omitempty"`
}

// User represents a registered developer account.
// Password holds a bcrypt hash and must never reach a response body.
type User struct {
	ID             uuid.UUID                       `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Name           string                          `json:"name" db:"name" gorm:"type:text;not null"`
	Email          string                          `json:"email" db:"email" gorm:"type:text;not null;uniqueIndex:idx_users_email"`
	Password       string                          `json:"-" db:"password" gorm:"type:text;not null"`
	Bio            string                          `json:"bio,omitempty" db:"bio" gorm:"type:text"`
	ProfilePicture string                          `json:"profilePicture,omitempty" db:"profile_picture" gorm:"type:text"`
	Location       string                          `json:"location,omitempty" db:"location" gorm:"type:text"`
	SocialLinks    datatypes.JSONType[SocialLinks] `json:"socialLinks" db:"social_links"`
	Skills         []UserSkill                     `json:"skills,omitempty" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
	CreatedAt      time.Time                       `json:"createdAt" db:"created_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// SkillValues flattens the preloaded skill rows into their display order.
func (u User) SkillValues() []string {
	values := make([]string, 0, len(u.Skills))
	for _, skill := range u.Skills {
		values = append(values, skill.Value)
	}
	return values
}
