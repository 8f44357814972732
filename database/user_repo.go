package database

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/devconnect-app/backend/models"
)

type UserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{db}
}

// orderedSkills preloads skill rows in their submitted order.
func orderedSkills(db *gorm.DB) *gorm.DB {
	return db.Order("user_skills.position")
}

// FindAll returns all users, oldest first so listings are stable.
func (r *UserRepo) FindAll(ctx context.Context) ([]*models.User, error) {
	var users []*models.User
	err := r.db.WithContext(ctx).
		Preload("Skills", orderedSkills).
		Order("created_at, id").
		Find(&users).Error
	return users, err
}

// FindByID returns a user by its ID, or nil when no such user exists.
func (r *UserRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).
		Preload("Skills", orderedSkills).
		First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail returns the user registered under email, or nil when absent.
func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).
		Preload("Skills", orderedSkills).
		First(&user, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Add inserts a new user into the database
func (r *UserRepo) Add(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// Update saves changed profile fields of an existing user. Skill rows are
// managed separately through ReplaceSkills.
func (r *UserRepo) Update(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Omit("Skills").Save(user).Error
}

// ReplaceSkills swaps a user's skill list for values, keeping their order.
func (r *UserRepo) ReplaceSkills(ctx context.Context, userID uuid.UUID, values []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.UserSkill{}).Error; err != nil {
			return err
		}
		for i, value := range values {
			skill := models.UserSkill{UserID: userID, Value: value, Position: i}
			if err := tx.Create(&skill).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
