package services

import (
	"context"
	"encoding/json"

	"gorm.io/gorm"

	"github.com/JohnSmith545/Fuel-and-Flow/models"
)

// UserService reads and updates the profile the engines consume: allergen
// exclusions, weight, goal, role tier and macro targets.
type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) Get(ctx context.Context, userID uint) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// ProfileUpdate carries the editable profile fields. Nil pointers leave the
// stored value untouched.
type ProfileUpdate struct {
	DisplayName         *string              `json:"display_name"`
	OnboardingCompleted *bool                `json:"onboarding_completed"`
	Age                 *int                 `json:"age"`
	Weight              *float64             `json:"weight"`
	Height              *float64             `json:"height"`
	Allergens           *[]string            `json:"allergens"`
	Goal                *string              `json:"goal"`
	Targets             *models.MacroTargets `json:"targets"`
}

// Update applies the edit and re-reads the row; callers always see the
// stored profile, never a locally patched copy.
func (s *UserService) Update(ctx context.Context, userID uint, upd ProfileUpdate) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		return nil, err
	}

	if upd.DisplayName != nil {
		user.DisplayName = *upd.DisplayName
	}
	if upd.OnboardingCompleted != nil {
		user.OnboardingCompleted = *upd.OnboardingCompleted
	}
	if upd.Age != nil {
		user.Age = upd.Age
	}
	if upd.Weight != nil {
		user.Weight = upd.Weight
	}
	if upd.Height != nil {
		user.Height = upd.Height
	}
	if upd.Allergens != nil {
		user.Allergens = *upd.Allergens
	}
	if upd.Goal != nil {
		user.Goal = *upd.Goal
	}
	if upd.Targets != nil {
		b, err := json.Marshal(upd.Targets)
		if err != nil {
			return nil, err
		}
		user.TargetsJSON = string(b)
	}

	if err := s.db.WithContext(ctx).Save(&user).Error; err != nil {
		return nil, err
	}

	var fresh models.User
	if err := s.db.WithContext(ctx).First(&fresh, userID).Error; err != nil {
		return nil, err
	}
	return &fresh, nil
}

// Targets decodes the stored macro targets, zero-valued when unset.
func (s *UserService) Targets(user *models.User) models.MacroTargets {
	var t models.MacroTargets
	if user.TargetsJSON != "" {
		_ = json.Unmarshal([]byte(user.TargetsJSON), &t)
	}
	return t
}
