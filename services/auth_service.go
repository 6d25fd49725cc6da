package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/JohnSmith545/Fuel-and-Flow/models"
	"github.com/JohnSmith545/Fuel-and-Flow/utils"
)

type AuthService struct {
	db *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

func (s *AuthService) Register(ctx context.Context, email, password, displayName string) (*models.User, error) {
	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}
	user := &models.User{
		Email:       email,
		Password:    hashed,
		DisplayName: displayName,
		Role:        "free",
	}
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate verifies credentials and returns a signed JWT.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (string, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return "", errors.New("user not found")
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		return "", errors.New("incorrect password")
	}
	return utils.GenerateJWT(user.ID, user.Email)
}
