package services

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/JohnSmith545/Fuel-and-Flow/logger"
	"github.com/JohnSmith545/Fuel-and-Flow/models"
	"github.com/JohnSmith545/Fuel-and-Flow/utils"
)

// FoodService manages the food catalog and user-authored custom foods.
type FoodService struct {
	db *gorm.DB
}

func NewFoodService(db *gorm.DB) *FoodService {
	return &FoodService{db: db}
}

// CustomFoodRequest is the payload for creating a user-authored food.
type CustomFoodRequest struct {
	Name        string   `json:"name" binding:"required"`
	Calories    float64  `json:"calories"`
	Protein     float64  `json:"protein"`
	Carbs       float64  `json:"carbs"`
	Fat         float64  `json:"fat"`
	Ingredients []string `json:"ingredients"`
	Recipe      string   `json:"recipe"`
	Image       string   `json:"image"` // data-URI; uploaded if the store is configured
}

// CreateCustom stores a custom food for the user. Macro quantities clamp at
// zero; ingredient tag order is preserved as given.
func (s *FoodService) CreateCustom(ctx context.Context, userID uint, req CustomFoodRequest) (*models.FoodItem, error) {
	food := &models.FoodItem{
		Name:        strings.TrimSpace(req.Name),
		Calories:    clampNonNegative(req.Calories),
		Protein:     clampNonNegative(req.Protein),
		Carbs:       clampNonNegative(req.Carbs),
		Fat:         clampNonNegative(req.Fat),
		Ingredients: req.Ingredients,
		Recipe:      req.Recipe,
		Custom:      true,
		UserID:      userID,
	}

	if req.Image != "" {
		url, err := utils.UploadFoodImage(ctx, req.Image, food.Name)
		if err != nil {
			logger.Warn("food image upload failed, storing without image", "error", err)
		} else {
			food.Image = url
		}
	}

	if err := s.db.WithContext(ctx).Create(food).Error; err != nil {
		return nil, err
	}
	return food, nil
}

// List returns catalog foods plus the user's custom ones.
func (s *FoodService) List(ctx context.Context, userID uint) ([]models.FoodItem, error) {
	var foods []models.FoodItem
	err := s.db.WithContext(ctx).
		Where("user_id = ? OR user_id = 0", userID).
		Order("name ASC").
		Find(&foods).Error
	return foods, err
}

// Get fetches a food the user may log: a catalog entry or their own custom.
func (s *FoodService) Get(ctx context.Context, userID, foodID uint) (*models.FoodItem, error) {
	var food models.FoodItem
	err := s.db.WithContext(ctx).
		Where("id = ? AND (user_id = ? OR user_id = 0)", foodID, userID).
		First(&food).Error
	if err != nil {
		return nil, err
	}
	return &food, nil
}

// Search matches food names case-insensitively.
func (s *FoodService) Search(ctx context.Context, userID uint, q string) ([]models.FoodItem, error) {
	var foods []models.FoodItem
	err := s.db.WithContext(ctx).
		Where("(user_id = ? OR user_id = 0) AND LOWER(name) LIKE ?", userID, "%"+strings.ToLower(q)+"%").
		Order("name ASC").
		Limit(25).
		Find(&foods).Error
	return foods, err
}

func clampNonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
