package repositories

import (
	"errors"

	"gorm.io/gorm"

	"collabmate_backend/internal/models"
)

var ErrDuplicateSwipe = errors.New("swipe already exists for this user and project")

type SwipeRepository interface {
	Create(db *gorm.DB, swipe *models.Swipe) error
	Exists(db *gorm.DB, userID, projectID string) (bool, error)
	FindByUser(db *gorm.DB, userID string) ([]models.Swipe, error)
	FindLikedByUser(db *gorm.DB, userID string) ([]models.Swipe, error)
}

type SwipeRepositoryImpl struct{}

func NewSwipeRepository() SwipeRepository {
	return &SwipeRepositoryImpl{}
}

func (r *SwipeRepositoryImpl) Create(db *gorm.DB, swipe *models.Swipe) error {
	if err := db.Create(swipe).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateSwipe
		}
		return err
	}
	return nil
}

func (r *SwipeRepositoryImpl) Exists(db *gorm.DB, userID, projectID string) (bool, error) {
	var count int64
	err := db.Model(&models.Swipe{}).
		Where("user_id = ? AND project_id = ?", userID, projectID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *SwipeRepositoryImpl) FindByUser(db *gorm.DB, userID string) ([]models.Swipe, error) {
	var swipes []models.Swipe
	if err := db.Where("user_id = ?", userID).Find(&swipes).Error; err != nil {
		return nil, err
	}
	return swipes, nil
}

func (r *SwipeRepositoryImpl) FindLikedByUser(db *gorm.DB, userID string) ([]models.Swipe, error) {
	var swipes []models.Swipe
	err := db.Where("user_id = ? AND action = ?", userID, models.SwipeActionLike).
		Find(&swipes).Error
	if err != nil {
		return nil, err
	}
	return swipes, nil
}
