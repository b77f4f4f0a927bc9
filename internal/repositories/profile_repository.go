package repositories

import (
	"errors"

	"gorm.io/gorm"

	"collabmate_backend/internal/models"
)

var (
	ErrProfileNotFound      = errors.New("profile not found")
	ErrProfileAlreadyExists = errors.New("profile already exists for this user")
)

type ProfileRepository interface {
	Create(db *gorm.DB, profile *models.UserProfile) error
	FindByUserID(db *gorm.DB, userID string) (*models.UserProfile, error)
	FindByUserIDs(db *gorm.DB, userIDs []string) ([]models.UserProfile, error)
	Update(db *gorm.DB, profile *models.UserProfile) error
}

type ProfileRepositoryImpl struct{}

func NewProfileRepository() ProfileRepository {
	return &ProfileRepositoryImpl{}
}

func (r *ProfileRepositoryImpl) Create(db *gorm.DB, profile *models.UserProfile) error {
	if err := db.Create(profile).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrProfileAlreadyExists
		}
		return err
	}
	return nil
}

func (r *ProfileRepositoryImpl) FindByUserID(db *gorm.DB, userID string) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := db.First(&profile, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) FindByUserIDs(db *gorm.DB, userIDs []string) ([]models.UserProfile, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}
	var profiles []models.UserProfile
	if err := db.Where("user_id IN ?", userIDs).Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *ProfileRepositoryImpl) Update(db *gorm.DB, profile *models.UserProfile) error {
	return db.Save(profile).Error
}
