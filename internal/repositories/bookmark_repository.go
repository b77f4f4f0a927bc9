package repositories

import (
	"errors"

	"gorm.io/gorm"

	"collabmate_backend/internal/models"
)

var (
	ErrDuplicateBookmark = errors.New("bookmark already exists for this user and project")
	ErrBookmarkNotFound  = errors.New("bookmark not found")
)

type BookmarkRepository interface {
	Create(db *gorm.DB, bookmark *models.Bookmark) error
	Exists(db *gorm.DB, userID, projectID string) (bool, error)
	Delete(db *gorm.DB, userID, projectID string) error
	FindByUser(db *gorm.DB, userID string) ([]models.Bookmark, error)
}

type BookmarkRepositoryImpl struct{}

func NewBookmarkRepository() BookmarkRepository {
	return &BookmarkRepositoryImpl{}
}

func (r *BookmarkRepositoryImpl) Create(db *gorm.DB, bookmark *models.Bookmark) error {
	if err := db.Create(bookmark).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateBookmark
		}
		return err
	}
	return nil
}

func (r *BookmarkRepositoryImpl) Exists(db *gorm.DB, userID, projectID string) (bool, error) {
	var count int64
	err := db.Model(&models.Bookmark{}).
		Where("user_id = ? AND project_id = ?", userID, projectID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *BookmarkRepositoryImpl) Delete(db *gorm.DB, userID, projectID string) error {
	result := db.Where("user_id = ? AND project_id = ?", userID, projectID).
		Delete(&models.Bookmark{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBookmarkNotFound
	}
	return nil
}

func (r *BookmarkRepositoryImpl) FindByUser(db *gorm.DB, userID string) ([]models.Bookmark, error) {
	var bookmarks []models.Bookmark
	if err := db.Where("user_id = ?", userID).Find(&bookmarks).Error; err != nil {
		return nil, err
	}
	return bookmarks, nil
}
