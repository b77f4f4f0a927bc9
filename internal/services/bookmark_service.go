package services

import (
	"gorm.io/gorm"

	"collabmate_backend/internal/models"
	"collabmate_backend/internal/repositories"
	"collabmate_backend/internal/services/dto"
	"collabmate_backend/pkg/apperrors"
)

type BookmarkService interface {
	Add(db *gorm.DB, userID string, req *dto.AddBookmarkRequest) error
	Remove(db *gorm.DB, userID, projectID string) error
	List(db *gorm.DB, userID string) ([]*dto.ProjectResponse, error)
}

type BookmarkServiceImpl struct {
	bookmarkRepo repositories.BookmarkRepository
	projectRepo  repositories.ProjectRepository
	profileRepo  repositories.ProfileRepository
}

func NewBookmarkService(bookmarkRepo repositories.BookmarkRepository, projectRepo repositories.ProjectRepository, profileRepo repositories.ProfileRepository) BookmarkService {
	return &BookmarkServiceImpl{bookmarkRepo: bookmarkRepo, projectRepo: projectRepo, profileRepo: profileRepo}
}

func (s *BookmarkServiceImpl) Add(db *gorm.DB, userID string, req *dto.AddBookmarkRequest) error {
	if err := s.requireProfile(db, userID); err != nil {
		return err
	}
	if _, err := s.projectRepo.FindByID(db, req.ProjectID); err != nil {
		if apperrors.Is(err, repositories.ErrProjectNotFound) {
			return apperrors.ErrProjectNotFound
		}
		return apperrors.InternalError(err)
	}

	bookmark := &models.Bookmark{UserID: userID, ProjectID: req.ProjectID}
	if err := s.bookmarkRepo.Create(db, bookmark); err != nil {
		if apperrors.Is(err, repositories.ErrDuplicateBookmark) {
			return apperrors.ErrDuplicateBookmark
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *BookmarkServiceImpl) Remove(db *gorm.DB, userID, projectID string) error {
	if err := s.requireProfile(db, userID); err != nil {
		return err
	}
	if err := s.bookmarkRepo.Delete(db, userID, projectID); err != nil {
		if apperrors.Is(err, repositories.ErrBookmarkNotFound) {
			return apperrors.ErrBookmarkNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *BookmarkServiceImpl) List(db *gorm.DB, userID string) ([]*dto.ProjectResponse, error) {
	if err := s.requireProfile(db, userID); err != nil {
		return nil, err
	}
	bookmarks, err := s.bookmarkRepo.FindByUser(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	ids := make([]string, 0, len(bookmarks))
	for _, bookmark := range bookmarks {
		ids = append(ids, bookmark.ProjectID)
	}
	if len(ids) == 0 {
		return []*dto.ProjectResponse{}, nil
	}

	projects, err := s.projectRepo.FindByIDs(db, ids)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewProjectResponses(projects), nil
}

func (s *BookmarkServiceImpl) requireProfile(db *gorm.DB, userID string) error {
	if _, err := s.profileRepo.FindByUserID(db, userID); err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}
