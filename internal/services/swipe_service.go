package services

import (
	"gorm.io/gorm"

	"collabmate_backend/internal/models"
	"collabmate_backend/internal/repositories"
	"collabmate_backend/internal/services/dto"
	"collabmate_backend/pkg/apperrors"
)

type SwipeService interface {
	RecordSwipe(db *gorm.DB, userID string, req *dto.CreateSwipeRequest) error

	// GetLikedProjects returns the projects the user swiped right on.
	GetLikedProjects(db *gorm.DB, userID string) ([]*dto.ProjectResponse, error)
}

type SwipeServiceImpl struct {
	swipeRepo   repositories.SwipeRepository
	projectRepo repositories.ProjectRepository
}

func NewSwipeService(swipeRepo repositories.SwipeRepository, projectRepo repositories.ProjectRepository) SwipeService {
	return &SwipeServiceImpl{swipeRepo: swipeRepo, projectRepo: projectRepo}
}

func (s *SwipeServiceImpl) RecordSwipe(db *gorm.DB, userID string, req *dto.CreateSwipeRequest) error {
	if _, err := s.projectRepo.FindByID(db, req.ProjectID); err != nil {
		if apperrors.Is(err, repositories.ErrProjectNotFound) {
			return apperrors.ErrProjectNotFound
		}
		return apperrors.InternalError(err)
	}

	swipe := &models.Swipe{
		UserID:    userID,
		ProjectID: req.ProjectID,
		Action:    models.SwipeAction(req.Action),
	}
	if err := s.swipeRepo.Create(db, swipe); err != nil {
		if apperrors.Is(err, repositories.ErrDuplicateSwipe) {
			return apperrors.ErrDuplicateSwipe
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *SwipeServiceImpl) GetLikedProjects(db *gorm.DB, userID string) ([]*dto.ProjectResponse, error) {
	liked, err := s.swipeRepo.FindLikedByUser(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	ids := make([]string, 0, len(liked))
	for _, swipe := range liked {
		ids = append(ids, swipe.ProjectID)
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
