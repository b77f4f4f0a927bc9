package repositories

import (
	"errors"

	"gorm.io/gorm"

	"collabmate_backend/internal/models"
)

var (
	ErrRequestNotFound   = errors.New("collaboration request not found")
	ErrDuplicateRequest  = errors.New("collaboration request already exists")
	ErrRequestNotPending = errors.New("collaboration request is not pending")
)

type CollaborationRepository interface {
	Create(db *gorm.DB, request *models.CollaborationRequest) error
	FindByProjectAndUser(db *gorm.DB, projectID, userID string) (*models.CollaborationRequest, error)

	// TransitionFromPending sets the request's status with a conditional
	// update (only while status is still pending), so two concurrent
	// responses cannot both win.
	TransitionFromPending(db *gorm.DB, projectID, userID string, status models.RequestStatus) error
}

type CollaborationRepositoryImpl struct{}

func NewCollaborationRepository() CollaborationRepository {
	return &CollaborationRepositoryImpl{}
}

func (r *CollaborationRepositoryImpl) Create(db *gorm.DB, request *models.CollaborationRequest) error {
	if err := db.Create(request).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateRequest
		}
		return err
	}
	return nil
}

func (r *CollaborationRepositoryImpl) FindByProjectAndUser(db *gorm.DB, projectID, userID string) (*models.CollaborationRequest, error) {
	var request models.CollaborationRequest
	err := db.First(&request, "project_id = ? AND user_id = ?", projectID, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	return &request, nil
}

func (r *CollaborationRepositoryImpl) TransitionFromPending(db *gorm.DB, projectID, userID string, status models.RequestStatus) error {
	result := db.Model(&models.CollaborationRequest{}).
		Where("project_id = ? AND user_id = ? AND status = ?", projectID, userID, models.RequestStatusPending).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRequestNotPending
	}
	return nil
}
