package repositories

import (
	"errors"

	"gorm.io/gorm"

	"collabmate_backend/internal/models"
)

var ErrProjectNotFound = errors.New("project not found")

type ProjectRepository interface {
	Create(db *gorm.DB, project *models.Project) error
	FindByID(db *gorm.DB, id string) (*models.Project, error)
	FindByIDWithRequests(db *gorm.DB, id string) (*models.Project, error)
	Update(db *gorm.DB, project *models.Project) error

	FindByOwner(db *gorm.DB, ownerID string) ([]models.Project, error)
	FindExcludingOwner(db *gorm.DB, ownerID string) ([]models.Project, error)
	FindByIDs(db *gorm.DB, ids []string) ([]models.Project, error)

	// Search runs a case-insensitive substring match over title, description,
	// tech stack and status, excluding the caller's own projects.
	Search(db *gorm.DB, ownerID, query string) ([]models.Project, error)

	// FindFeedCandidates returns projects not owned by the user and not in
	// the excluded (already swiped) id set. The skill filter is applied by
	// the feed service.
	FindFeedCandidates(db *gorm.DB, userID string, excludedIDs []string) ([]models.Project, error)

	// FindWithRequestsByOwner returns the caller's projects that have at
	// least one collaboration request, requests preloaded.
	FindWithRequestsByOwner(db *gorm.DB, ownerID string) ([]models.Project, error)

	// FindOwnedOrCollaborating returns projects where the user is the owner
	// or appears in the collaborators list.
	FindOwnedOrCollaborating(db *gorm.DB, userID string) ([]models.Project, error)
}

type ProjectRepositoryImpl struct{}

func NewProjectRepository() ProjectRepository {
	return &ProjectRepositoryImpl{}
}

func (r *ProjectRepositoryImpl) Create(db *gorm.DB, project *models.Project) error {
	return db.Create(project).Error
}

func (r *ProjectRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Project, error) {
	var project models.Project
	if err := db.First(&project, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	return &project, nil
}

func (r *ProjectRepositoryImpl) FindByIDWithRequests(db *gorm.DB, id string) (*models.Project, error) {
	var project models.Project
	if err := db.Preload("CollaborationRequests").First(&project, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	return &project, nil
}

func (r *ProjectRepositoryImpl) Update(db *gorm.DB, project *models.Project) error {
	return db.Save(project).Error
}

func (r *ProjectRepositoryImpl) FindByOwner(db *gorm.DB, ownerID string) ([]models.Project, error) {
	var projects []models.Project
	if err := db.Where("owner_id = ?", ownerID).Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *ProjectRepositoryImpl) FindExcludingOwner(db *gorm.DB, ownerID string) ([]models.Project, error) {
	var projects []models.Project
	if err := db.Where("owner_id <> ?", ownerID).Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *ProjectRepositoryImpl) FindByIDs(db *gorm.DB, ids []string) ([]models.Project, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var projects []models.Project
	if err := db.Where("id IN ?", ids).Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *ProjectRepositoryImpl) Search(db *gorm.DB, ownerID, query string) ([]models.Project, error) {
	pattern := "%" + query + "%"
	var projects []models.Project
	err := db.
		Where("owner_id <> ?", ownerID).
		Where(
			db.Where("title ILIKE ?", pattern).
				Or("description ILIKE ?", pattern).
				Or("project_tech_stack::text ILIKE ?", pattern).
				Or("status ILIKE ?", pattern),
		).
		Find(&projects).Error
	if err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *ProjectRepositoryImpl) FindFeedCandidates(db *gorm.DB, userID string, excludedIDs []string) ([]models.Project, error) {
	q := db.Where("owner_id <> ?", userID)
	if len(excludedIDs) > 0 {
		q = q.Where("id NOT IN ?", excludedIDs)
	}

	var projects []models.Project
	if err := q.Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *ProjectRepositoryImpl) FindWithRequestsByOwner(db *gorm.DB, ownerID string) ([]models.Project, error) {
	var projects []models.Project
	err := db.
		Preload("CollaborationRequests").
		Where("owner_id = ?", ownerID).
		Where("EXISTS (SELECT 1 FROM collaboration_requests cr WHERE cr.project_id = projects.id)").
		Find(&projects).Error
	if err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *ProjectRepositoryImpl) FindOwnedOrCollaborating(db *gorm.DB, userID string) ([]models.Project, error) {
	var projects []models.Project
	err := db.
		Where("owner_id = ?", userID).
		Or("collaborators @> ?::jsonb", `["`+userID+`"]`).
		Find(&projects).Error
	if err != nil {
		return nil, err
	}
	return projects, nil
}
