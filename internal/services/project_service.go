package services

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"collabmate_backend/internal/logger"
	"collabmate_backend/internal/models"
	"collabmate_backend/internal/repositories"
	"collabmate_backend/internal/services/dto"
	"collabmate_backend/internal/storage"
	"collabmate_backend/pkg/apperrors"
)

type ProjectService interface {
	Create(ctx context.Context, db *gorm.DB, userID string, form *dto.ProjectForm, images []dto.ImageUpload) (*dto.ProjectResponse, error)
	Update(ctx context.Context, db *gorm.DB, userID, projectID string, form *dto.ProjectForm, images []dto.ImageUpload) (*dto.ProjectResponse, error)

	// GetAll returns every project except the caller's own.
	GetAll(db *gorm.DB, userID string) ([]*dto.ProjectResponse, error)
	Search(db *gorm.DB, userID, query string) ([]*dto.ProjectResponse, error)
	GetMine(db *gorm.DB, userID string) ([]*dto.ProjectResponse, error)

	// GetByID is owner-only: the detail view includes the embedded
	// collaboration request list.
	GetByID(db *gorm.DB, userID, projectID string) (*dto.ProjectResponse, error)
}

// UploadLimits bounds individual image uploads.
type UploadLimits struct {
	MaxSize      int64
	AllowedTypes []string
}

type ProjectServiceImpl struct {
	projectRepo repositories.ProjectRepository
	profileRepo repositories.ProfileRepository
	storage     storage.Storage
	limits      UploadLimits
}

func NewProjectService(projectRepo repositories.ProjectRepository, profileRepo repositories.ProfileRepository, store storage.Storage, limits UploadLimits) ProjectService {
	return &ProjectServiceImpl{
		projectRepo: projectRepo,
		profileRepo: profileRepo,
		storage:     store,
		limits:      limits,
	}
}

func (s *ProjectServiceImpl) Create(ctx context.Context, db *gorm.DB, userID string, form *dto.ProjectForm, images []dto.ImageUpload) (*dto.ProjectResponse, error) {
	profile, err := s.requireProfile(db, userID)
	if err != nil {
		return nil, err
	}

	if err := s.checkImages(images); err != nil {
		return nil, err
	}
	imageURLs, err := s.uploadImages(ctx, userID, images)
	if err != nil {
		return nil, err
	}

	status := models.ProjectStatus(form.Status)
	if status == "" {
		status = models.ProjectStatusOpen
	}

	project := &models.Project{
		Name:        profile.Firstname,
		Title:       strings.TrimSpace(form.Title),
		Description: strings.TrimSpace(form.Description),
		OwnerID:     userID,
		Status:      status,
	}
	project.SetProjectTechStack(form.ProjectTechStack)
	project.SetSkillsNeeded(form.SkillsNeeded)
	project.SetReferenceLinks(form.ReferenceLinks)
	project.SetImages(imageURLs)
	project.SetCollaborators(nil)

	if err := s.projectRepo.Create(db, project); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return dto.NewProjectResponse(project), nil
}

func (s *ProjectServiceImpl) Update(ctx context.Context, db *gorm.DB, userID, projectID string, form *dto.ProjectForm, images []dto.ImageUpload) (*dto.ProjectResponse, error) {
	profile, err := s.requireProfile(db, userID)
	if err != nil {
		return nil, err
	}

	project, err := s.requireProject(db, projectID)
	if err != nil {
		return nil, err
	}
	if project.OwnerID != userID {
		return nil, apperrors.ErrNotProjectOwner
	}

	if err := s.checkImages(images); err != nil {
		return nil, err
	}
	uploaded, err := s.uploadImages(ctx, userID, images)
	if err != nil {
		return nil, err
	}

	// The client sends back the image URLs it kept; anything else is
	// dropped from the document. Freshly uploaded images are appended.
	imageURLs := append(append([]string{}, form.ExistingImages...), uploaded...)

	status := models.ProjectStatus(form.Status)
	if status == "" {
		status = project.Status
	}

	project.Name = profile.Firstname
	project.Title = strings.TrimSpace(form.Title)
	project.Description = strings.TrimSpace(form.Description)
	project.Status = status
	project.SetProjectTechStack(form.ProjectTechStack)
	project.SetSkillsNeeded(form.SkillsNeeded)
	project.SetReferenceLinks(form.ReferenceLinks)
	project.SetImages(imageURLs)

	if err := s.projectRepo.Update(db, project); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return dto.NewProjectResponse(project), nil
}

func (s *ProjectServiceImpl) GetAll(db *gorm.DB, userID string) ([]*dto.ProjectResponse, error) {
	if _, err := s.requireProfile(db, userID); err != nil {
		return nil, err
	}

	projects, err := s.projectRepo.FindExcludingOwner(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewProjectResponses(projects), nil
}

func (s *ProjectServiceImpl) Search(db *gorm.DB, userID, query string) ([]*dto.ProjectResponse, error) {
	if _, err := s.requireProfile(db, userID); err != nil {
		return nil, err
	}

	projects, err := s.projectRepo.Search(db, userID, query)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewProjectResponses(projects), nil
}

func (s *ProjectServiceImpl) GetMine(db *gorm.DB, userID string) ([]*dto.ProjectResponse, error) {
	projects, err := s.projectRepo.FindByOwner(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if len(projects) == 0 {
		return nil, apperrors.New(apperrors.CodeNotFound, "project",
			"No projects found for this user.", http.StatusNotFound)
	}
	return dto.NewProjectResponses(projects), nil
}

func (s *ProjectServiceImpl) GetByID(db *gorm.DB, userID, projectID string) (*dto.ProjectResponse, error) {
	project, err := s.projectRepo.FindByIDWithRequests(db, projectID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProjectNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if project.OwnerID != userID {
		return nil, apperrors.NewForbiddenError("You are not authorized to view this project.")
	}
	return dto.NewProjectResponse(project), nil
}

func (s *ProjectServiceImpl) requireProfile(db *gorm.DB, userID string) (*models.UserProfile, error) {
	profile, err := s.profileRepo.FindByUserID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

func (s *ProjectServiceImpl) requireProject(db *gorm.DB, projectID string) (*models.Project, error) {
	project, err := s.projectRepo.FindByID(db, projectID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProjectNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return project, nil
}

func (s *ProjectServiceImpl) checkImages(images []dto.ImageUpload) error {
	for _, img := range images {
		if img.Size > s.limits.MaxSize {
			return apperrors.NewBadRequestError(
				fmt.Sprintf("Image %s exceeds the %d byte size limit", img.Filename, s.limits.MaxSize))
		}
		if !s.allowedType(img.ContentType) {
			return apperrors.NewBadRequestError("Only image files are allowed")
		}
	}
	return nil
}

func (s *ProjectServiceImpl) allowedType(contentType string) bool {
	for _, allowed := range s.limits.AllowedTypes {
		if contentType == allowed {
			return true
		}
	}
	return false
}

// uploadImages pushes all images to the object store concurrently. All
// uploads must succeed before the project document is written; on any
// failure the keys uploaded so far are deleted best-effort so the bucket
// does not accumulate orphans.
func (s *ProjectServiceImpl) uploadImages(ctx context.Context, userID string, images []dto.ImageUpload) ([]string, error) {
	if len(images) == 0 {
		return nil, nil
	}

	keys := make([]string, len(images))
	urls := make([]string, len(images))
	var mu sync.Mutex
	var uploaded []string

	g, gctx := errgroup.WithContext(ctx)
	for i, img := range images {
		i, img := i, img
		keys[i] = fmt.Sprintf("projects/%s/%d-%s", userID, time.Now().UnixNano(), sanitizeFilename(img.Filename))

		g.Go(func() error {
			file, err := img.Open()
			if err != nil {
				return fmt.Errorf("open upload %s: %w", img.Filename, err)
			}
			defer file.Close()

			if err := s.storage.Save(gctx, keys[i], file, img.ContentType); err != nil {
				return err
			}

			mu.Lock()
			uploaded = append(uploaded, keys[i])
			mu.Unlock()
			urls[i] = s.storage.URL(keys[i])
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		s.cleanupUploads(uploaded)
		return nil, apperrors.UpstreamError(err, "Failed to upload images to object storage.")
	}

	return urls, nil
}

func (s *ProjectServiceImpl) cleanupUploads(keys []string) {
	// Separate context: the request is failing, cleanup still should run.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	for _, key := range keys {
		if err := s.storage.Delete(ctx, key); err != nil {
			logger.Warn("Failed to clean up uploaded image", "key", key, "error", err)
		}
	}
}

func sanitizeFilename(name string) string {
	return strings.ReplaceAll(strings.TrimSpace(name), " ", "-")
}
