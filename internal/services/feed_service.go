package services

import (
	"net/http"

	"gorm.io/gorm"

	"collabmate_backend/internal/models"
	"collabmate_backend/internal/repositories"
	"collabmate_backend/internal/services/dto"
	"collabmate_backend/pkg/apperrors"
)

type FeedService interface {
	// GetFeed returns projects the user has not swiped on yet whose
	// skillsNeeded intersect the user's skills.
	GetFeed(db *gorm.DB, userID string) (*dto.FeedResponse, error)
}

type FeedServiceImpl struct {
	projectRepo repositories.ProjectRepository
	profileRepo repositories.ProfileRepository
	swipeRepo   repositories.SwipeRepository
}

func NewFeedService(projectRepo repositories.ProjectRepository, profileRepo repositories.ProfileRepository, swipeRepo repositories.SwipeRepository) FeedService {
	return &FeedServiceImpl{
		projectRepo: projectRepo,
		profileRepo: profileRepo,
		swipeRepo:   swipeRepo,
	}
}

func (s *FeedServiceImpl) GetFeed(db *gorm.DB, userID string) (*dto.FeedResponse, error) {
	profile, err := s.profileRepo.FindByUserID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	swipes, err := s.swipeRepo.FindByUser(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	excluded := make([]string, 0, len(swipes))
	for _, swipe := range swipes {
		excluded = append(excluded, swipe.ProjectID)
	}

	candidates, err := s.projectRepo.FindFeedCandidates(db, userID, excluded)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	matched := filterBySkillMatch(candidates, profile.GetSkills())
	if len(matched) == 0 {
		return nil, apperrors.New(apperrors.CodeNotFound, "feed",
			"No new projects available for you.", http.StatusNotFound).
			WithDetails(map[string]any{"recommendations": dto.FeedRecommendations})
	}

	return &dto.FeedResponse{
		ProjectCount: len(matched),
		Projects:     dto.NewProjectResponses(matched),
	}, nil
}

// filterBySkillMatch keeps projects needing at least one of the user's
// skills. Skills are compared verbatim and no ranking is applied, so the
// repository's ordering carries through.
func filterBySkillMatch(projects []models.Project, skills []string) []models.Project {
	skillSet := make(map[string]struct{}, len(skills))
	for _, skill := range skills {
		skillSet[skill] = struct{}{}
	}

	var matched []models.Project
	for _, project := range projects {
		for _, needed := range project.GetSkillsNeeded() {
			if _, ok := skillSet[needed]; ok {
				matched = append(matched, project)
				break
			}
		}
	}
	return matched
}
