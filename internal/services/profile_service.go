package services

import (
	"gorm.io/gorm"

	"collabmate_backend/internal/models"
	"collabmate_backend/internal/repositories"
	"collabmate_backend/internal/services/dto"
	"collabmate_backend/internal/validator"
	"collabmate_backend/pkg/apperrors"
)

type ProfileService interface {
	Create(db *gorm.DB, userID string, req *dto.CreateProfileRequest) (*dto.ProfileResponse, error)
	Get(db *gorm.DB, userID string) (*dto.ProfileResponse, error)

	// Update performs a shallow merge of the provided fields over the
	// stored profile and re-validates the merged document before saving.
	Update(db *gorm.DB, userID string, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
}

type ProfileServiceImpl struct {
	profileRepo repositories.ProfileRepository
	userRepo    repositories.UserRepository
	validator   *validator.Validator
}

func NewProfileService(profileRepo repositories.ProfileRepository, userRepo repositories.UserRepository, v *validator.Validator) ProfileService {
	return &ProfileServiceImpl{
		profileRepo: profileRepo,
		userRepo:    userRepo,
		validator:   v,
	}
}

func (s *ProfileServiceImpl) Create(db *gorm.DB, userID string, req *dto.CreateProfileRequest) (*dto.ProfileResponse, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	profile := &models.UserProfile{
		UserID:      userID,
		Firstname:   req.Firstname,
		Lastname:    req.Lastname,
		Email:       user.Email, // always the verified signup email
		Bio:         req.Bio,
		CollegeName: req.CollegeName,
	}
	if req.SocialLinks != nil {
		profile.GithubURL = req.SocialLinks.Github
		profile.LinkedinURL = req.SocialLinks.Linkedin
	}
	profile.SetSkills(req.Skills)
	profile.SetExperience(experienceModels(req.Experience))

	if err := s.profileRepo.Create(db, profile); err != nil {
		if apperrors.Is(err, repositories.ErrProfileAlreadyExists) {
			return nil, apperrors.ErrProfileAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	return dto.NewProfileResponse(profile), nil
}

func (s *ProfileServiceImpl) Get(db *gorm.DB, userID string) (*dto.ProfileResponse, error) {
	if _, err := s.userRepo.FindByID(db, userID); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	profile, err := s.profileRepo.FindByUserID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	return dto.NewProfileResponse(profile), nil
}

func (s *ProfileServiceImpl) Update(db *gorm.DB, userID string, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	profile, err := s.profileRepo.FindByUserID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	merged := s.mergedRequest(profile, req)
	if err := s.validator.Validate(merged); err != nil {
		if vErr, ok := err.(*validator.ValidationError); ok {
			return nil, apperrors.ValidationError(vErr.Errors)
		}
		return nil, apperrors.InternalError(err)
	}

	profile.Firstname = merged.Firstname
	profile.Lastname = merged.Lastname
	profile.Bio = merged.Bio
	profile.CollegeName = merged.CollegeName
	if merged.SocialLinks != nil {
		profile.GithubURL = merged.SocialLinks.Github
		profile.LinkedinURL = merged.SocialLinks.Linkedin
	} else {
		profile.GithubURL = ""
		profile.LinkedinURL = ""
	}
	profile.SetSkills(merged.Skills)
	profile.SetExperience(experienceModels(merged.Experience))

	if err := s.profileRepo.Update(db, profile); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return dto.NewProfileResponse(profile), nil
}

// mergedRequest overlays the update's provided fields on the stored state,
// producing a full create-shaped document for re-validation. A field the
// caller did not send keeps its stored value, so a partial update can never
// drop a required field.
func (s *ProfileServiceImpl) mergedRequest(profile *models.UserProfile, req *dto.UpdateProfileRequest) *dto.CreateProfileRequest {
	merged := &dto.CreateProfileRequest{
		Firstname:   profile.Firstname,
		Lastname:    profile.Lastname,
		Bio:         profile.Bio,
		Skills:      profile.GetSkills(),
		CollegeName: profile.CollegeName,
		Experience:  experienceEntries(profile.GetExperience()),
	}
	if profile.GithubURL != "" || profile.LinkedinURL != "" {
		merged.SocialLinks = &dto.SocialLinks{Github: profile.GithubURL, Linkedin: profile.LinkedinURL}
	}

	if req.Firstname != nil {
		merged.Firstname = *req.Firstname
	}
	if req.Lastname != nil {
		merged.Lastname = *req.Lastname
	}
	if req.Bio != nil {
		merged.Bio = *req.Bio
	}
	if req.SocialLinks != nil {
		merged.SocialLinks = req.SocialLinks
	}
	if req.Skills != nil {
		merged.Skills = *req.Skills
	}
	if req.CollegeName != nil {
		merged.CollegeName = *req.CollegeName
	}
	if req.Experience != nil {
		merged.Experience = *req.Experience
	}

	return merged
}

func experienceModels(entries []dto.ExperienceEntry) []models.Experience {
	experience := make([]models.Experience, 0, len(entries))
	for _, e := range entries {
		experience = append(experience, models.Experience{
			CompanyName: e.CompanyName,
			Title:       e.Title,
			Description: e.Description,
		})
	}
	return experience
}

func experienceEntries(experience []models.Experience) []dto.ExperienceEntry {
	entries := make([]dto.ExperienceEntry, 0, len(experience))
	for _, e := range experience {
		entries = append(entries, dto.ExperienceEntry{
			CompanyName: e.CompanyName,
			Title:       e.Title,
			Description: e.Description,
		})
	}
	return entries
}
