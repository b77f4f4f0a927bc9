package dto

import (
	"time"

	"collabmate_backend/internal/models"
)

type ExperienceEntry struct {
	CompanyName string `json:"companyName" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
}

type SocialLinks struct {
	Github   string `json:"github,omitempty" validate:"omitempty,url"`
	Linkedin string `json:"linkedin,omitempty" validate:"omitempty,url"`
}

type CreateProfileRequest struct {
	Firstname   string            `json:"firstname" validate:"required"`
	Lastname    string            `json:"lastname" validate:"required"`
	Bio         string            `json:"bio" validate:"max=300"`
	SocialLinks *SocialLinks      `json:"socialLinks,omitempty"`
	Skills      []string          `json:"skills" validate:"required,min=1,dive,notblank"`
	CollegeName string            `json:"collegeName" validate:"required"`
	Experience  []ExperienceEntry `json:"experience,omitempty" validate:"omitempty,dive"`
}

// UpdateProfileRequest uses pointers so the service can tell "field absent"
// from "field set to zero value": absent fields keep their stored value
// (shallow merge), present fields replace it and the merged document is
// re-validated.
type UpdateProfileRequest struct {
	Firstname   *string            `json:"firstname,omitempty"`
	Lastname    *string            `json:"lastname,omitempty"`
	Bio         *string            `json:"bio,omitempty"`
	SocialLinks *SocialLinks       `json:"socialLinks,omitempty"`
	Skills      *[]string          `json:"skills,omitempty"`
	CollegeName *string            `json:"collegeName,omitempty"`
	Experience  *[]ExperienceEntry `json:"experience,omitempty"`
}

type ProfileResponse struct {
	ID          string            `json:"id"`
	UserID      string            `json:"userId"`
	Firstname   string            `json:"firstname"`
	Lastname    string            `json:"lastname"`
	Email       string            `json:"email"`
	Bio         string            `json:"bio"`
	SocialLinks *SocialLinks      `json:"socialLinks,omitempty"`
	Skills      []string          `json:"skills"`
	CollegeName string            `json:"collegeName"`
	Experience  []ExperienceEntry `json:"experience"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

// NewProfileResponse maps the stored profile to its API shape.
func NewProfileResponse(p *models.UserProfile) *ProfileResponse {
	resp := &ProfileResponse{
		ID:          p.ID,
		UserID:      p.UserID,
		Firstname:   p.Firstname,
		Lastname:    p.Lastname,
		Email:       p.Email,
		Bio:         p.Bio,
		Skills:      p.GetSkills(),
		CollegeName: p.CollegeName,
		Experience:  []ExperienceEntry{},
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if resp.Skills == nil {
		resp.Skills = []string{}
	}
	if p.GithubURL != "" || p.LinkedinURL != "" {
		resp.SocialLinks = &SocialLinks{Github: p.GithubURL, Linkedin: p.LinkedinURL}
	}
	for _, exp := range p.GetExperience() {
		resp.Experience = append(resp.Experience, ExperienceEntry{
			CompanyName: exp.CompanyName,
			Title:       exp.Title,
			Description: exp.Description,
		})
	}
	return resp
}
