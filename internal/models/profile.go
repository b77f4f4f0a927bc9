package models

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// Experience is one entry in a profile's work history, stored as jsonb.
type Experience struct {
	CompanyName string `json:"companyName"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type UserProfile struct {
	BaseModel
	UserID      string         `gorm:"type:uuid;uniqueIndex;not null" json:"userId"`
	Firstname   string         `gorm:"not null" json:"firstname"`
	Lastname    string         `gorm:"not null" json:"lastname"`
	Email       string         `gorm:"uniqueIndex;not null" json:"email"`
	Bio         string         `gorm:"size:300" json:"bio"`
	GithubURL   string         `json:"github,omitempty"`
	LinkedinURL string         `json:"linkedin,omitempty"`
	Skills      datatypes.JSON `gorm:"type:jsonb" json:"skills"`     // ["Go", "React"]
	CollegeName string         `gorm:"not null" json:"collegeName"`
	Experience  datatypes.JSON `gorm:"type:jsonb" json:"experience"` // []Experience
}

// GetSkills returns the profile's skills as a string slice.
func (p *UserProfile) GetSkills() []string {
	var skills []string
	if len(p.Skills) > 0 {
		_ = json.Unmarshal(p.Skills, &skills)
	}
	return skills
}

// SetSkills stores the skills slice as jsonb.
func (p *UserProfile) SetSkills(skills []string) {
	data, _ := json.Marshal(skills)
	p.Skills = datatypes.JSON(data)
}

// GetExperience returns the work history entries.
func (p *UserProfile) GetExperience() []Experience {
	var experience []Experience
	if len(p.Experience) > 0 {
		_ = json.Unmarshal(p.Experience, &experience)
	}
	return experience
}

// SetExperience stores the work history as jsonb.
func (p *UserProfile) SetExperience(experience []Experience) {
	data, _ := json.Marshal(experience)
	p.Experience = datatypes.JSON(data)
}
