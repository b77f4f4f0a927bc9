package dto

import (
	"mime/multipart"
	"time"

	"collabmate_backend/internal/models"
)

// ProjectForm is bound from multipart form data; array values arrive as
// repeated fields, images as file parts.
type ProjectForm struct {
	Title            string   `form:"title" validate:"required,max=100"`
	Description      string   `form:"description" validate:"required,max=1000"`
	ProjectTechStack []string `form:"projectTechStack" validate:"required,min=1,dive,notblank"`
	SkillsNeeded     []string `form:"skillsNeeded" validate:"required,min=1,dive,notblank"`
	ReferenceLinks   []string `form:"referenceLinks" validate:"omitempty,dive,notblank"`
	Status           string   `form:"status" validate:"omitempty,is-project-status"`

	// ExistingImages is only meaningful on update: the image URLs the user
	// kept in the UI. Anything not listed is dropped from the document.
	ExistingImages []string `form:"existingImages"`
}

// ImageUpload is one file part of a multipart project create/update.
type ImageUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Open        func() (multipart.File, error)
}

type CollaborationRequestEntry struct {
	UserID string `json:"userId"`
	Status string `json:"status"`
}

type ProjectResponse struct {
	ID                    string                      `json:"id"`
	Name                  string                      `json:"name"`
	Title                 string                      `json:"title"`
	Description           string                      `json:"description"`
	ProjectTechStack      []string                    `json:"projectTechStack"`
	SkillsNeeded          []string                    `json:"skillsNeeded"`
	ReferenceLinks        []string                    `json:"referenceLinks"`
	Images                []string                    `json:"images"`
	OwnerID               string                      `json:"ownerId"`
	Status                string                      `json:"status"`
	CollaborationRequests []CollaborationRequestEntry `json:"collaborationRequests"`
	Collaborators         []string                    `json:"collaborators"`
	CreatedAt             time.Time                   `json:"createdAt"`
	UpdatedAt             time.Time                   `json:"updatedAt"`
}

// NewProjectResponse maps the stored project to its API shape.
func NewProjectResponse(p *models.Project) *ProjectResponse {
	resp := &ProjectResponse{
		ID:                    p.ID,
		Name:                  p.Name,
		Title:                 p.Title,
		Description:           p.Description,
		ProjectTechStack:      orEmpty(p.GetProjectTechStack()),
		SkillsNeeded:          orEmpty(p.GetSkillsNeeded()),
		ReferenceLinks:        orEmpty(p.GetReferenceLinks()),
		Images:                orEmpty(p.GetImages()),
		OwnerID:               p.OwnerID,
		Status:                string(p.Status),
		CollaborationRequests: []CollaborationRequestEntry{},
		Collaborators:         orEmpty(p.GetCollaborators()),
		CreatedAt:             p.CreatedAt,
		UpdatedAt:             p.UpdatedAt,
	}
	for _, req := range p.CollaborationRequests {
		resp.CollaborationRequests = append(resp.CollaborationRequests, CollaborationRequestEntry{
			UserID: req.UserID,
			Status: string(req.Status),
		})
	}
	return resp
}

// NewProjectResponses maps a result set.
func NewProjectResponses(projects []models.Project) []*ProjectResponse {
	responses := make([]*ProjectResponse, 0, len(projects))
	for i := range projects {
		responses = append(responses, NewProjectResponse(&projects[i]))
	}
	return responses
}

func orEmpty(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
