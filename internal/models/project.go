package models

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// Project is the aggregate users swipe on and collaborate around. Array
// fields are jsonb; collaboration requests live in their own table keyed by
// (project_id, user_id) so duplicates and concurrent responses are rejected
// by the database rather than by an in-array scan.
type Project struct {
	BaseModel
	Name             string         `gorm:"not null" json:"name"` // owner's firstname, denormalized
	Title            string         `gorm:"size:100;not null" json:"title"`
	Description      string         `gorm:"size:1000;not null" json:"description"`
	ProjectTechStack datatypes.JSON `gorm:"type:jsonb" json:"projectTechStack"`
	SkillsNeeded     datatypes.JSON `gorm:"type:jsonb" json:"skillsNeeded"`
	ReferenceLinks   datatypes.JSON `gorm:"type:jsonb" json:"referenceLinks"`
	Images           datatypes.JSON `gorm:"type:jsonb" json:"images"`
	OwnerID          string         `gorm:"type:uuid;not null;index" json:"ownerId"`
	Status           ProjectStatus  `gorm:"type:varchar(20);default:'open'" json:"status"`
	Collaborators    datatypes.JSON `gorm:"type:jsonb" json:"collaborators"` // accepted user ids

	// Relations
	CollaborationRequests []CollaborationRequest `gorm:"foreignKey:ProjectID" json:"collaborationRequests"`
}

// CollaborationRequest tracks one user's ask to join one project.
// pending -> accepted | rejected; both end states are terminal.
type CollaborationRequest struct {
	BaseModel
	ProjectID string        `gorm:"type:uuid;not null;uniqueIndex:idx_collab_project_user" json:"projectId"`
	UserID    string        `gorm:"type:uuid;not null;uniqueIndex:idx_collab_project_user" json:"userId"`
	Status    RequestStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
}

func jsonStrings(raw datatypes.JSON) []string {
	var values []string
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &values)
	}
	return values
}

func toJSON(values []string) datatypes.JSON {
	if values == nil {
		values = []string{}
	}
	data, _ := json.Marshal(values)
	return datatypes.JSON(data)
}

func (p *Project) GetProjectTechStack() []string { return jsonStrings(p.ProjectTechStack) }
func (p *Project) GetSkillsNeeded() []string     { return jsonStrings(p.SkillsNeeded) }
func (p *Project) GetReferenceLinks() []string   { return jsonStrings(p.ReferenceLinks) }
func (p *Project) GetImages() []string           { return jsonStrings(p.Images) }
func (p *Project) GetCollaborators() []string    { return jsonStrings(p.Collaborators) }

func (p *Project) SetProjectTechStack(v []string) { p.ProjectTechStack = toJSON(v) }
func (p *Project) SetSkillsNeeded(v []string)     { p.SkillsNeeded = toJSON(v) }
func (p *Project) SetReferenceLinks(v []string)   { p.ReferenceLinks = toJSON(v) }
func (p *Project) SetImages(v []string)           { p.Images = toJSON(v) }
func (p *Project) SetCollaborators(v []string)    { p.Collaborators = toJSON(v) }

// HasCollaborator reports whether the user is already on the project.
func (p *Project) HasCollaborator(userID string) bool {
	for _, id := range p.GetCollaborators() {
		if id == userID {
			return true
		}
	}
	return false
}
