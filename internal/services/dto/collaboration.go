package dto

// RespondToRequest is the owner's decision on a pending request.
type RespondToRequest struct {
	RequestingUserID string `json:"requestingUserId" validate:"required"`
	Response         string `json:"response" validate:"required,oneof=accept reject"`
}

// CollaborationRequestItem is one row of the owner's flattened request
// listing: every request across all their projects, joined to the
// candidate's profile. Includes non-pending entries for history.
type CollaborationRequestItem struct {
	ProjectID     string           `json:"projectId"`
	ProjectTitle  string           `json:"projectTitle"`
	UserProfile   *ProfileResponse `json:"userProfile"`
	RequestStatus string           `json:"requestStatus"`
}

// ChatUser is a chat-eligible counterpart: an accepted collaborator on one
// of the caller's projects, or the owner of a project the caller joined.
type ChatUser struct {
	UserID string `json:"userId"`
	Name   string `json:"name"`
	Role   string `json:"role"` // owner | collaborator
}

// FeedResponse is the swipe feed: projects matching the user's skills that
// they neither own nor have swiped on.
type FeedResponse struct {
	ProjectCount int                `json:"projectCount"`
	Projects     []*ProjectResponse `json:"projects"`
}

// FeedRecommendations is the advisory payload for an empty feed.
var FeedRecommendations = []string{
	"Expand your skill set",
	"Adjust your profile skills",
	"Create a project with your current skills",
}
