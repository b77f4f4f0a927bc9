package dto

// CreateSwipeRequest records a like/dislike decision on a project.
type CreateSwipeRequest struct {
	ProjectID string `json:"projectId" validate:"required"`
	Action    string `json:"action" validate:"required,is-swipe-action"`
}

// AddBookmarkRequest saves a project for later.
type AddBookmarkRequest struct {
	ProjectID string `json:"projectId" validate:"required"`
}
