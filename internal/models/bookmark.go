package models

// Bookmark marks a project a user saved for later. Unique per
// (user, project), same as Swipe.
type Bookmark struct {
	BaseModel
	UserID    string `gorm:"type:uuid;not null;uniqueIndex:idx_bookmarks_user_project" json:"userId"`
	ProjectID string `gorm:"type:uuid;not null;uniqueIndex:idx_bookmarks_user_project" json:"projectId"`
}
