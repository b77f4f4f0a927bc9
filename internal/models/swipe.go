package models

// Swipe is an append-only record of a user's like/dislike decision on a
// project. The composite unique index makes "at most one swipe per
// (user, project)" a database guarantee, not just a pre-insert check.
type Swipe struct {
	BaseModel
	UserID    string      `gorm:"type:uuid;not null;uniqueIndex:idx_swipes_user_project" json:"userId"`
	ProjectID string      `gorm:"type:uuid;not null;uniqueIndex:idx_swipes_user_project" json:"projectId"`
	Action    SwipeAction `gorm:"type:varchar(10);not null" json:"action"`
}
