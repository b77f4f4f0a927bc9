package models

// User is created on first successful Google sign-up and never changes
// afterwards. Everything user-facing lives on UserProfile.
type User struct {
	BaseModel
	Email string `gorm:"uniqueIndex;not null" json:"email"`

	// Relations
	Profile *UserProfile `gorm:"foreignKey:UserID" json:"profile,omitempty"`
}
