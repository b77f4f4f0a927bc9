package apperrors

import "net/http"

// Predeclared domain errors. Messages match what the API has always
// returned, so clients keying on them keep working.
var (
	// Auth
	ErrNoToken      = New(CodeUnauthorized, "auth", "No token provided or incorrect format", http.StatusForbidden)
	ErrInvalidToken = New(CodeInvalidToken, "auth", "Invalid token", http.StatusForbidden)

	// Users and profiles
	ErrUserNotFound         = New(CodeNotFound, "user", "User not found", http.StatusNotFound)
	ErrAccountExists        = New(CodeDuplicateAction, "user", "Account already present. Please try to signin", http.StatusBadRequest)
	ErrAccountMissing       = New(CodeNotFound, "user", "User not found. Please sign up first.", http.StatusBadRequest)
	ErrProfileNotFound      = New(CodeNotFound, "profile", "Profile not found", http.StatusNotFound)
	ErrProfileAlreadyExists = New(CodeDuplicateAction, "profile", "Profile already exists for this user", http.StatusBadRequest)

	// Projects
	ErrProjectNotFound = New(CodeNotFound, "project", "Project not found", http.StatusNotFound)
	ErrNotProjectOwner = New(CodeForbidden, "project", "You are not authorized to modify this project", http.StatusForbidden)

	// Swipes and bookmarks
	ErrDuplicateSwipe    = New(CodeDuplicateAction, "swipe", "You have already swiped on this project.", http.StatusBadRequest)
	ErrDuplicateBookmark = New(CodeDuplicateAction, "bookmark", "Project already bookmarked.", http.StatusBadRequest)
	ErrBookmarkNotFound  = New(CodeNotFound, "bookmark", "Bookmark not found.", http.StatusNotFound)

	// Collaboration workflow
	ErrDuplicateRequest = New(CodeDuplicateAction, "collaboration", "Collaboration request already sent", http.StatusBadRequest)
	ErrRequestNotFound  = New(CodeNotFound, "collaboration", "Collaboration request not found", http.StatusNotFound)
	ErrNotRequestOwner  = New(CodeForbidden, "collaboration", "You are not authorized to respond to this request", http.StatusForbidden)
)

// ErrNotFound wraps a repository miss (gorm.ErrRecordNotFound and friends)
// into a generic 404.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrDuplicate wraps a uniqueness violation into a DuplicateAction error.
func ErrDuplicate(err error, domain, message string) *AppError {
	return Wrap(err, CodeDuplicateAction, domain, message, http.StatusBadRequest)
}
