package handlers

import (
	"collabmate_backend/internal/services"
	"collabmate_backend/internal/validator"
)

// AppHandlers holds every handler of the application.
type AppHandlers struct {
	AuthHandler          *AuthHandler
	ProfileHandler       *ProfileHandler
	ProjectHandler       *ProjectHandler
	FeedHandler          *FeedHandler
	SwipeHandler         *SwipeHandler
	BookmarkHandler      *BookmarkHandler
	CollaborationHandler *CollaborationHandler
	HealthHandler        *HealthHandler
}

func NewAppHandlers(svcs *services.ServiceContainer, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		AuthHandler:          NewAuthHandler(base, svcs.AuthService),
		ProfileHandler:       NewProfileHandler(base, svcs.ProfileService),
		ProjectHandler:       NewProjectHandler(base, svcs.ProjectService),
		FeedHandler:          NewFeedHandler(base, svcs.FeedService),
		SwipeHandler:         NewSwipeHandler(base, svcs.SwipeService),
		BookmarkHandler:      NewBookmarkHandler(base, svcs.BookmarkService),
		CollaborationHandler: NewCollaborationHandler(base, svcs.CollaborationService),
		HealthHandler:        NewHealthHandler(),
	}
}
