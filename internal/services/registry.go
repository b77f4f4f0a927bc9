package services

import (
	"collabmate_backend/internal/auth"
	"collabmate_backend/internal/email"
	"collabmate_backend/internal/identity"
	"collabmate_backend/internal/repositories"
	"collabmate_backend/internal/storage"
	"collabmate_backend/internal/validator"
)

// ServiceContainer holds every service of the application.
type ServiceContainer struct {
	AuthService          AuthService
	ProfileService       ProfileService
	ProjectService       ProjectService
	FeedService          FeedService
	SwipeService         SwipeService
	BookmarkService      BookmarkService
	CollaborationService CollaborationService
}

// Dependencies are the external collaborators the services are built from.
type Dependencies struct {
	Verifier  identity.Verifier
	Tokens    *auth.TokenManager
	Storage   storage.Storage
	Mailer    email.Provider
	Validator *validator.Validator
	Limits    UploadLimits
}

func NewServiceContainer(deps Dependencies) *ServiceContainer {
	userRepo := repositories.NewUserRepository()
	profileRepo := repositories.NewProfileRepository()
	projectRepo := repositories.NewProjectRepository()
	swipeRepo := repositories.NewSwipeRepository()
	bookmarkRepo := repositories.NewBookmarkRepository()
	collabRepo := repositories.NewCollaborationRepository()

	return &ServiceContainer{
		AuthService:          NewAuthService(deps.Verifier, userRepo, deps.Tokens),
		ProfileService:       NewProfileService(profileRepo, userRepo, deps.Validator),
		ProjectService:       NewProjectService(projectRepo, profileRepo, deps.Storage, deps.Limits),
		FeedService:          NewFeedService(projectRepo, profileRepo, swipeRepo),
		SwipeService:         NewSwipeService(swipeRepo, projectRepo),
		BookmarkService:      NewBookmarkService(bookmarkRepo, projectRepo, profileRepo),
		CollaborationService: NewCollaborationService(collabRepo, projectRepo, profileRepo, userRepo, deps.Mailer),
	}
}
