package services

import (
	"context"
	"net/http"

	"gorm.io/gorm"

	"collabmate_backend/internal/email"
	"collabmate_backend/internal/logger"
	"collabmate_backend/internal/models"
	"collabmate_backend/internal/repositories"
	"collabmate_backend/internal/services/dto"
	"collabmate_backend/pkg/apperrors"
)

type CollaborationService interface {
	// Send records a pending request from userID to join the project and
	// notifies the owner by email.
	Send(ctx context.Context, db *gorm.DB, userID, projectID string) error

	// Respond resolves a pending request. Accepting adds the candidate to
	// the project's collaborator list; both outcomes are terminal.
	Respond(ctx context.Context, db *gorm.DB, ownerID, projectID string, req *dto.RespondToRequest) (string, error)

	// ListRequests flattens every request across the owner's projects.
	ListRequests(db *gorm.DB, ownerID string) ([]dto.CollaborationRequestItem, error)

	// ListChatUsers returns the people the caller can chat with: accepted
	// collaborators on their projects and owners of projects they joined.
	ListChatUsers(db *gorm.DB, userID string) ([]dto.ChatUser, error)
}

type CollaborationServiceImpl struct {
	collabRepo  repositories.CollaborationRepository
	projectRepo repositories.ProjectRepository
	profileRepo repositories.ProfileRepository
	userRepo    repositories.UserRepository
	mailer      email.Provider

	// runInTx wraps the accept/reject write pair. Overridable in tests
	// that run against repository fakes instead of a live database.
	runInTx func(db *gorm.DB, fn func(tx *gorm.DB) error) error
}

func NewCollaborationService(
	collabRepo repositories.CollaborationRepository,
	projectRepo repositories.ProjectRepository,
	profileRepo repositories.ProfileRepository,
	userRepo repositories.UserRepository,
	mailer email.Provider,
) CollaborationService {
	return &CollaborationServiceImpl{
		collabRepo:  collabRepo,
		projectRepo: projectRepo,
		profileRepo: profileRepo,
		userRepo:    userRepo,
		mailer:      mailer,
		runInTx: func(db *gorm.DB, fn func(tx *gorm.DB) error) error {
			return db.Transaction(fn)
		},
	}
}

func (s *CollaborationServiceImpl) Send(ctx context.Context, db *gorm.DB, userID, projectID string) error {
	if err := s.requireProfile(db, userID); err != nil {
		return err
	}

	project, err := s.projectRepo.FindByID(db, projectID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProjectNotFound) {
			return apperrors.ErrProjectNotFound
		}
		return apperrors.InternalError(err)
	}
	if project.OwnerID == userID {
		return apperrors.NewBadRequestError("You cannot request to collaborate on your own project.")
	}
	if project.HasCollaborator(userID) {
		return apperrors.NewBadRequestError("You are already a collaborator on this project.")
	}

	request := &models.CollaborationRequest{
		ProjectID: projectID,
		UserID:    userID,
		Status:    models.RequestStatusPending,
	}
	if err := s.collabRepo.Create(db, request); err != nil {
		if apperrors.Is(err, repositories.ErrDuplicateRequest) {
			return apperrors.ErrDuplicateRequest
		}
		return apperrors.InternalError(err)
	}

	s.notifyOwner(ctx, db, project, userID)
	return nil
}

func (s *CollaborationServiceImpl) Respond(ctx context.Context, db *gorm.DB, ownerID, projectID string, req *dto.RespondToRequest) (string, error) {
	if err := s.requireProfile(db, ownerID); err != nil {
		return "", err
	}

	project, err := s.projectRepo.FindByID(db, projectID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProjectNotFound) {
			return "", apperrors.ErrProjectNotFound
		}
		return "", apperrors.InternalError(err)
	}
	if project.OwnerID != ownerID {
		return "", apperrors.ErrNotRequestOwner
	}

	accepted := req.Response == "accept"
	status := models.RequestStatusRejected
	if accepted {
		status = models.RequestStatusAccepted
	}

	err = s.runInTx(db, func(tx *gorm.DB) error {
		if err := s.collabRepo.TransitionFromPending(tx, projectID, req.RequestingUserID, status); err != nil {
			return err
		}
		if !accepted {
			return nil
		}

		// Re-read inside the transaction so two concurrent accepts on
		// different requests both land in the collaborator list.
		current, err := s.projectRepo.FindByID(tx, projectID)
		if err != nil {
			return err
		}
		if current.HasCollaborator(req.RequestingUserID) {
			return nil
		}
		current.SetCollaborators(append(current.GetCollaborators(), req.RequestingUserID))
		return s.projectRepo.Update(tx, current)
	})
	if err != nil {
		if apperrors.Is(err, repositories.ErrRequestNotPending) {
			return "", apperrors.New(apperrors.CodeNotFound, "collaboration",
				"No pending collaboration request found for this user.", http.StatusNotFound)
		}
		return "", apperrors.InternalError(err)
	}

	s.notifyCandidate(ctx, db, project, req.RequestingUserID, accepted)

	if accepted {
		return "Collaboration request accepted.", nil
	}
	return "Collaboration request rejected.", nil
}

func (s *CollaborationServiceImpl) ListRequests(db *gorm.DB, ownerID string) ([]dto.CollaborationRequestItem, error) {
	projects, err := s.projectRepo.FindWithRequestsByOwner(db, ownerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	userIDs := make([]string, 0)
	for _, project := range projects {
		for _, request := range project.CollaborationRequests {
			userIDs = append(userIDs, request.UserID)
		}
	}
	if len(userIDs) == 0 {
		return nil, apperrors.New(apperrors.CodeNotFound, "collaboration",
			"No collaboration requests found for your projects.", http.StatusNotFound)
	}

	profiles, err := s.profileRepo.FindByUserIDs(db, userIDs)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	profileByUser := make(map[string]*models.UserProfile, len(profiles))
	for i := range profiles {
		profileByUser[profiles[i].UserID] = &profiles[i]
	}

	items := make([]dto.CollaborationRequestItem, 0, len(userIDs))
	for _, project := range projects {
		for _, request := range project.CollaborationRequests {
			profile, ok := profileByUser[request.UserID]
			if !ok {
				continue
			}
			items = append(items, dto.CollaborationRequestItem{
				ProjectID:     project.ID,
				ProjectTitle:  project.Title,
				UserProfile:   dto.NewProfileResponse(profile),
				RequestStatus: string(request.Status),
			})
		}
	}
	return items, nil
}

func (s *CollaborationServiceImpl) ListChatUsers(db *gorm.DB, userID string) ([]dto.ChatUser, error) {
	projects, err := s.projectRepo.FindOwnedOrCollaborating(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if len(projects) == 0 {
		return nil, apperrors.New(apperrors.CodeNotFound, "collaboration",
			"No projects found.", http.StatusNotFound)
	}

	// First project wins when the same counterpart appears several times.
	roleByUser := make(map[string]string)
	order := make([]string, 0)
	add := func(id, role string) {
		if id == userID {
			return
		}
		if _, seen := roleByUser[id]; seen {
			return
		}
		roleByUser[id] = role
		order = append(order, id)
	}

	for _, project := range projects {
		if project.OwnerID == userID {
			for _, collaboratorID := range project.GetCollaborators() {
				add(collaboratorID, "collaborator")
			}
			continue
		}
		// On someone else's project only the owner is a counterpart,
		// never the other collaborators.
		add(project.OwnerID, "owner")
	}

	if len(order) == 0 {
		return nil, apperrors.New(apperrors.CodeNotFound, "collaboration",
			"No valid chat users found.", http.StatusNotFound)
	}

	profiles, err := s.profileRepo.FindByUserIDs(db, order)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	profileByUser := make(map[string]*models.UserProfile, len(profiles))
	for i := range profiles {
		profileByUser[profiles[i].UserID] = &profiles[i]
	}

	chatUsers := make([]dto.ChatUser, 0, len(order))
	for _, id := range order {
		profile, ok := profileByUser[id]
		if !ok {
			continue
		}
		chatUsers = append(chatUsers, dto.ChatUser{
			UserID: id,
			Name:   profile.Firstname + " " + profile.Lastname,
			Role:   roleByUser[id],
		})
	}
	if len(chatUsers) == 0 {
		return nil, apperrors.New(apperrors.CodeNotFound, "collaboration",
			"No valid chat users found.", http.StatusNotFound)
	}
	return chatUsers, nil
}

func (s *CollaborationServiceImpl) notifyOwner(ctx context.Context, db *gorm.DB, project *models.Project, candidateID string) {
	ownerUser, err := s.userRepo.FindByID(db, project.OwnerID)
	if err != nil {
		logger.CtxWithError(ctx, "Skipping owner notification", err, "projectId", project.ID)
		return
	}
	candidateName := s.displayName(db, candidateID)

	subject, body := email.CollaborationRequestReceived(project.Name, candidateName, project.Title)
	if err := s.mailer.Send([]string{ownerUser.Email}, subject, body); err != nil {
		logger.CtxWithError(ctx, "Failed to send collaboration request email", err, "projectId", project.ID)
	}
}

func (s *CollaborationServiceImpl) notifyCandidate(ctx context.Context, db *gorm.DB, project *models.Project, candidateID string, accepted bool) {
	candidateUser, err := s.userRepo.FindByID(db, candidateID)
	if err != nil {
		logger.CtxWithError(ctx, "Skipping candidate notification", err, "projectId", project.ID)
		return
	}
	candidateName := s.displayName(db, candidateID)

	var subject, body string
	if accepted {
		subject, body = email.CollaborationRequestAccepted(candidateName, project.Title)
	} else {
		subject, body = email.CollaborationRequestRejected(candidateName, project.Title)
	}
	if err := s.mailer.Send([]string{candidateUser.Email}, subject, body); err != nil {
		logger.CtxWithError(ctx, "Failed to send collaboration response email", err, "projectId", project.ID)
	}
}

func (s *CollaborationServiceImpl) requireProfile(db *gorm.DB, userID string) error {
	if _, err := s.profileRepo.FindByUserID(db, userID); err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *CollaborationServiceImpl) displayName(db *gorm.DB, userID string) string {
	profile, err := s.profileRepo.FindByUserID(db, userID)
	if err != nil {
		return "A user"
	}
	return profile.Firstname + " " + profile.Lastname
}
