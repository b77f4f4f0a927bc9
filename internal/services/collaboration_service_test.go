package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"collabmate_backend/internal/models"
	"collabmate_backend/internal/services/dto"
	"collabmate_backend/pkg/apperrors"
)

type collabFixture struct {
	svc      *CollaborationServiceImpl
	users    *fakeUserRepo
	profiles *fakeProfileRepo
	projects *fakeProjectRepo
	requests *fakeCollabRepo
	mailer   *fakeMailer
}

func newCollabFixture() *collabFixture {
	users := newFakeUserRepo()
	profiles := newFakeProfileRepo()
	requests := newFakeCollabRepo()
	projects := newFakeProjectRepo()
	projects.requests = requests
	mailer := &fakeMailer{}

	svc := &CollaborationServiceImpl{
		collabRepo:  requests,
		projectRepo: projects,
		profileRepo: profiles,
		userRepo:    users,
		mailer:      mailer,
		runInTx: func(db *gorm.DB, fn func(tx *gorm.DB) error) error {
			return fn(db)
		},
	}

	return &collabFixture{
		svc:      svc,
		users:    users,
		profiles: profiles,
		projects: projects,
		requests: requests,
		mailer:   mailer,
	}
}

func (f *collabFixture) addUser(t *testing.T, id, email, firstname string) {
	t.Helper()
	user := &models.User{Email: email}
	user.ID = id
	require.NoError(t, f.users.Create(nil, user))

	profile := &models.UserProfile{UserID: id, Firstname: firstname, Lastname: "Doe", Email: email}
	require.NoError(t, f.profiles.Create(nil, profile))
}

func (f *collabFixture) addProject(t *testing.T, id, ownerID, title string, collaborators ...string) {
	t.Helper()
	project := &models.Project{Title: title, OwnerID: ownerID, Status: models.ProjectStatusOpen, Name: "Owner"}
	project.ID = id
	project.SetCollaborators(collaborators)
	require.NoError(t, f.projects.Create(nil, project))
}

func TestSendCollaborationRequest(t *testing.T) {
	t.Parallel()
	f := newCollabFixture()
	f.addUser(t, "owner-1", "owner@test.com", "Olivia")
	f.addUser(t, "cand-1", "candidate@test.com", "Casey")
	f.addProject(t, "proj-1", "owner-1", "Chat App")

	err := f.svc.Send(context.Background(), nil, "cand-1", "proj-1")
	require.NoError(t, err)

	request, err := f.requests.FindByProjectAndUser(nil, "proj-1", "cand-1")
	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusPending, request.Status)

	require.Len(t, f.mailer.sent, 1)
	assert.Equal(t, []string{"owner@test.com"}, f.mailer.sent[0].To)
}

func TestSendCollaborationRequest_OwnProject(t *testing.T) {
	t.Parallel()
	f := newCollabFixture()
	f.addUser(t, "owner-1", "owner@test.com", "Olivia")
	f.addProject(t, "proj-1", "owner-1", "Chat App")

	err := f.svc.Send(context.Background(), nil, "owner-1", "proj-1")
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.HTTPCode)
}

func TestSendCollaborationRequest_Duplicate(t *testing.T) {
	t.Parallel()
	f := newCollabFixture()
	f.addUser(t, "owner-1", "owner@test.com", "Olivia")
	f.addUser(t, "cand-1", "candidate@test.com", "Casey")
	f.addProject(t, "proj-1", "owner-1", "Chat App")

	require.NoError(t, f.svc.Send(context.Background(), nil, "cand-1", "proj-1"))

	err := f.svc.Send(context.Background(), nil, "cand-1", "proj-1")
	assert.ErrorIs(t, err, apperrors.ErrDuplicateRequest)
}

// Send and Respond resolve the caller's profile first and fail closed when
// it does not exist.
func TestCollaboration_NoProfile(t *testing.T) {
	t.Parallel()
	f := newCollabFixture()
	f.addUser(t, "owner", "owner@test.com", "Olivia")
	f.addProject(t, "proj-1", "owner", "Project")

	err := f.svc.Send(context.Background(), nil, "stranger", "proj-1")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)

	_, err = f.svc.Respond(context.Background(), nil, "stranger", "proj-1", &dto.RespondToRequest{
		RequestingUserID: "whoever",
		Response:         "accept",
	})
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestRespond_AcceptAddsCollaborator(t *testing.T) {
	t.Parallel()
	f := newCollabFixture()
	f.addUser(t, "owner-1", "owner@test.com", "Olivia")
	f.addUser(t, "cand-1", "candidate@test.com", "Casey")
	f.addProject(t, "proj-1", "owner-1", "Chat App")
	require.NoError(t, f.svc.Send(context.Background(), nil, "cand-1", "proj-1"))
	f.mailer.sent = nil

	message, err := f.svc.Respond(context.Background(), nil, "owner-1", "proj-1",
		&dto.RespondToRequest{RequestingUserID: "cand-1", Response: "accept"})
	require.NoError(t, err)
	assert.Equal(t, "Collaboration request accepted.", message)

	project, err := f.projects.FindByID(nil, "proj-1")
	require.NoError(t, err)
	assert.True(t, project.HasCollaborator("cand-1"))

	request, err := f.requests.FindByProjectAndUser(nil, "proj-1", "cand-1")
	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusAccepted, request.Status)

	require.Len(t, f.mailer.sent, 1)
	assert.Equal(t, []string{"candidate@test.com"}, f.mailer.sent[0].To)
}

func TestRespond_RejectIsTerminal(t *testing.T) {
	t.Parallel()
	f := newCollabFixture()
	f.addUser(t, "owner-1", "owner@test.com", "Olivia")
	f.addUser(t, "cand-1", "candidate@test.com", "Casey")
	f.addProject(t, "proj-1", "owner-1", "Chat App")
	require.NoError(t, f.svc.Send(context.Background(), nil, "cand-1", "proj-1"))

	message, err := f.svc.Respond(context.Background(), nil, "owner-1", "proj-1",
		&dto.RespondToRequest{RequestingUserID: "cand-1", Response: "reject"})
	require.NoError(t, err)
	assert.Equal(t, "Collaboration request rejected.", message)

	project, err := f.projects.FindByID(nil, "proj-1")
	require.NoError(t, err)
	assert.False(t, project.HasCollaborator("cand-1"))

	// A rejected request cannot be re-sent.
	err = f.svc.Send(context.Background(), nil, "cand-1", "proj-1")
	assert.ErrorIs(t, err, apperrors.ErrDuplicateRequest)
}

func TestRespond_SecondResponseFails(t *testing.T) {
	t.Parallel()
	f := newCollabFixture()
	f.addUser(t, "owner-1", "owner@test.com", "Olivia")
	f.addUser(t, "cand-1", "candidate@test.com", "Casey")
	f.addProject(t, "proj-1", "owner-1", "Chat App")
	require.NoError(t, f.svc.Send(context.Background(), nil, "cand-1", "proj-1"))

	_, err := f.svc.Respond(context.Background(), nil, "owner-1", "proj-1",
		&dto.RespondToRequest{RequestingUserID: "cand-1", Response: "accept"})
	require.NoError(t, err)

	_, err = f.svc.Respond(context.Background(), nil, "owner-1", "proj-1",
		&dto.RespondToRequest{RequestingUserID: "cand-1", Response: "reject"})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.HTTPCode)

	// The accepted state is untouched by the failed second response.
	request, err := f.requests.FindByProjectAndUser(nil, "proj-1", "cand-1")
	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusAccepted, request.Status)
}

func TestRespond_NotOwner(t *testing.T) {
	t.Parallel()
	f := newCollabFixture()
	f.addUser(t, "owner-1", "owner@test.com", "Olivia")
	f.addUser(t, "cand-1", "candidate@test.com", "Casey")
	f.addUser(t, "other-1", "other@test.com", "Oscar")
	f.addProject(t, "proj-1", "owner-1", "Chat App")
	require.NoError(t, f.svc.Send(context.Background(), nil, "cand-1", "proj-1"))

	_, err := f.svc.Respond(context.Background(), nil, "other-1", "proj-1",
		&dto.RespondToRequest{RequestingUserID: "cand-1", Response: "accept"})
	assert.ErrorIs(t, err, apperrors.ErrNotRequestOwner)
}

func TestListRequests(t *testing.T) {
	t.Parallel()
	f := newCollabFixture()
	f.addUser(t, "owner-1", "owner@test.com", "Olivia")
	f.addUser(t, "cand-1", "c1@test.com", "Casey")
	f.addUser(t, "cand-2", "c2@test.com", "Charlie")
	f.addProject(t, "proj-1", "owner-1", "Chat App")
	f.addProject(t, "proj-2", "owner-1", "Game Engine")
	require.NoError(t, f.svc.Send(context.Background(), nil, "cand-1", "proj-1"))
	require.NoError(t, f.svc.Send(context.Background(), nil, "cand-2", "proj-2"))

	items, err := f.svc.ListRequests(nil, "owner-1")
	require.NoError(t, err)
	require.Len(t, items, 2)

	byProject := make(map[string]dto.CollaborationRequestItem)
	for _, item := range items {
		byProject[item.ProjectID] = item
	}
	assert.Equal(t, "Casey", byProject["proj-1"].UserProfile.Firstname)
	assert.Equal(t, "pending", byProject["proj-1"].RequestStatus)
	assert.Equal(t, "Game Engine", byProject["proj-2"].ProjectTitle)
}

func TestListRequests_Empty(t *testing.T) {
	t.Parallel()
	f := newCollabFixture()
	f.addUser(t, "owner-1", "owner@test.com", "Olivia")
	f.addProject(t, "proj-1", "owner-1", "Chat App")

	_, err := f.svc.ListRequests(nil, "owner-1")
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.HTTPCode)
	assert.Equal(t, "No collaboration requests found for your projects.", appErr.Message)
}

func TestListChatUsers(t *testing.T) {
	t.Parallel()
	f := newCollabFixture()
	f.addUser(t, "me", "me@test.com", "Mia")
	f.addUser(t, "collab-1", "c1@test.com", "Casey")
	f.addUser(t, "owner-2", "o2@test.com", "Olivia")

	// I own proj-1 with one collaborator, and collaborate on proj-2.
	f.addProject(t, "proj-1", "me", "Mine", "collab-1")
	f.addProject(t, "proj-2", "owner-2", "Theirs", "me", "collab-1")

	chatUsers, err := f.svc.ListChatUsers(nil, "me")
	require.NoError(t, err)
	require.Len(t, chatUsers, 2)

	byID := make(map[string]dto.ChatUser)
	for _, u := range chatUsers {
		byID[u.UserID] = u
	}
	assert.Equal(t, "collaborator", byID["collab-1"].Role)
	assert.Equal(t, "Casey Doe", byID["collab-1"].Name)
	assert.Equal(t, "owner", byID["owner-2"].Role)
}

// On a project the caller merely collaborates on, only the owner is a chat
// counterpart. Fellow collaborators never are.
func TestListChatUsers_ExcludesFellowCollaborators(t *testing.T) {
	t.Parallel()
	f := newCollabFixture()
	f.addUser(t, "me", "me@test.com", "Mia")
	f.addUser(t, "owner-2", "o2@test.com", "Olivia")
	f.addUser(t, "stranger", "s@test.com", "Sam")

	f.addProject(t, "proj-1", "owner-2", "Theirs", "me", "stranger")

	chatUsers, err := f.svc.ListChatUsers(nil, "me")
	require.NoError(t, err)
	require.Len(t, chatUsers, 1)
	assert.Equal(t, "owner-2", chatUsers[0].UserID)
	assert.Equal(t, "owner", chatUsers[0].Role)
}

func TestListChatUsers_NoProjects(t *testing.T) {
	t.Parallel()
	f := newCollabFixture()
	f.addUser(t, "me", "me@test.com", "Mia")

	_, err := f.svc.ListChatUsers(nil, "me")
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, "No projects found.", appErr.Message)
}

func TestListChatUsers_NoCounterparts(t *testing.T) {
	t.Parallel()
	f := newCollabFixture()
	f.addUser(t, "me", "me@test.com", "Mia")
	f.addProject(t, "proj-1", "me", "Mine")

	_, err := f.svc.ListChatUsers(nil, "me")
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, "No valid chat users found.", appErr.Message)
}
