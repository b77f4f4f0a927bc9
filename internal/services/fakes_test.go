package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"gorm.io/gorm"

	"collabmate_backend/internal/models"
	"collabmate_backend/internal/repositories"
)

// In-memory repository fakes. They ignore the *gorm.DB handle, so tests
// pass nil for it.

func newID(prefix string, n int) string {
	return fmt.Sprintf("%s-%04d", prefix, n)
}

type fakeUserRepo struct {
	mu    sync.Mutex
	seq   int
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (r *fakeUserRepo) Create(_ *gorm.DB, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return repositories.ErrUserAlreadyExists
		}
	}
	r.seq++
	if user.ID == "" {
		user.ID = newID("user", r.seq)
	}
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) FindByID(_ *gorm.DB, id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) FindByEmail(_ *gorm.DB, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

type fakeProfileRepo struct {
	mu       sync.Mutex
	seq      int
	profiles map[string]*models.UserProfile // keyed by user id
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[string]*models.UserProfile)}
}

func (r *fakeProfileRepo) Create(_ *gorm.DB, profile *models.UserProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.profiles[profile.UserID]; ok {
		return repositories.ErrProfileAlreadyExists
	}
	r.seq++
	if profile.ID == "" {
		profile.ID = newID("profile", r.seq)
	}
	copied := *profile
	r.profiles[profile.UserID] = &copied
	return nil
}

func (r *fakeProfileRepo) FindByUserID(_ *gorm.DB, userID string) (*models.UserProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.profiles[userID]; ok {
		copied := *p
		return &copied, nil
	}
	return nil, repositories.ErrProfileNotFound
}

func (r *fakeProfileRepo) FindByUserIDs(_ *gorm.DB, userIDs []string) ([]models.UserProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.UserProfile
	for _, id := range userIDs {
		if p, ok := r.profiles[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakeProfileRepo) Update(_ *gorm.DB, profile *models.UserProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.profiles[profile.UserID]; !ok {
		return repositories.ErrProfileNotFound
	}
	copied := *profile
	r.profiles[profile.UserID] = &copied
	return nil
}

type fakeProjectRepo struct {
	mu       sync.Mutex
	seq      int
	projects map[string]*models.Project
	requests *fakeCollabRepo // may be nil; used to preload requests
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{projects: make(map[string]*models.Project)}
}

func (r *fakeProjectRepo) Create(_ *gorm.DB, project *models.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	if project.ID == "" {
		project.ID = newID("project", r.seq)
	}
	copied := *project
	r.projects[project.ID] = &copied
	return nil
}

func (r *fakeProjectRepo) FindByID(_ *gorm.DB, id string) (*models.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.projects[id]; ok {
		copied := *p
		return &copied, nil
	}
	return nil, repositories.ErrProjectNotFound
}

func (r *fakeProjectRepo) FindByIDWithRequests(db *gorm.DB, id string) (*models.Project, error) {
	project, err := r.FindByID(db, id)
	if err != nil {
		return nil, err
	}
	if r.requests != nil {
		project.CollaborationRequests = r.requests.forProject(id)
	}
	return project, nil
}

func (r *fakeProjectRepo) Update(_ *gorm.DB, project *models.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.projects[project.ID]; !ok {
		return repositories.ErrProjectNotFound
	}
	copied := *project
	r.projects[project.ID] = &copied
	return nil
}

func (r *fakeProjectRepo) sorted() []models.Project {
	ids := make([]string, 0, len(r.projects))
	for id := range r.projects {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	out := make([]models.Project, 0, len(ids))
	for _, id := range ids {
		out = append(out, *r.projects[id])
	}
	return out
}

func (r *fakeProjectRepo) FindByOwner(_ *gorm.DB, ownerID string) ([]models.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Project
	for _, p := range r.sorted() {
		if p.OwnerID == ownerID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProjectRepo) FindExcludingOwner(_ *gorm.DB, ownerID string) ([]models.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Project
	for _, p := range r.sorted() {
		if p.OwnerID != ownerID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProjectRepo) FindByIDs(_ *gorm.DB, ids []string) ([]models.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Project
	for _, id := range ids {
		if p, ok := r.projects[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakeProjectRepo) Search(_ *gorm.DB, ownerID, query string) ([]models.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	needle := strings.ToLower(query)
	var out []models.Project
	for _, p := range r.sorted() {
		if p.OwnerID == ownerID {
			continue
		}
		haystack := strings.ToLower(p.Title + " " + p.Description + " " + string(p.ProjectTechStack) + " " + string(p.Status))
		if strings.Contains(haystack, needle) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProjectRepo) FindFeedCandidates(_ *gorm.DB, userID string, excludedIDs []string) ([]models.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	skip := make(map[string]struct{}, len(excludedIDs))
	for _, id := range excludedIDs {
		skip[id] = struct{}{}
	}
	var out []models.Project
	for _, p := range r.sorted() {
		if p.OwnerID == userID {
			continue
		}
		if _, excluded := skip[p.ID]; excluded {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *fakeProjectRepo) FindWithRequestsByOwner(db *gorm.DB, ownerID string) ([]models.Project, error) {
	projects, err := r.FindByOwner(db, ownerID)
	if err != nil {
		return nil, err
	}
	var out []models.Project
	for _, p := range projects {
		if r.requests == nil {
			continue
		}
		p.CollaborationRequests = r.requests.forProject(p.ID)
		if len(p.CollaborationRequests) > 0 {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProjectRepo) FindOwnedOrCollaborating(_ *gorm.DB, userID string) ([]models.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Project
	for _, p := range r.sorted() {
		if p.OwnerID == userID || p.HasCollaborator(userID) {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeSwipeRepo struct {
	mu     sync.Mutex
	swipes []models.Swipe
}

func newFakeSwipeRepo() *fakeSwipeRepo {
	return &fakeSwipeRepo{}
}

func (r *fakeSwipeRepo) Create(_ *gorm.DB, swipe *models.Swipe) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.swipes {
		if s.UserID == swipe.UserID && s.ProjectID == swipe.ProjectID {
			return repositories.ErrDuplicateSwipe
		}
	}
	r.swipes = append(r.swipes, *swipe)
	return nil
}

func (r *fakeSwipeRepo) Exists(_ *gorm.DB, userID, projectID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.swipes {
		if s.UserID == userID && s.ProjectID == projectID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeSwipeRepo) FindByUser(_ *gorm.DB, userID string) ([]models.Swipe, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Swipe
	for _, s := range r.swipes {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeSwipeRepo) FindLikedByUser(_ *gorm.DB, userID string) ([]models.Swipe, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Swipe
	for _, s := range r.swipes {
		if s.UserID == userID && s.Action == models.SwipeActionLike {
			out = append(out, s)
		}
	}
	return out, nil
}

type fakeBookmarkRepo struct {
	mu        sync.Mutex
	bookmarks []models.Bookmark
}

func newFakeBookmarkRepo() *fakeBookmarkRepo {
	return &fakeBookmarkRepo{}
}

func (r *fakeBookmarkRepo) Create(_ *gorm.DB, bookmark *models.Bookmark) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.bookmarks {
		if b.UserID == bookmark.UserID && b.ProjectID == bookmark.ProjectID {
			return repositories.ErrDuplicateBookmark
		}
	}
	r.bookmarks = append(r.bookmarks, *bookmark)
	return nil
}

func (r *fakeBookmarkRepo) Exists(_ *gorm.DB, userID, projectID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.bookmarks {
		if b.UserID == userID && b.ProjectID == projectID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeBookmarkRepo) Delete(_ *gorm.DB, userID, projectID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, b := range r.bookmarks {
		if b.UserID == userID && b.ProjectID == projectID {
			r.bookmarks = append(r.bookmarks[:i], r.bookmarks[i+1:]...)
			return nil
		}
	}
	return repositories.ErrBookmarkNotFound
}

func (r *fakeBookmarkRepo) FindByUser(_ *gorm.DB, userID string) ([]models.Bookmark, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Bookmark
	for _, b := range r.bookmarks {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

type fakeCollabRepo struct {
	mu       sync.Mutex
	requests []models.CollaborationRequest
}

func newFakeCollabRepo() *fakeCollabRepo {
	return &fakeCollabRepo{}
}

func (r *fakeCollabRepo) Create(_ *gorm.DB, request *models.CollaborationRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, req := range r.requests {
		if req.ProjectID == request.ProjectID && req.UserID == request.UserID {
			return repositories.ErrDuplicateRequest
		}
	}
	r.requests = append(r.requests, *request)
	return nil
}

func (r *fakeCollabRepo) FindByProjectAndUser(_ *gorm.DB, projectID, userID string) (*models.CollaborationRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.requests {
		if r.requests[i].ProjectID == projectID && r.requests[i].UserID == userID {
			copied := r.requests[i]
			return &copied, nil
		}
	}
	return nil, repositories.ErrRequestNotFound
}

func (r *fakeCollabRepo) TransitionFromPending(_ *gorm.DB, projectID, userID string, status models.RequestStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.requests {
		if r.requests[i].ProjectID == projectID && r.requests[i].UserID == userID &&
			r.requests[i].Status == models.RequestStatusPending {
			r.requests[i].Status = status
			return nil
		}
	}
	return repositories.ErrRequestNotPending
}

func (r *fakeCollabRepo) forProject(projectID string) []models.CollaborationRequest {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.CollaborationRequest
	for _, req := range r.requests {
		if req.ProjectID == projectID {
			out = append(out, req)
		}
	}
	return out
}

// fakeObjectStore keeps uploads in memory and can be told to fail for
// particular keys.

type fakeObjectStore struct {
	mu      sync.Mutex
	objects map[string][]byte
	deleted []string
	failOn  string // substring of keys whose Save should fail
}

func newFakeObjectStore() *fakeObjectStore {
	return &fakeObjectStore{objects: make(map[string][]byte)}
}

func (s *fakeObjectStore) Save(_ context.Context, key string, reader io.Reader, _ string) error {
	if s.failOn != "" && strings.Contains(key, s.failOn) {
		return fmt.Errorf("simulated upload failure for %s", key)
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[key] = data
	return nil
}

func (s *fakeObjectStore) Get(_ context.Context, key string) (io.ReadCloser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.objects[key]
	if !ok {
		return nil, fmt.Errorf("object %s not found", key)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (s *fakeObjectStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, key)
	s.deleted = append(s.deleted, key)
	return nil
}

func (s *fakeObjectStore) URL(key string) string {
	return "https://cdn.test/" + key
}

// fakeMailer records the messages it was asked to send.

type fakeMailer struct {
	mu   sync.Mutex
	sent []sentMail
}

type sentMail struct {
	To      []string
	Subject string
}

func (m *fakeMailer) Send(to []string, subject, _ string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, sentMail{To: to, Subject: subject})
	return nil
}

// fakeVerifier resolves raw tokens through a fixed map.

type fakeVerifier struct {
	emails map[string]string // raw token -> email
}

func (v *fakeVerifier) VerifyIDToken(_ context.Context, raw string) (string, error) {
	if email, ok := v.emails[raw]; ok {
		return email, nil
	}
	return "", fmt.Errorf("unknown token")
}
