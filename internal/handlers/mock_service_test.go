package handlers

import (
	"context"
	"net/http"
	"time"

	"bookmarks_api/internal/models"
	"bookmarks_api/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpUser *models.User
	signUpErr  error
	signInTok  string
	signInErr  error
	parseID    int
	parseErr   error

	lastSignUp     models.Credentials
	lastSignIn     models.Credentials
	lastParseToken string
}

func (m *mockAuth) SignUp(_ context.Context, in models.Credentials) (*models.User, error) {
	m.lastSignUp = in
	return m.signUpUser, m.signUpErr
}

func (m *mockAuth) SignIn(_ context.Context, in models.Credentials) (string, error) {
	m.lastSignIn = in
	return m.signInTok, m.signInErr
}

func (m *mockAuth) ParseToken(token string) (int, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

type mockUsers struct {
	users   map[int]*models.User
	getErr  error
	editOut *models.User
	editErr error

	lastEditID    int
	lastEditPatch models.UserPatch
}

func (m *mockUsers) GetByID(_ context.Context, id int) (*models.User, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	u, ok := m.users[id]
	if !ok {
		return nil, service.ErrNotFound
	}
	return u, nil
}

func (m *mockUsers) Edit(_ context.Context, id int, p models.UserPatch) (*models.User, error) {
	m.lastEditID = id
	m.lastEditPatch = p
	return m.editOut, m.editErr
}

type mockBookmarks struct {
	list    []models.Bookmark
	listErr error
	one     *models.Bookmark
	err     error

	lastOwner int
	lastID    int
	lastInput models.BookmarkInput
	lastPatch models.BookmarkPatch
	calls     int
}

func (m *mockBookmarks) Create(_ context.Context, ownerID int, in models.BookmarkInput) (*models.Bookmark, error) {
	m.calls++
	m.lastOwner, m.lastInput = ownerID, in
	return m.one, m.err
}

func (m *mockBookmarks) List(_ context.Context, ownerID int) ([]models.Bookmark, error) {
	m.calls++
	m.lastOwner = ownerID
	return m.list, m.listErr
}

func (m *mockBookmarks) Get(_ context.Context, ownerID, id int) (*models.Bookmark, error) {
	m.calls++
	m.lastOwner, m.lastID = ownerID, id
	return m.one, m.err
}

func (m *mockBookmarks) Update(_ context.Context, ownerID, id int, p models.BookmarkPatch) (*models.Bookmark, error) {
	m.calls++
	m.lastOwner, m.lastID, m.lastPatch = ownerID, id, p
	return m.one, m.err
}

func (m *mockBookmarks) Delete(_ context.Context, ownerID, id int) error {
	m.calls++
	m.lastOwner, m.lastID = ownerID, id
	return m.err
}

// ---- Shared Test Helpers ----

const testUserID = 7

func testUser() *models.User {
	ts := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	return &models.User{ID: testUserID, Email: "a@x.com", PasswordHash: "secret-hash", CreatedAt: ts, UpdatedAt: ts}
}

// newAuthedService returns a service whose guard accepts "good-token" as testUser.
func newAuthedService(b *mockBookmarks) (*service.Service, *mockUsers) {
	users := &mockUsers{users: map[int]*models.User{testUserID: testUser()}}
	s := &service.Service{
		Authorization: &mockAuth{parseID: testUserID},
		Users:         users,
		Bookmarks:     b,
	}
	return s, users
}

func newTestRouter(s *service.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(s, nil)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
