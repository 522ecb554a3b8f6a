package service

import (
	"context"

	"bookmarks_api/internal/models"
)

// mockUserRepo is a lightweight in-test mock for repository.Users.
type mockUserRepo struct {
	CreateFn     func(email, hash string) (*models.User, error)
	GetByEmailFn func(email string) (*models.User, error)
	GetByIDFn    func(id int) (*models.User, error)
	UpdateFn     func(id int, p models.UserPatch) (*models.User, error)

	createCalls []struct {
		email string
		hash  string
	}
	getCalls    []string
	updateCalls int
}

func (m *mockUserRepo) Create(_ context.Context, email, hash string) (*models.User, error) {
	m.createCalls = append(m.createCalls, struct {
		email string
		hash  string
	}{email: email, hash: hash})
	return m.CreateFn(email, hash)
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	m.getCalls = append(m.getCalls, email)
	return m.GetByEmailFn(email)
}

func (m *mockUserRepo) GetByID(_ context.Context, id int) (*models.User, error) {
	return m.GetByIDFn(id)
}

func (m *mockUserRepo) Update(_ context.Context, id int, p models.UserPatch) (*models.User, error) {
	m.updateCalls++
	return m.UpdateFn(id, p)
}

// mockBookmarkRepo is a lightweight in-test mock for repository.Bookmarks.
type mockBookmarkRepo struct {
	CreateFn func(ownerID int, in models.BookmarkInput) (*models.Bookmark, error)
	ListFn   func(ownerID int) ([]models.Bookmark, error)
	GetFn    func(ownerID, id int) (*models.Bookmark, error)
	UpdateFn func(ownerID, id int, p models.BookmarkPatch) (*models.Bookmark, error)
	DeleteFn func(ownerID, id int) error

	calls int
}

func (m *mockBookmarkRepo) Create(_ context.Context, ownerID int, in models.BookmarkInput) (*models.Bookmark, error) {
	m.calls++
	return m.CreateFn(ownerID, in)
}

func (m *mockBookmarkRepo) ListByOwner(_ context.Context, ownerID int) ([]models.Bookmark, error) {
	m.calls++
	return m.ListFn(ownerID)
}

func (m *mockBookmarkRepo) GetByOwner(_ context.Context, ownerID, id int) (*models.Bookmark, error) {
	m.calls++
	return m.GetFn(ownerID, id)
}

func (m *mockBookmarkRepo) UpdateByOwner(_ context.Context, ownerID, id int, p models.BookmarkPatch) (*models.Bookmark, error) {
	m.calls++
	return m.UpdateFn(ownerID, id, p)
}

func (m *mockBookmarkRepo) DeleteByOwner(_ context.Context, ownerID, id int) error {
	m.calls++
	return m.DeleteFn(ownerID, id)
}

func strPtr(s string) *string { return &s }
