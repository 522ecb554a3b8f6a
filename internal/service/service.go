package service

import (
	"context"

	"bookmarks_api/internal/models"
	"bookmarks_api/internal/repository"
)

type Authorization interface {
	SignUp(ctx context.Context, in models.Credentials) (*models.User, error)
	SignIn(ctx context.Context, in models.Credentials) (string, error)
	ParseToken(accessToken string) (int, error)
}

// Users exposes the caller's own profile.
type Users interface {
	GetByID(ctx context.Context, id int) (*models.User, error)
	Edit(ctx context.Context, id int, p models.UserPatch) (*models.User, error)
}

// Bookmarks exposes owner-scoped bookmark CRUD.
type Bookmarks interface {
	Create(ctx context.Context, ownerID int, in models.BookmarkInput) (*models.Bookmark, error)
	List(ctx context.Context, ownerID int) ([]models.Bookmark, error)
	Get(ctx context.Context, ownerID, id int) (*models.Bookmark, error)
	Update(ctx context.Context, ownerID, id int, p models.BookmarkPatch) (*models.Bookmark, error)
	Delete(ctx context.Context, ownerID, id int) error
}

// Service aggregates all sub-services handed to the HTTP layer.
type Service struct {
	Authorization Authorization
	Users         Users
	Bookmarks     Bookmarks
}

// NewService wires the repository layer and token service into concrete services.
func NewService(repos *repository.Repository, tokens *TokenService) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Users, tokens),
		Users:         NewUserService(repos.Users),
		Bookmarks:     NewBookmarkService(repos.Bookmarks),
	}
}
