package repository

import (
	"context"
	"database/sql"
	"errors"

	"bookmarks_api/internal/models"
)

var (
	// ErrNotFound is returned when no row matches the lookup (including owner scoping).
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a write violates a unique constraint.
	ErrDuplicate = errors.New("duplicate record")
)

// Users is the credential store.
type Users interface {
	Create(ctx context.Context, email, passwordHash string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id int) (*models.User, error)
	Update(ctx context.Context, id int, p models.UserPatch) (*models.User, error)
}

// Bookmarks is the bookmark store. Every lookup is scoped by owner.
type Bookmarks interface {
	Create(ctx context.Context, ownerID int, in models.BookmarkInput) (*models.Bookmark, error)
	ListByOwner(ctx context.Context, ownerID int) ([]models.Bookmark, error)
	GetByOwner(ctx context.Context, ownerID, id int) (*models.Bookmark, error)
	UpdateByOwner(ctx context.Context, ownerID, id int, p models.BookmarkPatch) (*models.Bookmark, error)
	DeleteByOwner(ctx context.Context, ownerID, id int) error
}

type Repository struct {
	Users     Users
	Bookmarks Bookmarks
}

func NewRepository(db *sql.DB, d Dialect) *Repository {
	return &Repository{
		Users:     NewUserRepository(db, d),
		Bookmarks: NewBookmarkRepository(db, d),
	}
}
