package service

import (
	"context"
	"errors"
	"fmt"

	"bookmarks_api/internal/models"
	"bookmarks_api/internal/repository"
)

// BookmarkService is CRUD over bookmarks, always scoped to the calling owner.
// A bookmark owned by someone else is reported exactly like a missing one.
type BookmarkService struct {
	bookmarks repository.Bookmarks
}

func NewBookmarkService(bookmarks repository.Bookmarks) *BookmarkService {
	return &BookmarkService{bookmarks: bookmarks}
}

func (s *BookmarkService) Create(ctx context.Context, ownerID int, in models.BookmarkInput) (*models.Bookmark, error) {
	in.Normalize()
	if err := validationFailure(in.Validate()); err != nil {
		return nil, err
	}
	b, err := s.bookmarks.Create(ctx, ownerID, in)
	if err != nil {
		return nil, fmt.Errorf("create bookmark: %w", err)
	}
	return b, nil
}

func (s *BookmarkService) List(ctx context.Context, ownerID int) ([]models.Bookmark, error) {
	list, err := s.bookmarks.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list bookmarks: %w", err)
	}
	if list == nil {
		list = []models.Bookmark{}
	}
	return list, nil
}

func (s *BookmarkService) Get(ctx context.Context, ownerID, id int) (*models.Bookmark, error) {
	b, err := s.bookmarks.GetByOwner(ctx, ownerID, id)
	if err != nil {
		return nil, mapBookmarkErr(err, "get", id)
	}
	return b, nil
}

func (s *BookmarkService) Update(ctx context.Context, ownerID, id int, p models.BookmarkPatch) (*models.Bookmark, error) {
	p.Normalize()
	if err := validationFailure(p.Validate()); err != nil {
		return nil, err
	}
	if p.Empty() {
		return s.Get(ctx, ownerID, id)
	}
	b, err := s.bookmarks.UpdateByOwner(ctx, ownerID, id, p)
	if err != nil {
		return nil, mapBookmarkErr(err, "update", id)
	}
	return b, nil
}

// Delete is not idempotent: a second call for the same id returns ErrNotFound.
func (s *BookmarkService) Delete(ctx context.Context, ownerID, id int) error {
	if err := s.bookmarks.DeleteByOwner(ctx, ownerID, id); err != nil {
		return mapBookmarkErr(err, "delete", id)
	}
	return nil
}

func mapBookmarkErr(err error, op string, id int) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	return fmt.Errorf("%s bookmark %d: %w", op, id, err)
}
