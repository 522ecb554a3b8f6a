package service

import (
	"context"
	"errors"
	"fmt"

	"bookmarks_api/internal/models"
	"bookmarks_api/internal/repository"
)

// UserService reads and edits the caller's own profile.
type UserService struct {
	users repository.Users
}

func NewUserService(users repository.Users) *UserService {
	return &UserService{users: users}
}

func (s *UserService) GetByID(ctx context.Context, id int) (*models.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get user %d: %w", id, err)
	}
	return u, nil
}

// Edit applies only the supplied fields. An email taken by another account is
// reported as ErrConflict.
func (s *UserService) Edit(ctx context.Context, id int, p models.UserPatch) (*models.User, error) {
	p.Normalize()
	if err := validationFailure(p.Validate()); err != nil {
		return nil, err
	}
	if p.Empty() {
		return s.GetByID(ctx, id)
	}

	u, err := s.users.Update(ctx, id, p)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicate):
			return nil, ErrConflict
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update user %d: %w", id, err)
	}
	return u, nil
}
