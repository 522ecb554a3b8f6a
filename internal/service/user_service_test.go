package service

import (
	"context"
	"errors"
	"testing"

	"bookmarks_api/internal/models"
	"bookmarks_api/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_GetByID(t *testing.T) {
	repo := &mockUserRepo{
		GetByIDFn: func(id int) (*models.User, error) {
			if id == 1 {
				return &models.User{ID: 1, Email: "a@x.com"}, nil
			}
			return nil, repository.ErrNotFound
		},
	}
	svc := NewUserService(repo)

	u, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", u.Email)

	_, err = svc.GetByID(context.Background(), 2)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserService_Edit_PartialAndIdempotent(t *testing.T) {
	stored := models.User{ID: 1, Email: "a@x.com", LastName: strPtr("Doe")}
	repo := &mockUserRepo{
		UpdateFn: func(id int, p models.UserPatch) (*models.User, error) {
			if p.Email != nil {
				stored.Email = *p.Email
			}
			if p.FirstName != nil {
				stored.FirstName = p.FirstName
			}
			if p.LastName != nil {
				stored.LastName = p.LastName
			}
			u := stored
			return &u, nil
		},
	}
	svc := NewUserService(repo)
	patch := models.UserPatch{FirstName: strPtr("Test")}

	first, err := svc.Edit(context.Background(), 1, patch)
	require.NoError(t, err)
	second, err := svc.Edit(context.Background(), 1, patch)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, "a@x.com", second.Email)
	assert.Equal(t, "Doe", *second.LastName)
	assert.Equal(t, "Test", *second.FirstName)
}

func TestUserService_Edit_EmptyPatchReadsOnly(t *testing.T) {
	repo := &mockUserRepo{
		GetByIDFn: func(id int) (*models.User, error) { return &models.User{ID: id, Email: "a@x.com"}, nil },
		UpdateFn: func(int, models.UserPatch) (*models.User, error) {
			t.Fatal("Update should not be called for an empty patch")
			return nil, nil
		},
	}

	u, err := NewUserService(repo).Edit(context.Background(), 3, models.UserPatch{})
	require.NoError(t, err)
	assert.Equal(t, 3, u.ID)
	assert.Zero(t, repo.updateCalls)
}

func TestUserService_Edit_Errors(t *testing.T) {
	t.Run("invalid email", func(t *testing.T) {
		repo := &mockUserRepo{}
		_, err := NewUserService(repo).Edit(context.Background(), 1, models.UserPatch{Email: strPtr("nope")})

		var ve *ValidationError
		require.True(t, errors.As(err, &ve), "got %v", err)
		assert.Contains(t, ve.Fields, "email")
		assert.Zero(t, repo.updateCalls)
	})

	t.Run("email taken", func(t *testing.T) {
		repo := &mockUserRepo{
			UpdateFn: func(int, models.UserPatch) (*models.User, error) { return nil, repository.ErrDuplicate },
		}
		_, err := NewUserService(repo).Edit(context.Background(), 1, models.UserPatch{Email: strPtr("B@x.com")})
		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("email normalized", func(t *testing.T) {
		var got string
		repo := &mockUserRepo{
			UpdateFn: func(id int, p models.UserPatch) (*models.User, error) {
				got = *p.Email
				return &models.User{ID: id, Email: got}, nil
			},
		}
		_, err := NewUserService(repo).Edit(context.Background(), 1, models.UserPatch{Email: strPtr("  New@X.com ")})
		require.NoError(t, err)
		assert.Equal(t, "new@x.com", got)
	})
}
