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

func TestBookmarkService_Create(t *testing.T) {
	repo := &mockBookmarkRepo{
		CreateFn: func(ownerID int, in models.BookmarkInput) (*models.Bookmark, error) {
			return &models.Bookmark{ID: 1, UserID: ownerID, Title: in.Title, Link: in.Link, Description: in.Description}, nil
		},
	}
	svc := NewBookmarkService(repo)

	b, err := svc.Create(context.Background(), 7, models.BookmarkInput{Title: " t ", Link: "l"})
	require.NoError(t, err)
	assert.Equal(t, 7, b.UserID)
	assert.Equal(t, "t", b.Title)
	assert.Nil(t, b.Description)
}

func TestBookmarkService_Create_Validation(t *testing.T) {
	repo := &mockBookmarkRepo{}
	svc := NewBookmarkService(repo)

	_, err := svc.Create(context.Background(), 7, models.BookmarkInput{Description: strPtr("d")})

	var ve *ValidationError
	require.True(t, errors.As(err, &ve), "got %v", err)
	assert.Contains(t, ve.Fields, "title")
	assert.Contains(t, ve.Fields, "link")
	assert.NotContains(t, ve.Fields, "description")
	assert.Zero(t, repo.calls, "storage must not be touched on invalid input")
}

func TestBookmarkService_List_EmptyNotNil(t *testing.T) {
	repo := &mockBookmarkRepo{
		ListFn: func(int) ([]models.Bookmark, error) { return nil, nil },
	}
	list, err := NewBookmarkService(repo).List(context.Background(), 1)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestBookmarkService_OwnershipCollapsesToNotFound(t *testing.T) {
	// bookmark 5 belongs to user 1
	repo := &mockBookmarkRepo{
		GetFn: func(ownerID, id int) (*models.Bookmark, error) {
			if ownerID == 1 && id == 5 {
				return &models.Bookmark{ID: 5, UserID: 1}, nil
			}
			return nil, repository.ErrNotFound
		},
		UpdateFn: func(ownerID, id int, p models.BookmarkPatch) (*models.Bookmark, error) {
			return nil, repository.ErrNotFound
		},
		DeleteFn: func(ownerID, id int) error { return repository.ErrNotFound },
	}
	svc := NewBookmarkService(repo)
	ctx := context.Background()

	_, err := svc.Get(ctx, 2, 5)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = svc.Get(ctx, 2, 404)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = svc.Update(ctx, 2, 5, models.BookmarkPatch{Title: strPtr("x")})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, 2, 5), ErrNotFound)

	b, err := svc.Get(ctx, 1, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, b.ID)
}

func TestBookmarkService_Update(t *testing.T) {
	t.Run("blank title rejected", func(t *testing.T) {
		repo := &mockBookmarkRepo{}
		_, err := NewBookmarkService(repo).Update(context.Background(), 1, 5, models.BookmarkPatch{Title: strPtr("  ")})

		var ve *ValidationError
		require.True(t, errors.As(err, &ve), "got %v", err)
		assert.Contains(t, ve.Fields, "title")
		assert.Zero(t, repo.calls)
	})

	t.Run("empty patch returns current", func(t *testing.T) {
		repo := &mockBookmarkRepo{
			GetFn: func(ownerID, id int) (*models.Bookmark, error) {
				return &models.Bookmark{ID: id, UserID: ownerID, Title: "t"}, nil
			},
		}
		b, err := NewBookmarkService(repo).Update(context.Background(), 1, 5, models.BookmarkPatch{})
		require.NoError(t, err)
		assert.Equal(t, "t", b.Title)
	})

	t.Run("passes patch through", func(t *testing.T) {
		var got models.BookmarkPatch
		repo := &mockBookmarkRepo{
			UpdateFn: func(ownerID, id int, p models.BookmarkPatch) (*models.Bookmark, error) {
				got = p
				return &models.Bookmark{ID: id, UserID: ownerID, Title: *p.Title}, nil
			},
		}
		_, err := NewBookmarkService(repo).Update(context.Background(), 1, 5, models.BookmarkPatch{Title: strPtr("test Updated")})
		require.NoError(t, err)
		require.NotNil(t, got.Title)
		assert.Equal(t, "test Updated", *got.Title)
		assert.Nil(t, got.Link)
		assert.Nil(t, got.Description)
	})
}

func TestBookmarkService_Delete_TwiceFails(t *testing.T) {
	deleted := false
	repo := &mockBookmarkRepo{
		DeleteFn: func(ownerID, id int) error {
			if deleted {
				return repository.ErrNotFound
			}
			deleted = true
			return nil
		},
	}
	svc := NewBookmarkService(repo)

	require.NoError(t, svc.Delete(context.Background(), 1, 5))
	assert.ErrorIs(t, svc.Delete(context.Background(), 1, 5), ErrNotFound)
}

func TestBookmarkService_StorageErrorsAreWrapped(t *testing.T) {
	boom := errors.New("boom")
	repo := &mockBookmarkRepo{
		GetFn: func(int, int) (*models.Bookmark, error) { return nil, boom },
	}
	_, err := NewBookmarkService(repo).Get(context.Background(), 1, 5)
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrNotFound)
}
