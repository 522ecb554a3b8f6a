package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"bookmarks_api/internal/models"
)

type BookmarkRepository struct {
	db      *sql.DB
	dialect Dialect
	now     func() time.Time
}

func NewBookmarkRepository(db *sql.DB, d Dialect) *BookmarkRepository {
	return &BookmarkRepository{db: db, dialect: d, now: utcNow}
}

var _ Bookmarks = (*BookmarkRepository)(nil)

const (
	bookmarkColumns = `id, user_id, title, description, link, created_at, updated_at`

	insertBookmarkSQL = `INSERT INTO bookmarks (user_id, title, description, link, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?) RETURNING id`
	listBookmarksSQL  = `SELECT ` + bookmarkColumns + ` FROM bookmarks WHERE user_id = ? ORDER BY id ASC`
	selectBookmarkSQL = `SELECT ` + bookmarkColumns + ` FROM bookmarks WHERE id = ? AND user_id = ?`
	deleteBookmarkSQL = `DELETE FROM bookmarks WHERE id = ? AND user_id = ?`
)

func (r *BookmarkRepository) Create(ctx context.Context, ownerID int, in models.BookmarkInput) (*models.Bookmark, error) {
	now := r.now()
	var id int
	err := r.db.QueryRowContext(ctx, r.dialect.Rebind(insertBookmarkSQL),
		ownerID, in.Title, in.Description, in.Link, now, now,
	).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("insert bookmark for user %d: %w", ownerID, err)
	}
	return &models.Bookmark{
		ID:          id,
		UserID:      ownerID,
		Title:       in.Title,
		Description: in.Description,
		Link:        in.Link,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// ListByOwner returns the owner's bookmarks in insertion order. Never nil.
func (r *BookmarkRepository) ListByOwner(ctx context.Context, ownerID int) ([]models.Bookmark, error) {
	rows, err := r.db.QueryContext(ctx, r.dialect.Rebind(listBookmarksSQL), ownerID)
	if err != nil {
		return nil, fmt.Errorf("list bookmarks for user %d: %w", ownerID, err)
	}
	defer rows.Close()

	out := make([]models.Bookmark, 0, 16)
	for rows.Next() {
		b, err := scanBookmark(rows)
		if err != nil {
			return nil, fmt.Errorf("scan bookmark: %w", err)
		}
		out = append(out, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate bookmarks: %w", err)
	}
	return out, nil
}

// GetByOwner returns ErrNotFound both for missing rows and rows owned by someone else.
func (r *BookmarkRepository) GetByOwner(ctx context.Context, ownerID, id int) (*models.Bookmark, error) {
	b, err := scanBookmark(r.db.QueryRowContext(ctx, r.dialect.Rebind(selectBookmarkSQL), id, ownerID))
	if err != nil {
		return nil, wrapLookup(err, fmt.Sprintf("select bookmark %d", id))
	}
	return b, nil
}

func (r *BookmarkRepository) UpdateByOwner(ctx context.Context, ownerID, id int, p models.BookmarkPatch) (*models.Bookmark, error) {
	query, args := buildBookmarkUpdate(p, r.now(), ownerID, id)
	res, err := r.db.ExecContext(ctx, r.dialect.Rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("update bookmark %d: %w", id, err)
	}
	if err := requireAffected(res); err != nil {
		return nil, err
	}
	return r.GetByOwner(ctx, ownerID, id)
}

func (r *BookmarkRepository) DeleteByOwner(ctx context.Context, ownerID, id int) error {
	res, err := r.db.ExecContext(ctx, r.dialect.Rebind(deleteBookmarkSQL), id, ownerID)
	if err != nil {
		return fmt.Errorf("delete bookmark %d: %w", id, err)
	}
	return requireAffected(res)
}

func buildBookmarkUpdate(p models.BookmarkPatch, now time.Time, ownerID, id int) (string, []any) {
	var (
		sets []string
		args []any
	)
	if p.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *p.Title)
	}
	if p.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *p.Description)
	}
	if p.Link != nil {
		sets = append(sets, "link = ?")
		args = append(args, *p.Link)
	}
	sets = append(sets, "updated_at = ?")
	args = append(args, now, id, ownerID)
	return "UPDATE bookmarks SET " + strings.Join(sets, ", ") + " WHERE id = ? AND user_id = ?", args
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanBookmark(row rowScanner) (*models.Bookmark, error) {
	var (
		b    models.Bookmark
		desc sql.NullString
	)
	if err := row.Scan(&b.ID, &b.UserID, &b.Title, &desc, &b.Link, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return nil, err
	}
	b.Description = nullToPtr(desc)
	b.CreatedAt = b.CreatedAt.UTC()
	b.UpdatedAt = b.UpdatedAt.UTC()
	return &b, nil
}
