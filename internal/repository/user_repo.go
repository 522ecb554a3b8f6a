package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"bookmarks_api/internal/models"
)

type UserRepository struct {
	db      *sql.DB
	dialect Dialect
	now     func() time.Time
}

func NewUserRepository(db *sql.DB, d Dialect) *UserRepository {
	return &UserRepository{db: db, dialect: d, now: utcNow}
}

// Ensure implementation of Users interface at compile time.
var _ Users = (*UserRepository)(nil)

const (
	userColumns = `id, email, password_hash, first_name, last_name, created_at, updated_at`

	insertUserSQL        = `INSERT INTO users (email, password_hash, created_at, updated_at) VALUES (?, ?, ?, ?) RETURNING id`
	selectUserByEmailSQL = `SELECT ` + userColumns + ` FROM users WHERE email = ?`
	selectUserByIDSQL    = `SELECT ` + userColumns + ` FROM users WHERE id = ?`
)

// utcNow is truncated to microseconds so values survive a PostgreSQL round trip unchanged.
func utcNow() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// Create inserts a new user. A taken email yields ErrDuplicate.
func (r *UserRepository) Create(ctx context.Context, email, passwordHash string) (*models.User, error) {
	now := r.now()
	var id int
	err := r.db.QueryRowContext(ctx, r.dialect.Rebind(insertUserSQL), email, passwordHash, now, now).Scan(&id)
	if err != nil {
		if r.dialect.IsUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return &models.User{
		ID:           id,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, r.dialect.Rebind(selectUserByEmailSQL), email))
	if err != nil {
		return nil, wrapLookup(err, "select user by email")
	}
	return u, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int) (*models.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, r.dialect.Rebind(selectUserByIDSQL), id))
	if err != nil {
		return nil, wrapLookup(err, fmt.Sprintf("select user %d", id))
	}
	return u, nil
}

// Update applies only the non-nil fields of p in a single statement.
func (r *UserRepository) Update(ctx context.Context, id int, p models.UserPatch) (*models.User, error) {
	query, args := buildUserUpdate(p, r.now(), id)
	res, err := r.db.ExecContext(ctx, r.dialect.Rebind(query), args...)
	if err != nil {
		if r.dialect.IsUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("update user %d: %w", id, err)
	}
	if err := requireAffected(res); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func buildUserUpdate(p models.UserPatch, now time.Time, id int) (string, []any) {
	var (
		sets []string
		args []any
	)
	if p.Email != nil {
		sets = append(sets, "email = ?")
		args = append(args, *p.Email)
	}
	if p.FirstName != nil {
		sets = append(sets, "first_name = ?")
		args = append(args, *p.FirstName)
	}
	if p.LastName != nil {
		sets = append(sets, "last_name = ?")
		args = append(args, *p.LastName)
	}
	sets = append(sets, "updated_at = ?")
	args = append(args, now, id)
	return "UPDATE users SET " + strings.Join(sets, ", ") + " WHERE id = ?", args
}

func scanUser(row rowScanner) (*models.User, error) {
	var (
		u         models.User
		firstName sql.NullString
		lastName  sql.NullString
	)
	if err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &firstName, &lastName, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	u.FirstName = nullToPtr(firstName)
	u.LastName = nullToPtr(lastName)
	u.CreatedAt = u.CreatedAt.UTC()
	u.UpdatedAt = u.UpdatedAt.UTC()
	return &u, nil
}

func wrapLookup(err error, what string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return fmt.Errorf("%s: %w", what, err)
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func nullToPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}
