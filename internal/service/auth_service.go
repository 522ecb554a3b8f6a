package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"bookmarks_api/internal/models"
	"bookmarks_api/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// AuthService handles sign-up and sign-in.
type AuthService struct {
	users  repository.Users
	tokens *TokenService
}

func NewAuthService(users repository.Users, tokens *TokenService) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// SignUp validates the credentials, hashes the password and creates the user.
// A taken email is reported as ErrConflict.
func (s *AuthService) SignUp(ctx context.Context, in models.Credentials) (*models.User, error) {
	in.Normalize()
	if err := validationFailure(in.Validate()); err != nil {
		return nil, err
	}

	hash, err := hashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	u, err := s.users.Create(ctx, in.Email, hash)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrConflict
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

// SignIn checks credentials and returns an access token. Unknown email and wrong
// password both yield ErrInvalidCredentials.
func (s *AuthService) SignIn(ctx context.Context, in models.Credentials) (string, error) {
	in.Normalize()
	if err := validationFailure(in.Validate()); err != nil {
		return "", err
	}

	u, err := s.users.GetByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// keep the unknown-email path as slow as a real comparison
			_ = verifyPassword(dummyHash(), in.Password)
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("lookup user: %w", err)
	}

	if err := verifyPassword(u.PasswordHash, in.Password); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.tokens.Issue(u)
}

// ParseToken verifies an access token and returns the user id it was issued for.
func (s *AuthService) ParseToken(accessToken string) (int, error) {
	return s.tokens.Parse(accessToken)
}

// helper: hash password safely
func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", NewFieldError("password", "must be at most 72 bytes")
		}
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// helper: verify password against hash
func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

var (
	dummyOnce sync.Once
	dummy     string
)

func dummyHash() string {
	dummyOnce.Do(func() {
		h, err := bcrypt.GenerateFromPassword([]byte("not-a-real-password"), bcrypt.DefaultCost)
		if err == nil {
			dummy = string(h)
		}
	})
	return dummy
}
