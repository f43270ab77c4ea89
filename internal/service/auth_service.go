package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"bellehair/internal/domain"
	"bellehair/internal/repository"
)

// ErrUnauthorized is returned when no account matches the login email.
var ErrUnauthorized = errors.New("unauthorized")

// AuthService performs the demo login: a lookup by email. The password is
// accepted but never verified against anything — the store holds no
// credential at all. The issued token is an opaque placeholder, not a
// verifiable credential.
type AuthService struct {
	repo repository.CatalogRepository
}

func NewAuthService(repo repository.CatalogRepository) *AuthService {
	return &AuthService{repo: repo}
}

// LoginResult carries the public user projection and the session token.
type LoginResult struct {
	User  domain.UserProjection
	Token string
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	if email == "" {
		return nil, ErrUnauthorized
	}
	u, err := s.repo.GetUserByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUnauthorized
	}
	if err != nil {
		return nil, err
	}
	return &LoginResult{
		User:  u.Projection(),
		Token: uuid.NewString(),
	}, nil
}
