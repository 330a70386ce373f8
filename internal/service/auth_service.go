package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/hospital-portal/internal/auth"
	"github.com/spec-kit/hospital-portal/internal/config"
	"github.com/spec-kit/hospital-portal/internal/domain"
	"github.com/spec-kit/hospital-portal/internal/repository"
	apperrors "github.com/spec-kit/hospital-portal/pkg/util"
)

// AuthService coordinates login and current-user lookups. The user repository
// is the credential store: it yields the fields needed to build claims, and
// bcrypt compare is the opaque verify step.
type AuthService struct {
	users    repository.UserRepository
	tokenMgr *auth.TokenManager
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, users repository.UserRepository) *AuthService {
	return &AuthService{
		users:    users,
		tokenMgr: auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTLHours),
	}
}

// Login verifies credentials and issues a token. An unknown email and a wrong
// password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, time.Time, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return "", time.Time{}, apperrors.NewUnauthorized("Invalid email or password")
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return "", time.Time{}, apperrors.NewUnauthorized("Invalid email or password")
	}
	return s.tokenMgr.Issue(user)
}

// CurrentUser loads the user record behind validated claims.
func (s *AuthService) CurrentUser(ctx context.Context, claims *auth.Claims) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, claims.UserID())
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewUnauthorized("user not found")
		}
		return nil, apperrors.NewDatabaseError(err)
	}
	return user, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
