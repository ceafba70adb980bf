package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/notes-service/internal/auth"
	"github.com/spec-kit/notes-service/internal/config"
	"github.com/spec-kit/notes-service/internal/domain"
	"github.com/spec-kit/notes-service/internal/events"
	"github.com/spec-kit/notes-service/internal/repository"
	apperrors "github.com/spec-kit/notes-service/pkg/util"
)

// AuthService coordinates registration, login, logout and profile flows.
type AuthService struct {
	users      repository.UserRepository
	blacklist  auth.TokenBlacklist
	tokenMgr   *auth.TokenManager
	dispatcher events.Dispatcher
	bcryptCost int
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig, users repository.UserRepository, blacklist auth.TokenBlacklist, dispatcher events.Dispatcher) *AuthService {
	return &AuthService{
		users:      users,
		blacklist:  blacklist,
		tokenMgr:   auth.NewTokenManager(cfg.JWTSecret, cfg.TokenLifetime),
		dispatcher: dispatcher,
		bcryptCost: cfg.BcryptCost,
	}
}

// Register creates a new account with the default user role.
func (s *AuthService) Register(ctx context.Context, email, fullName, username, password string) (*domain.Profile, error) {
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, apperrors.NewConflict("a user with this email is already registered")
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NewInternalError(err)
	}

	if _, err := s.users.GetByUsername(ctx, username); err == nil {
		return nil, apperrors.NewConflict("this username is already taken")
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NewInternalError(err)
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	user := &domain.User{
		Email:        email,
		FullName:     fullName,
		Username:     username,
		Role:         domain.RoleUser,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	_ = s.dispatcher.Publish(ctx, events.New(events.EventUserRegistered, user.ID, 0))

	profile := user.Profile()
	return &profile, nil
}

// Login authenticates by email and password and issues a fresh token. The
// returned display string is the token expiry rendered for humans; clients
// must not parse it.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", "", apperrors.NewUnauthorized("wrong email or password")
		}
		return "", "", apperrors.NewInternalError(err)
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return "", "", apperrors.NewUnauthorized("wrong email or password")
	}

	token, _, display, err := s.tokenMgr.Issue(user.ID, user.Role)
	if err != nil {
		return "", "", apperrors.NewInternalError(err)
	}

	_ = s.dispatcher.Publish(ctx, events.New(events.EventUserLoggedIn, user.ID, 0))
	return token, display, nil
}

// Logout inserts the current token into the revocation store for the
// remainder of its natural life. Repeats are idempotent: the TTL is always
// recomputed from the same immutable expiry.
func (s *AuthService) Logout(ctx context.Context, claims *auth.Claims, rawToken string) error {
	ttl := time.Duration(claims.ExpiresAt-time.Now().Unix()) * time.Second
	if ttl <= 0 {
		// Unreachable behind the access guard except under clock skew
		// between its check and this one.
		return apperrors.NewTokenExpired()
	}
	if err := s.blacklist.Revoke(ctx, rawToken, ttl); err != nil {
		return apperrors.NewInternalError(err)
	}

	_ = s.dispatcher.Publish(ctx, events.New(events.EventUserLoggedOut, claims.Subject, 0))
	return nil
}

// Profile returns the client-facing view of the given account.
func (s *AuthService) Profile(ctx context.Context, userID uint64) (*domain.Profile, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("user profile not found")
		}
		return nil, apperrors.NewInternalError(err)
	}
	profile := user.Profile()
	return &profile, nil
}

// ListProfiles returns every account profile, newest first. Admin only;
// enforcement lives in the route composition.
func (s *AuthService) ListProfiles(ctx context.Context) ([]domain.Profile, error) {
	profiles, err := s.users.ListProfiles(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return profiles, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
