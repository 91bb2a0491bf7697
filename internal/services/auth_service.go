package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/xid"

	"github.com/codecompass/codecompass/internal/auth"
	"github.com/codecompass/codecompass/internal/errors"
	"github.com/codecompass/codecompass/internal/logger"
	"github.com/codecompass/codecompass/internal/models"
	"github.com/codecompass/codecompass/internal/repository"
)

// AuthService handles account creation and sign-in
type AuthService interface {
	// Register creates an email/password account and returns it.
	Register(ctx context.Context, email, password string) (*models.User, error)
	// Login verifies credentials and returns the account.
	Login(ctx context.Context, email, password string) (*models.User, error)
	// GitHubSignIn creates or refreshes the account linked to a GitHub
	// identity.
	GitHubSignIn(ctx context.Context, ghUser *auth.GitHubUser) (*models.User, error)
}

type authService struct {
	userRepo repository.UserRepository
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repository.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

func (s *authService) Register(ctx context.Context, email, password string) (*models.User, error) {
	log := logger.FromContext(ctx)

	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, errors.NewValidationError("email", "cannot be empty")
	}
	if len(password) < 8 {
		return nil, errors.NewValidationError("password", "must be at least 8 characters")
	}

	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		log.Error("failed to check existing account: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if existing != nil {
		return nil, errors.NewValidationError("email", "already registered")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		log.Error("failed to hash password: %v", err)
		return nil, errors.NewInternalError(err)
	}

	user, err := s.userRepo.Create(ctx, models.User{
		ID:           xid.New().String(),
		Email:        email,
		PasswordHash: hash,
	})
	if err != nil {
		log.Error("failed to create account: %v", err)
		return nil, errors.NewInternalError(err)
	}

	log.Info("account registered: id=%s", user.ID)
	return user, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*models.User, error) {
	log := logger.FromContext(ctx)

	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		log.Error("failed to look up account: %v", err)
		return nil, errors.NewInternalError(err)
	}
	// Same error for unknown email and wrong password.
	if user == nil || !auth.CheckPassword(user.PasswordHash, password) {
		log.Warn("failed login attempt")
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	log.Info("user logged in: id=%s", user.ID)
	return user, nil
}

func (s *authService) GitHubSignIn(ctx context.Context, ghUser *auth.GitHubUser) (*models.User, error) {
	log := logger.FromContext(ctx)

	email := strings.ToLower(strings.TrimSpace(ghUser.Email))
	if email == "" {
		// GitHub hides the email when the user opted out of sharing it.
		email = fmt.Sprintf("%s@users.noreply.github.com", ghUser.Login)
	}

	user, err := s.userRepo.UpsertByGitHubID(ctx, models.User{
		ID:          xid.New().String(),
		Email:       email,
		GitHubID:    ghUser.ID,
		GitHubLogin: ghUser.Login,
	})
	if err != nil {
		log.Error("failed to upsert github account: %v", err)
		return nil, errors.NewInternalError(err)
	}

	log.Info("github sign-in: id=%s, login=%s", user.ID, user.GitHubLogin)
	return user, nil
}
