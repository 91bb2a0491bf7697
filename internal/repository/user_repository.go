package repository

import (
	"context"

	"github.com/codecompass/codecompass/internal/models"
)

// UserRepository handles identity-provider account data access
type UserRepository interface {
	// Get returns the user for an id, or (nil, nil) when absent.
	Get(ctx context.Context, id string) (*models.User, error)
	// GetByEmail returns the user for an email, or (nil, nil) when absent.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// Create stores a new user. The caller assigns the id.
	Create(ctx context.Context, user models.User) (*models.User, error)
	// UpsertByGitHubID creates or refreshes the account linked to a GitHub
	// identity and returns the stored row.
	UpsertByGitHubID(ctx context.Context, user models.User) (*models.User, error)
}
