package repository

import (
	"context"

	"github.com/codecompass/codecompass/internal/models"
)

// ProfileRepository handles profile data access
type ProfileRepository interface {
	// List returns all profiles ordered by creation time, newest first.
	List(ctx context.Context) ([]models.Profile, error)
	// Get returns the profile for a user id, or (nil, nil) when absent.
	Get(ctx context.Context, id string) (*models.Profile, error)
	// Upsert stores the full row keyed by id. The stored created_at is
	// preserved across overwrites; resubmitting identical state is a no-op.
	Upsert(ctx context.Context, profile models.Profile) (*models.Profile, error)
}
