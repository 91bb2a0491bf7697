package repository

import (
	"context"

	"github.com/codecompass/codecompass/internal/models"
)

// TeamRepository handles team data access
type TeamRepository interface {
	// List returns all teams ordered by creation time, newest first.
	List(ctx context.Context) ([]models.Team, error)
	// Insert stores a new team, assigning id and created_at. Identical
	// submissions always produce distinct rows.
	Insert(ctx context.Context, team models.Team) (*models.Team, error)
}
