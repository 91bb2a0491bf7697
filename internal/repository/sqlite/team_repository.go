package sqlite

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/codecompass/codecompass/internal/logger"
	"github.com/codecompass/codecompass/internal/models"
	"github.com/codecompass/codecompass/internal/repository"
)

type teamRepository struct {
	db *sql.DB
}

// NewTeamRepository creates a new TeamRepository implementation
func NewTeamRepository(db *sql.DB) repository.TeamRepository {
	return &teamRepository{db: db}
}

func (r *teamRepository) List(ctx context.Context) ([]models.Team, error) {
	log := logger.FromContext(ctx).WithPrefix("team_repo")
	log.Debug("listing teams")

	sqlStr, args, err := sqlBuilder.
		Select(teamColumns...).
		From("teams").
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to list teams: %v", err)
		return nil, err
	}
	defer rows.Close()

	var teams []models.Team
	for rows.Next() {
		var t models.Team
		if err := rows.Scan(&t.ID, &t.UserID, &t.TeamName, &t.HackathonName, &t.NeededSkills, &t.Timeline, &t.WhatsappGroup, &t.Description, &t.CreatedAt); err != nil {
			log.Error("failed to scan team row: %v", err)
			return nil, err
		}
		teams = append(teams, t)
	}

	log.Debug("found %d teams", len(teams))
	return teams, rows.Err()
}

func (r *teamRepository) Insert(ctx context.Context, team models.Team) (*models.Team, error) {
	log := logger.FromContext(ctx).WithPrefix("team_repo")

	team.ID = uuid.NewString()
	log.Debug("inserting team: id=%s, user_id=%s", team.ID, team.UserID)

	var t models.Team
	err := r.db.QueryRowContext(ctx, `
INSERT INTO teams (id, user_id, team_name, hackathon_name, needed_skills, timeline, whatsapp_group, description)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
RETURNING id, user_id, team_name, hackathon_name, needed_skills, timeline, whatsapp_group, description, created_at
`, team.ID, team.UserID, team.TeamName, team.HackathonName, team.NeededSkills, team.Timeline, team.WhatsappGroup, team.Description).
		Scan(&t.ID, &t.UserID, &t.TeamName, &t.HackathonName, &t.NeededSkills, &t.Timeline, &t.WhatsappGroup, &t.Description, &t.CreatedAt)
	if err != nil {
		log.Error("failed to insert team: %v", err)
		return nil, err
	}
	log.Debug("team inserted: id=%s", t.ID)
	return &t, nil
}
