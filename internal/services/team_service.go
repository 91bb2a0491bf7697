package services

import (
	"context"

	"github.com/codecompass/codecompass/internal/errors"
	"github.com/codecompass/codecompass/internal/logger"
	"github.com/codecompass/codecompass/internal/models"
	"github.com/codecompass/codecompass/internal/repository"
)

// TeamService handles team browsing and creation
type TeamService interface {
	// ListTeams returns all team postings, newest first.
	ListTeams(ctx context.Context) ([]models.Team, error)
	// CreateTeam inserts a new posting for the given user. An empty userID
	// fails the precondition before any write is attempted.
	CreateTeam(ctx context.Context, userID string, form models.TeamForm) (*models.Team, error)
}

type teamService struct {
	teamRepo repository.TeamRepository
}

// NewTeamService creates a new TeamService
func NewTeamService(teamRepo repository.TeamRepository) TeamService {
	return &teamService{teamRepo: teamRepo}
}

func (s *teamService) ListTeams(ctx context.Context) ([]models.Team, error) {
	log := logger.FromContext(ctx)
	log.Debug("listing teams")

	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		log.Error("failed to list teams: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return teams, nil
}

func (s *teamService) CreateTeam(ctx context.Context, userID string, form models.TeamForm) (*models.Team, error) {
	log := logger.FromContext(ctx)

	if userID == "" {
		log.Warn("team creation without a session")
		return nil, errors.NewUnauthorizedError("Please log in to create a team")
	}

	team, err := s.teamRepo.Insert(ctx, form.ToTeam(userID))
	if err != nil {
		log.Error("failed to create team: %v", err)
		return nil, errors.NewInternalError(err)
	}

	log.Info("team created: id=%s, user_id=%s", team.ID, userID)
	return team, nil
}
