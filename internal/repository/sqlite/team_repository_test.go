package sqlite_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/codecompass/codecompass/internal/models"
	"github.com/codecompass/codecompass/internal/repository"
	"github.com/codecompass/codecompass/internal/repository/sqlite"
	"github.com/codecompass/codecompass/internal/testutil"
)

type TeamRepositorySuite struct {
	suite.Suite
	db   *sql.DB
	repo repository.TeamRepository
}

func (s *TeamRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.repo = sqlite.NewTeamRepository(s.db)
}

func (s *TeamRepositorySuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func (s *TeamRepositorySuite) TestInsert_AssignsIDAndCreatedAt() {
	ctx := context.Background()

	team, err := s.repo.Insert(ctx, models.Team{
		UserID:        "user-1",
		TeamName:      "Nullpointers",
		HackathonName: "SIH 2026",
	})
	s.Require().NoError(err)
	s.Require().NotNil(team)

	s.NotEmpty(team.ID)
	s.False(team.CreatedAt.IsZero())
	s.Equal("Nullpointers", team.TeamName)
}

func (s *TeamRepositorySuite) TestInsert_IdenticalSubmissionsCreateDistinctRows() {
	ctx := context.Background()

	row := models.Team{UserID: "user-1", TeamName: "Nullpointers", HackathonName: "SIH 2026"}

	first, err := s.repo.Insert(ctx, row)
	s.Require().NoError(err)
	second, err := s.repo.Insert(ctx, row)
	s.Require().NoError(err)

	s.NotEqual(first.ID, second.ID)

	var count int
	err = s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM teams`).Scan(&count)
	s.Require().NoError(err)
	s.Equal(2, count)
}

func (s *TeamRepositorySuite) TestInsert_OptionalFieldsMayBeEmpty() {
	team, err := s.repo.Insert(context.Background(), models.Team{UserID: "user-1"})
	s.Require().NoError(err)

	s.Empty(team.NeededSkills)
	s.Empty(team.Timeline)
	s.Empty(team.WhatsappGroup)
	s.Empty(team.Description)
}

func (s *TeamRepositorySuite) TestList_NewestFirst() {
	ctx := context.Background()

	for _, row := range []struct{ id, name, createdAt string }{
		{"t1", "Oldest", "2026-01-01 10:00:00"},
		{"t2", "Middle", "2026-02-01 10:00:00"},
		{"t3", "Newest", "2026-03-01 10:00:00"},
	} {
		_, err := s.db.ExecContext(ctx, `
INSERT INTO teams (id, user_id, team_name, created_at) VALUES (?, 'user-1', ?, ?)`,
			row.id, row.name, row.createdAt)
		s.Require().NoError(err)
	}

	teams, err := s.repo.List(ctx)
	s.Require().NoError(err)
	s.Require().Len(teams, 3)

	s.Equal("Newest", teams[0].TeamName)
	s.Equal("Middle", teams[1].TeamName)
	s.Equal("Oldest", teams[2].TeamName)
}

func TestTeamRepositorySuite(t *testing.T) {
	suite.Run(t, new(TeamRepositorySuite))
}
