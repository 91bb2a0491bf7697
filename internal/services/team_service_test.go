package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/codecompass/codecompass/internal/errors"
	"github.com/codecompass/codecompass/internal/models"
	"github.com/codecompass/codecompass/internal/services"
	"github.com/codecompass/codecompass/internal/testutil/mocks"
)

func TestCreateTeam_RequiresSession(t *testing.T) {
	repo := new(mocks.MockTeamRepository)
	svc := services.NewTeamService(repo)

	_, err := svc.CreateTeam(context.Background(), "", models.TeamForm{TeamName: "Nullpointers"})

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrCodeUnauthorized, appErr.Code)

	// The precondition fails before any write is attempted.
	repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestCreateTeam_InsertsFormState(t *testing.T) {
	form := models.TeamForm{
		TeamName:      "Nullpointers",
		HackathonName: "SIH 2026",
		NeededSkills:  "Frontend, UI/UX",
	}
	want := form.ToTeam("user-1")
	stored := want
	stored.ID = "team-1"

	repo := new(mocks.MockTeamRepository)
	repo.On("Insert", mock.Anything, want).Return(&stored, nil)

	svc := services.NewTeamService(repo)

	team, err := svc.CreateTeam(context.Background(), "user-1", form)
	require.NoError(t, err)
	assert.Equal(t, "team-1", team.ID)
	assert.Equal(t, "user-1", team.UserID)
	repo.AssertExpectations(t)
}

func TestCreateTeam_WriteFailureLeavesNothingCommitted(t *testing.T) {
	repo := new(mocks.MockTeamRepository)
	repo.On("Insert", mock.Anything, mock.Anything).Return(nil, fmt.Errorf("database is locked"))

	svc := services.NewTeamService(repo)

	_, err := svc.CreateTeam(context.Background(), "user-1", models.TeamForm{})

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrCodeInternal, appErr.Code)
}

func TestListTeams(t *testing.T) {
	repo := new(mocks.MockTeamRepository)
	repo.On("List", mock.Anything).Return([]models.Team{{ID: "t1"}, {ID: "t2"}}, nil)

	svc := services.NewTeamService(repo)

	teams, err := svc.ListTeams(context.Background())
	require.NoError(t, err)
	assert.Len(t, teams, 2)
}

func TestListTeams_ReadFailure(t *testing.T) {
	repo := new(mocks.MockTeamRepository)
	repo.On("List", mock.Anything).Return(nil, fmt.Errorf("disk I/O error"))

	svc := services.NewTeamService(repo)

	_, err := svc.ListTeams(context.Background())
	assert.Error(t, err)
}
