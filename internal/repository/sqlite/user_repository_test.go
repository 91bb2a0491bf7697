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

type UserRepositorySuite struct {
	suite.Suite
	db   *sql.DB
	repo repository.UserRepository
}

func (s *UserRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.repo = sqlite.NewUserRepository(s.db)
}

func (s *UserRepositorySuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func (s *UserRepositorySuite) TestCreateAndGet() {
	ctx := context.Background()

	created, err := s.repo.Create(ctx, models.User{
		ID:           "u-1",
		Email:        "ada@example.edu",
		PasswordHash: "hash",
	})
	s.Require().NoError(err)
	s.False(created.CreatedAt.IsZero())

	got, err := s.repo.Get(ctx, "u-1")
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Equal("ada@example.edu", got.Email)

	byEmail, err := s.repo.GetByEmail(ctx, "ada@example.edu")
	s.Require().NoError(err)
	s.Require().NotNil(byEmail)
	s.Equal("u-1", byEmail.ID)
}

func (s *UserRepositorySuite) TestGet_MissingReturnsNil() {
	got, err := s.repo.Get(context.Background(), "nobody")
	s.NoError(err)
	s.Nil(got)

	byEmail, err := s.repo.GetByEmail(context.Background(), "nobody@example.edu")
	s.NoError(err)
	s.Nil(byEmail)
}

func (s *UserRepositorySuite) TestCreate_DuplicateEmailFails() {
	ctx := context.Background()

	_, err := s.repo.Create(ctx, models.User{ID: "u-1", Email: "ada@example.edu"})
	s.Require().NoError(err)

	_, err = s.repo.Create(ctx, models.User{ID: "u-2", Email: "ada@example.edu"})
	s.Error(err)
}

func (s *UserRepositorySuite) TestUpsertByGitHubID_SecondSignInKeepsRow() {
	ctx := context.Background()

	first, err := s.repo.UpsertByGitHubID(ctx, models.User{
		ID:          "u-1",
		Email:       "ada@example.edu",
		GitHubID:    42,
		GitHubLogin: "ada",
	})
	s.Require().NoError(err)

	// Same GitHub identity signing in again with a renamed account.
	second, err := s.repo.UpsertByGitHubID(ctx, models.User{
		ID:          "u-ignored",
		Email:       "ada@example.edu",
		GitHubID:    42,
		GitHubLogin: "ada-l",
	})
	s.Require().NoError(err)

	s.Equal(first.ID, second.ID, "existing account is kept")
	s.Equal("ada-l", second.GitHubLogin)

	var count int
	err = s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count)
	s.Require().NoError(err)
	s.Equal(1, count)
}

func TestUserRepositorySuite(t *testing.T) {
	suite.Run(t, new(UserRepositorySuite))
}
