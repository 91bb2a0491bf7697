package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/codecompass/codecompass/internal/auth"
	apperrors "github.com/codecompass/codecompass/internal/errors"
	"github.com/codecompass/codecompass/internal/models"
	"github.com/codecompass/codecompass/internal/services"
	"github.com/codecompass/codecompass/internal/testutil/mocks"
)

func TestRegister_CreatesAccount(t *testing.T) {
	repo := new(mocks.MockUserRepository)
	repo.On("GetByEmail", mock.Anything, "ada@example.edu").Return(nil, nil)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(u models.User) bool {
		return u.ID != "" && u.Email == "ada@example.edu" && u.PasswordHash != "" && u.PasswordHash != "hunter2!"
	})).Return(&models.User{ID: "u-1", Email: "ada@example.edu"}, nil)

	svc := services.NewAuthService(repo)

	user, err := svc.Register(context.Background(), " Ada@Example.edu ", "hunter2!")
	require.NoError(t, err)
	assert.Equal(t, "u-1", user.ID)
	repo.AssertExpectations(t)
}

func TestRegister_RejectsShortPassword(t *testing.T) {
	repo := new(mocks.MockUserRepository)
	svc := services.NewAuthService(repo)

	_, err := svc.Register(context.Background(), "ada@example.edu", "short")

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrCodeValidation, appErr.Code)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegister_RejectsDuplicateEmail(t *testing.T) {
	repo := new(mocks.MockUserRepository)
	repo.On("GetByEmail", mock.Anything, "ada@example.edu").Return(&models.User{ID: "u-1"}, nil)

	svc := services.NewAuthService(repo)

	_, err := svc.Register(context.Background(), "ada@example.edu", "hunter2!!")

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrCodeValidation, appErr.Code)
	assert.Contains(t, appErr.Message, "already registered")
}

func TestLogin_Succeeds(t *testing.T) {
	hash, err := auth.HashPassword("hunter2!")
	require.NoError(t, err)

	repo := new(mocks.MockUserRepository)
	repo.On("GetByEmail", mock.Anything, "ada@example.edu").Return(&models.User{ID: "u-1", PasswordHash: hash}, nil)

	svc := services.NewAuthService(repo)

	user, err := svc.Login(context.Background(), "ada@example.edu", "hunter2!")
	require.NoError(t, err)
	assert.Equal(t, "u-1", user.ID)
}

func TestLogin_WrongPassword(t *testing.T) {
	hash, err := auth.HashPassword("hunter2!")
	require.NoError(t, err)

	repo := new(mocks.MockUserRepository)
	repo.On("GetByEmail", mock.Anything, "ada@example.edu").Return(&models.User{ID: "u-1", PasswordHash: hash}, nil)

	svc := services.NewAuthService(repo)

	_, err = svc.Login(context.Background(), "ada@example.edu", "wrong")

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrCodeUnauthorized, appErr.Code)
}

func TestLogin_UnknownEmailSameError(t *testing.T) {
	repo := new(mocks.MockUserRepository)
	repo.On("GetByEmail", mock.Anything, "ghost@example.edu").Return(nil, nil)

	svc := services.NewAuthService(repo)

	_, err := svc.Login(context.Background(), "ghost@example.edu", "whatever1")

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrCodeUnauthorized, appErr.Code)
	assert.Equal(t, "invalid email or password", appErr.Message)
}

func TestGitHubSignIn_UpsertsAccount(t *testing.T) {
	repo := new(mocks.MockUserRepository)
	repo.On("UpsertByGitHubID", mock.Anything, mock.MatchedBy(func(u models.User) bool {
		return u.ID != "" && u.GitHubID == 42 && u.Email == "ada@example.edu"
	})).Return(&models.User{ID: "u-1", GitHubID: 42}, nil)

	svc := services.NewAuthService(repo)

	user, err := svc.GitHubSignIn(context.Background(), &auth.GitHubUser{ID: 42, Login: "ada", Email: "Ada@Example.edu"})
	require.NoError(t, err)
	assert.Equal(t, "u-1", user.ID)
}

func TestGitHubSignIn_FallbackEmailWhenHidden(t *testing.T) {
	repo := new(mocks.MockUserRepository)
	repo.On("UpsertByGitHubID", mock.Anything, mock.MatchedBy(func(u models.User) bool {
		return u.Email == "ada@users.noreply.github.com"
	})).Return(&models.User{ID: "u-1"}, nil)

	svc := services.NewAuthService(repo)

	_, err := svc.GitHubSignIn(context.Background(), &auth.GitHubUser{ID: 42, Login: "ada"})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}
