package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/codecompass/codecompass/internal/auth"
	"github.com/codecompass/codecompass/internal/models"
	"github.com/codecompass/codecompass/internal/testutil/mocks"
)

func sessionHandler(t *testing.T, tokens *auth.TokenService, users *mocks.MockUserRepository) (http.Handler, *models.User) {
	t.Helper()

	captured := &models.User{}
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if u := auth.UserFromContext(r.Context()); u != nil {
			*captured = *u
		}
		w.WriteHeader(http.StatusOK)
	})
	return auth.SessionMiddleware(tokens, users)(inner), captured
}

func TestSessionMiddleware_NoCookieIsAnonymous(t *testing.T) {
	tokens, err := auth.NewTokenService("0123456789abcdef", time.Hour)
	require.NoError(t, err)
	users := new(mocks.MockUserRepository)

	handler, captured := sessionHandler(t, tokens, users)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, captured.ID)
	users.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestSessionMiddleware_ValidCookieLoadsUser(t *testing.T) {
	tokens, err := auth.NewTokenService("0123456789abcdef", time.Hour)
	require.NoError(t, err)

	users := new(mocks.MockUserRepository)
	users.On("Get", mock.Anything, "user-1").Return(&models.User{ID: "user-1", Email: "ada@example.edu"}, nil)

	handler, captured := sessionHandler(t, tokens, users)

	token, err := tokens.Generate("user-1")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: auth.SessionCookie, Value: token})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "user-1", captured.ID)
	assert.Equal(t, "ada@example.edu", captured.Email)
	users.AssertExpectations(t)
}

func TestSessionMiddleware_InvalidTokenClearsCookie(t *testing.T) {
	tokens, err := auth.NewTokenService("0123456789abcdef", time.Hour)
	require.NoError(t, err)
	users := new(mocks.MockUserRepository)

	handler, captured := sessionHandler(t, tokens, users)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: auth.SessionCookie, Value: "garbage"})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code, "invalid session never blocks the request")
	assert.Empty(t, captured.ID)

	cleared := false
	for _, c := range rec.Result().Cookies() {
		if c.Name == auth.SessionCookie && c.MaxAge < 0 {
			cleared = true
		}
	}
	assert.True(t, cleared, "bad cookie should be cleared")
}

func TestSessionMiddleware_UnknownUserIsAnonymous(t *testing.T) {
	tokens, err := auth.NewTokenService("0123456789abcdef", time.Hour)
	require.NoError(t, err)

	users := new(mocks.MockUserRepository)
	users.On("Get", mock.Anything, "ghost").Return(nil, nil)

	handler, captured := sessionHandler(t, tokens, users)

	token, err := tokens.Generate("ghost")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: auth.SessionCookie, Value: token})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, captured.ID)
}
