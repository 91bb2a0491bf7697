package auth

import (
	"context"
	"net/http"
	"time"

	"github.com/codecompass/codecompass/internal/logger"
	"github.com/codecompass/codecompass/internal/models"
	"github.com/codecompass/codecompass/internal/repository"
)

type contextKey struct{}

// UserFromContext returns the authenticated user, or nil for anonymous
// requests. Components read session state through this and nothing else.
func UserFromContext(ctx context.Context) *models.User {
	if u, ok := ctx.Value(contextKey{}).(*models.User); ok {
		return u
	}
	return nil
}

// SessionMiddleware resolves the session cookie into a user and stores it in
// the request context. It never blocks a request: pages that require a
// session check UserFromContext themselves, everything else renders for
// anonymous visitors too.
func SessionMiddleware(tokens *TokenService, users repository.UserRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookie)
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(w, r)
				return
			}

			log := logger.FromContext(r.Context())

			userID, err := tokens.Validate(cookie.Value)
			if err != nil {
				log.Debug("invalid session token, clearing cookie: %v", err)
				ClearSessionCookie(w)
				next.ServeHTTP(w, r)
				return
			}

			user, err := users.Get(r.Context(), userID)
			if err != nil {
				log.Error("failed to load session user: %v", err)
				next.ServeHTTP(w, r)
				return
			}
			if user == nil {
				log.Warn("session for unknown user %s, clearing cookie", userID)
				ClearSessionCookie(w)
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), contextKey{}, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SetSessionCookie stores a signed session token on the response.
func SetSessionCookie(w http.ResponseWriter, token string, ttl time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(ttl),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		// Secure: true when behind HTTPS (set via environment/config)
	})
}

// ClearSessionCookie signs the user out; subsequent session queries see no user.
func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:    SessionCookie,
		Value:   "",
		Path:    "/",
		Expires: time.Unix(0, 0),
		MaxAge:  -1,
	})
}
