package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/codecompass/codecompass/internal/auth"
)

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)
	r.Use(securityHeadersMiddleware)
	r.Use(auth.SessionMiddleware(s.Tokens, s.Users))

	r.Get("/", s.handleHome)
	r.Get("/browse", s.handleBrowse)
	r.Get("/teams", s.handleTeams)
	r.Post("/teams", s.handleCreateTeam)
	r.Get("/profile", s.handleProfile)
	r.Post("/profile", s.handleSaveProfile)

	r.Get("/auth", s.handleAuthPage)
	r.Post("/auth/login", s.handleLogin)
	r.Post("/auth/register", s.handleRegister)
	r.Get("/auth/github/login", s.handleGitHubLogin)
	r.Get("/auth/github/callback", s.handleGitHubCallback)
	r.Post("/auth/logout", s.handleLogout)

	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir("web/static"))))
	r.NotFound(s.handleNotFound)
	return r
}
