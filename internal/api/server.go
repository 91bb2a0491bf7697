package api

import (
	"html/template"
	"net/http"

	"github.com/codecompass/codecompass/internal/auth"
	"github.com/codecompass/codecompass/internal/flash"
	"github.com/codecompass/codecompass/internal/logger"
	"github.com/codecompass/codecompass/internal/repository"
	"github.com/codecompass/codecompass/internal/services"
)

type Server struct {
	DirectoryService services.DirectoryService
	ProfileService   services.ProfileService
	TeamService      services.TeamService
	AuthService      services.AuthService
	Users            repository.UserRepository
	Tokens           *auth.TokenService
	GitHub           *auth.GitHubProvider // nil when GitHub sign-in is not configured
	Flash            *flash.Manager
	Templates        *template.Template
}

type pageData map[string]any

func (s *Server) render(w http.ResponseWriter, r *http.Request, name string, data pageData) {
	if data == nil {
		data = pageData{}
	}
	if _, ok := data["user"]; !ok {
		data["user"] = auth.UserFromContext(r.Context())
	}
	if _, ok := data["path"]; !ok {
		data["path"] = r.URL.Path
	}
	if _, ok := data["github_enabled"]; !ok {
		data["github_enabled"] = s.GitHub != nil
	}

	log := logger.FromContext(r.Context())
	if err := s.Templates.ExecuteTemplate(w, name, data); err != nil {
		log.Error("failed to render template %s: %v", name, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
