package api

import (
	"net/http"

	"github.com/codecompass/codecompass/internal/logger"
)

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	log.Debug("rendering home page")

	// Counts are decoration; the landing page renders fine without them.
	var profileCount, teamCount int
	if all, _, err := s.DirectoryService.Browse(r.Context(), ""); err != nil {
		log.Warn("failed to count profiles: %v", err)
	} else {
		profileCount = len(all)
	}
	if teams, err := s.TeamService.ListTeams(r.Context()); err != nil {
		log.Warn("failed to count teams: %v", err)
	} else {
		teamCount = len(teams)
	}

	s.render(w, r, "pages/home.html", pageData{
		"profile_count": profileCount,
		"team_count":    teamCount,
	})
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	log.Warn("404: attempted to access non-existent route: %s", r.URL.Path)

	w.WriteHeader(http.StatusNotFound)
	s.render(w, r, "pages/notfound.html", pageData{
		"attempted_path": r.URL.Path,
	})
}
