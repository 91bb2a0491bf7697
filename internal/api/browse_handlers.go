package api

import (
	"net/http"

	"github.com/codecompass/codecompass/internal/logger"
)

func (s *Server) handleBrowse(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	query := r.URL.Query().Get("q")
	log.Debug("rendering browse page: query=%q", query)

	all, matches, err := s.DirectoryService.Browse(r.Context(), query)
	if err != nil {
		// Read failure: a notice plus an empty result set, distinct in the
		// template from "empty but successful".
		log.Error("failed to fetch profiles: %v", err)
		s.render(w, r, "pages/browse.html", pageData{
			"query":      query,
			"profiles":   nil,
			"total":      0,
			"load_error": "Failed to fetch profiles",
		})
		return
	}

	s.render(w, r, "pages/browse.html", pageData{
		"query":    query,
		"profiles": matches,
		"total":    len(all),
	})
}
