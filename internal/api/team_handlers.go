package api

import (
	"net/http"

	"github.com/codecompass/codecompass/internal/auth"
	"github.com/codecompass/codecompass/internal/logger"
	"github.com/codecompass/codecompass/internal/models"
)

func (s *Server) handleTeams(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	// A failed listing is logged and the page renders with an empty board;
	// the creation form must stay usable even when reads are down.
	teams, err := s.TeamService.ListTeams(r.Context())
	if err != nil {
		log.Error("failed to fetch teams: %v", err)
		teams = nil
	}

	var notice *profileNotice
	if n := s.Flash.Pop(w, r); n != nil {
		notice = &profileNotice{Kind: n.Kind, Message: n.Message, Detail: n.Detail}
	}

	s.render(w, r, "pages/teams.html", pageData{
		"teams":  teams,
		"form":   models.TeamForm{},
		"notice": notice,
	})
}

func (s *Server) handleCreateTeam(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	if err := r.ParseForm(); err != nil {
		handleError(w, r, err)
		return
	}
	form := models.TeamForm{
		TeamName:      r.PostFormValue("team_name"),
		HackathonName: r.PostFormValue("hackathon_name"),
		NeededSkills:  r.PostFormValue("needed_skills"),
		Timeline:      r.PostFormValue("timeline"),
		WhatsappGroup: r.PostFormValue("whatsapp_group"),
		Description:   r.PostFormValue("description"),
	}

	user := auth.UserFromContext(r.Context())
	if user == nil {
		s.Flash.AuthRequired(w, "Please log in to create a team")
		http.Redirect(w, r, "/teams", http.StatusSeeOther)
		return
	}

	if _, err := s.TeamService.CreateTeam(r.Context(), user.ID, form); err != nil {
		log.Error("failed to create team: %v", err)

		teams, listErr := s.TeamService.ListTeams(r.Context())
		if listErr != nil {
			log.Error("failed to fetch teams: %v", listErr)
			teams = nil
		}
		s.render(w, r, "pages/teams.html", pageData{
			"teams": teams,
			"form":  form,
			"notice": &profileNotice{
				Kind:    "error",
				Message: "Error",
				Detail:  errorDetail(err),
			},
		})
		return
	}

	s.Flash.Success(w, "Team creation request submitted", "Broadcasting to all active users. Check back soon for responses.")
	http.Redirect(w, r, "/teams", http.StatusSeeOther)
}
