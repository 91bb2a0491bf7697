package api

import (
	"net/http"

	"github.com/codecompass/codecompass/internal/auth"
	"github.com/codecompass/codecompass/internal/logger"
	"github.com/codecompass/codecompass/internal/models"
)

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	user := auth.UserFromContext(r.Context())
	if user == nil {
		http.Redirect(w, r, "/auth", http.StatusSeeOther)
		return
	}

	form := models.EmptyProfileForm()
	profile, err := s.ProfileService.LoadOwn(r.Context(), user.ID)
	if err != nil {
		// The editor still opens on a load failure; the user sees a blank
		// form plus a notice instead of a dead page.
		log.Error("failed to load profile for editor: %v", err)
		s.renderProfileForm(w, r, form, &profileNotice{
			Kind:    "error",
			Message: "Failed to load profile",
			Detail:  errorDetail(err),
		})
		return
	}
	if profile != nil {
		form = models.FormFromProfile(*profile)
	}

	var notice *profileNotice
	if n := s.Flash.Pop(w, r); n != nil {
		notice = &profileNotice{Kind: n.Kind, Message: n.Message, Detail: n.Detail}
	}
	s.renderProfileForm(w, r, form, notice)
}

func (s *Server) handleSaveProfile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	user := auth.UserFromContext(r.Context())
	if user == nil {
		http.Redirect(w, r, "/auth", http.StatusSeeOther)
		return
	}

	if err := r.ParseForm(); err != nil {
		handleError(w, r, err)
		return
	}
	form := models.ProfileForm{
		Name:            r.PostFormValue("name"),
		Year:            r.PostFormValue("year"),
		Skills:          r.PostFormValue("skills"),
		Interests:       r.PostFormValue("interests"),
		Whatsapp:        r.PostFormValue("whatsapp"),
		Twitter:         r.PostFormValue("twitter"),
		WhatsappVisible: r.PostFormValue("whatsapp_visible") == "on",
		TwitterVisible:  r.PostFormValue("twitter_visible") == "on",
	}

	if _, err := s.ProfileService.Save(r.Context(), user.ID, form); err != nil {
		// Re-render with the submitted values so nothing typed is lost.
		log.Error("failed to save profile: %v", err)
		s.renderProfileForm(w, r, form, &profileNotice{
			Kind:    "error",
			Message: "Error",
			Detail:  errorDetail(err),
		})
		return
	}

	s.Flash.Success(w, "Profile initialized successfully", "Ready to connect with fellow hackers. Your profile is now discoverable.")
	http.Redirect(w, r, "/profile", http.StatusSeeOther)
}

type profileNotice struct {
	Kind    string
	Message string
	Detail  string
}

func (s *Server) renderProfileForm(w http.ResponseWriter, r *http.Request, form models.ProfileForm, notice *profileNotice) {
	s.render(w, r, "pages/profile.html", pageData{
		"form":      form,
		"completed": form.CompletedFields(),
		"notice":    notice,
	})
}
