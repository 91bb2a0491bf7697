package api

import (
	"net/http"
	"time"

	"github.com/rs/xid"

	"github.com/codecompass/codecompass/internal/auth"
	"github.com/codecompass/codecompass/internal/logger"
	"github.com/codecompass/codecompass/internal/models"
)

const stateCookie = "oauth_state"

func (s *Server) handleAuthPage(w http.ResponseWriter, r *http.Request) {
	if auth.UserFromContext(r.Context()) != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	var notice *profileNotice
	if n := s.Flash.Pop(w, r); n != nil {
		notice = &profileNotice{Kind: n.Kind, Message: n.Message, Detail: n.Detail}
	}
	s.render(w, r, "pages/auth.html", pageData{
		"notice": notice,
	})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	if err := r.ParseForm(); err != nil {
		handleError(w, r, err)
		return
	}
	email := r.PostFormValue("email")

	user, err := s.AuthService.Login(r.Context(), email, r.PostFormValue("password"))
	if err != nil {
		log.Warn("login failed: %v", err)
		s.render(w, r, "pages/auth.html", pageData{
			"email": email,
			"notice": &profileNotice{
				Kind:    "error",
				Message: "Sign in failed",
				Detail:  errorDetail(err),
			},
		})
		return
	}

	s.signIn(w, r, user)
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	if err := r.ParseForm(); err != nil {
		handleError(w, r, err)
		return
	}
	email := r.PostFormValue("email")

	user, err := s.AuthService.Register(r.Context(), email, r.PostFormValue("password"))
	if err != nil {
		log.Warn("registration failed: %v", err)
		s.render(w, r, "pages/auth.html", pageData{
			"email":    email,
			"register": true,
			"notice": &profileNotice{
				Kind:    "error",
				Message: "Registration failed",
				Detail:  errorDetail(err),
			},
		})
		return
	}

	s.signIn(w, r, user)
}

func (s *Server) handleGitHubLogin(w http.ResponseWriter, r *http.Request) {
	if s.GitHub == nil {
		s.Flash.Error(w, "GitHub sign-in unavailable", "GitHub sign-in is not configured on this server.")
		http.Redirect(w, r, "/auth", http.StatusSeeOther)
		return
	}

	state := xid.New().String()
	http.SetCookie(w, &http.Cookie{
		Name:     stateCookie,
		Value:    state,
		Path:     "/",
		Expires:  time.Now().Add(10 * time.Minute),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, s.GitHub.AuthURL(state), http.StatusFound)
}

func (s *Server) handleGitHubCallback(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	if s.GitHub == nil {
		http.Redirect(w, r, "/auth", http.StatusSeeOther)
		return
	}

	clearCookie := &http.Cookie{Name: stateCookie, Value: "", Path: "/", Expires: time.Unix(0, 0), MaxAge: -1}
	http.SetCookie(w, clearCookie)

	cookie, err := r.Cookie(stateCookie)
	if err != nil || cookie.Value == "" || cookie.Value != r.URL.Query().Get("state") {
		log.Warn("oauth state mismatch")
		s.Flash.Error(w, "Sign in failed", "The sign-in attempt could not be verified. Please try again.")
		http.Redirect(w, r, "/auth", http.StatusSeeOther)
		return
	}

	ghUser, err := s.GitHub.Exchange(r.Context(), r.URL.Query().Get("code"))
	if err != nil {
		log.Error("oauth exchange failed: %v", err)
		s.Flash.Error(w, "Sign in failed", "GitHub did not authorize the sign-in. Please try again.")
		http.Redirect(w, r, "/auth", http.StatusSeeOther)
		return
	}

	user, err := s.AuthService.GitHubSignIn(r.Context(), ghUser)
	if err != nil {
		log.Error("github sign-in failed: %v", err)
		s.Flash.Error(w, "Sign in failed", errorDetail(err))
		http.Redirect(w, r, "/auth", http.StatusSeeOther)
		return
	}

	s.signIn(w, r, user)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	auth.ClearSessionCookie(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) signIn(w http.ResponseWriter, r *http.Request, user *models.User) {
	log := logger.FromContext(r.Context())

	token, err := s.Tokens.Generate(user.ID)
	if err != nil {
		log.Error("failed to issue session token: %v", err)
		handleError(w, r, err)
		return
	}

	auth.SetSessionCookie(w, token, s.Tokens.TTL())
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
