package api

import (
	"html/template"
	"path/filepath"
	"time"

	"github.com/codecompass/codecompass/internal/directory"
)

func LoadTemplates() (*template.Template, error) {
	funcs := template.FuncMap{
		// lastActive renders a profile's freshness label.
		"lastActive": func(t time.Time) string {
			return directory.LastActive(time.Now(), t)
		},
		// splitSkills turns a comma-separated list into trimmed tags.
		"splitSkills": directory.SplitSkills,
		// shortID renders the card's "#abc" id suffix.
		"shortID": directory.ShortID,
		// waURL builds the wa.me contact link (digits only).
		"waURL": directory.WhatsAppURL,
		// xURL builds the x.com contact link (no leading @).
		"xURL": directory.XProfileURL,
		// formatDate renders a creation date for team cards.
		"formatDate": func(t time.Time) string {
			return t.Format("Jan 2, 2006")
		},
		// orDefault substitutes a placeholder for empty values.
		"orDefault": func(s, def string) string {
			if s == "" {
				return def
			}
			return s
		},
	}

	t := template.New("base").Funcs(funcs)

	patterns := []string{
		"web/templates/layouts/*.html",
		"web/templates/pages/*.html",
		"web/templates/partials/*.html",
	}
	for _, p := range patterns {
		if matches, _ := filepath.Glob(p); len(matches) == 0 {
			continue
		}
		if _, err := t.ParseGlob(p); err != nil {
			return nil, err
		}
	}

	return t, nil
}
