package directory

import (
	"fmt"
	"strings"
	"time"

	"github.com/codecompass/codecompass/internal/models"
)

// Displayable reports whether a profile is complete enough for the directory:
// a name plus at least one of skills or interests.
func Displayable(p models.Profile) bool {
	return p.Name != "" && (p.Skills != "" || p.Interests != "")
}

// FilterDisplayable returns the profiles eligible to appear in the directory,
// preserving input order.
func FilterDisplayable(profiles []models.Profile) []models.Profile {
	out := make([]models.Profile, 0, len(profiles))
	for _, p := range profiles {
		if Displayable(p) {
			out = append(out, p)
		}
	}
	return out
}

// Search filters profiles by case-insensitive substring match against name,
// skills and interests. A profile matches if any of the three fields contains
// the query. An empty query returns the full input set, not the previous
// result: searching is always a pure function of (profiles, query).
func Search(profiles []models.Profile, query string) []models.Profile {
	if query == "" {
		return profiles
	}
	q := strings.ToLower(query)

	out := make([]models.Profile, 0, len(profiles))
	for _, p := range profiles {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Skills), q) ||
			strings.Contains(strings.ToLower(p.Interests), q) {
			out = append(out, p)
		}
	}
	return out
}

// LastActive renders a profile's freshness label from its creation time.
// Under an hour is "Just now", under a day counts hours, everything else
// counts days. Callers pass now so the label is deterministic in tests and
// never cached stale.
func LastActive(now, createdAt time.Time) string {
	hours := int(now.Sub(createdAt).Hours())
	if hours < 1 {
		return "Just now"
	}
	if hours < 24 {
		return fmt.Sprintf("%d hours ago", hours)
	}
	return fmt.Sprintf("%d days ago", hours/24)
}

// SplitSkills turns a comma-separated skill list into trimmed tags,
// dropping empty entries.
func SplitSkills(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if tag := strings.TrimSpace(part); tag != "" {
			out = append(out, tag)
		}
	}
	return out
}

// ShortID returns the last three characters of a profile ID, the card's
// "#abc" suffix.
func ShortID(id string) string {
	if len(id) <= 3 {
		return id
	}
	return id[len(id)-3:]
}

// WhatsAppURL builds the wa.me link for a stored phone number, keeping
// digits only.
func WhatsAppURL(phone string) string {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	return "https://wa.me/" + digits.String()
}

// XProfileURL builds the x.com link for a stored handle, dropping a leading @.
func XProfileURL(handle string) string {
	return "https://x.com/" + strings.TrimPrefix(handle, "@")
}
