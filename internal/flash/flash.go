// Package flash carries one-shot notices across a redirect: a form POST sets
// a notice, the follow-up GET pops and renders it. Success notices expire a
// fixed interval after being set, so a stale banner never survives a slow
// reload; the interval is judged against an injected clock to keep the
// behavior testable without real delays.
package flash

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const cookieName = "flash"

// Notice kinds.
const (
	KindSuccess = "success"
	KindError   = "error"
	KindAuth    = "auth"
)

// Notice is a transient message for the next page render.
type Notice struct {
	Kind    string
	Message string
	Detail  string
	SetAt   time.Time
}

// Manager sets and pops notices.
type Manager struct {
	ttl time.Duration
	now func() time.Time
}

// Option configures a Manager.
type Option func(*Manager)

// WithClock overrides the time source. Tests use this to cross the expiry
// boundary without sleeping.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		m.now = now
	}
}

// NewManager creates a Manager whose success notices expire ttl after being set.
func NewManager(ttl time.Duration, opts ...Option) *Manager {
	m := &Manager{ttl: ttl, now: time.Now}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Success sets a success notice with an optional detail line.
func (m *Manager) Success(w http.ResponseWriter, message, detail string) {
	m.set(w, Notice{Kind: KindSuccess, Message: message, Detail: detail})
}

// Error sets an error notice.
func (m *Manager) Error(w http.ResponseWriter, message, detail string) {
	m.set(w, Notice{Kind: KindError, Message: message, Detail: detail})
}

// AuthRequired sets the authentication-required notice.
func (m *Manager) AuthRequired(w http.ResponseWriter, detail string) {
	m.set(w, Notice{Kind: KindAuth, Message: "Authentication Required", Detail: detail})
}

func (m *Manager) set(w http.ResponseWriter, n Notice) {
	n.SetAt = m.now()
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    encode(n),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Pop returns the pending notice, if any, and always clears it. Success
// notices past their expiry window return nil: the indicator has already
// transitioned back to idle.
func (m *Manager) Pop(w http.ResponseWriter, r *http.Request) *Notice {
	cookie, err := r.Cookie(cookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}

	http.SetCookie(w, &http.Cookie{
		Name:    cookieName,
		Value:   "",
		Path:    "/",
		Expires: time.Unix(0, 0),
		MaxAge:  -1,
	})

	n, err := decode(cookie.Value)
	if err != nil {
		return nil
	}
	if n.Kind == KindSuccess && m.now().Sub(n.SetAt) > m.ttl {
		return nil
	}
	return n
}

func encode(n Notice) string {
	raw := fmt.Sprintf("%s|%d|%s|%s", n.Kind, n.SetAt.UnixMilli(), n.Message, n.Detail)
	return base64.URLEncoding.EncodeToString([]byte(raw))
}

func decode(value string) (*Notice, error) {
	raw, err := base64.URLEncoding.DecodeString(value)
	if err != nil {
		return nil, err
	}
	parts := strings.SplitN(string(raw), "|", 4)
	if len(parts) != 4 {
		return nil, fmt.Errorf("flash: malformed notice")
	}
	millis, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("flash: malformed timestamp: %w", err)
	}
	return &Notice{
		Kind:    parts[0],
		SetAt:   time.UnixMilli(millis),
		Message: parts[2],
		Detail:  parts[3],
	}, nil
}
