package httpapi

import (
	"net/http"

	"github.com/yourorg/housing-site/internal/session"
)

const sessionCookie = "site_session"

// sessionFor returns the visitor's session, issuing a cookie when the
// session is new or its id changed.
func sessionFor(w http.ResponseWriter, req *http.Request, sessions *session.Manager, secure bool) *session.Session {
	var id string
	if c, err := req.Cookie(sessionCookie); err == nil {
		id = c.Value
	}
	s := sessions.Ensure(req.Context(), id)
	if s.ID != id {
		http.SetCookie(w, &http.Cookie{
			Name:     sessionCookie,
			Value:    s.ID,
			Path:     "/",
			HttpOnly: true,
			Secure:   secure,
			SameSite: http.SameSiteLaxMode,
		})
	}
	return s
}
