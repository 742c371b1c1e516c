package web

import (
	"net/http"

	"github.com/google/uuid"
)

const visitorCookieName = "smartcampus_visitor"

// visitorID returns the id identifying the browser behind r, issuing a new
// random id when the request has no valid visitor cookie.
func visitorID(w http.ResponseWriter, r *http.Request, secure bool) string {
	if cookie, err := r.Cookie(visitorCookieName); err == nil {
		if id, err := uuid.Parse(cookie.Value); err == nil {
			return id.String()
		}
	}

	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     visitorCookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   secure,
	})
	return id
}
