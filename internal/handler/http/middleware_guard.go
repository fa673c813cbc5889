package http

import (
	"net/http"
	"strings"
)

// authPages are the routes only a signed-out visitor should see.
var authPages = map[string]bool{
	"/login":   true,
	"/sign-up": true,
}

// pageGuard is the presence-only route guard over the page shell.
//
// Unlike sessionAuth it never validates the token: the decision is made on
// cookie presence alone, and an expired cookie is caught by the first API call
// the page makes. The table is:
//
//   - protected page, no cookie  → redirect to /login
//   - auth page, cookie present  → redirect to /
//   - otherwise                  → serve the page
func (h *Handler) pageGuard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hasSession := false
		if cookie, err := r.Cookie(sessionCookieName); err == nil && cookie.Value != "" {
			hasSession = true
		}

		if authPages[strings.TrimSuffix(r.URL.Path, "/")] || authPages[r.URL.Path] {
			if hasSession {
				http.Redirect(w, r, "/", http.StatusTemporaryRedirect)
				return
			}
			next.ServeHTTP(w, r)
			return
		}

		if !hasSession {
			http.Redirect(w, r, "/login", http.StatusTemporaryRedirect)
			return
		}

		next.ServeHTTP(w, r)
	})
}
