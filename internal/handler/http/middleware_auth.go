package http

import (
	"context"
	"net/http"

	"github.com/molecule-insight/insight-server/internal/logger"
	"github.com/molecule-insight/insight-server/internal/utils"
)

// sessionAuth is the validating session middleware guarding the API routes.
//
// It reads the session cookie, validates and parses the signed token via
// [service.AuthService.ParseSessionToken], and on success stores the decoded
// [models.Session] in the request context under [utils.SessionCtxKey] before
// delegating to the next handler.
//
// Requests are rejected with a 401 JSON envelope when:
//   - the cookie is absent ([ErrNoSessionCookie]) or empty
//     ([ErrEmptySessionCookie]);
//   - the token is expired, malformed or signed with the wrong key.
//
// An invalid cookie is also cleared so the browser stops resending it.
func (h *Handler) sessionAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		cookie, err := r.Cookie(sessionCookieName)
		if err != nil {
			log.Err(ErrNoSessionCookie).Send()
			writeError(w, "authentication required", http.StatusUnauthorized)
			return
		}
		if cookie.Value == "" {
			log.Err(ErrEmptySessionCookie).Send()
			writeError(w, "authentication required", http.StatusUnauthorized)
			return
		}

		parsedSession, err := h.services.AuthService.ParseSessionToken(cookie.Value)
		if err != nil {
			log.Err(err).Msg("session token rejected")
			h.clearSessionCookie(w)
			writeError(w, "session expired or invalid", http.StatusUnauthorized)
			return
		}

		// Store the validated session in the context so downstream handlers
		// can retrieve it without re-parsing the token.
		ctx := context.WithValue(r.Context(), utils.SessionCtxKey, parsedSession)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
