// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MoleculeInsight Authors

package http

import (
	"net/http"

	"github.com/molecule-insight/insight-server/internal/config"
)

// sessionCookieName is the cookie the signed session token travels in.
const sessionCookieName = "user_session"

// setSessionCookie writes the signed session token to the response. The
// cookie is HttpOnly and SameSite=Lax; the Secure attribute is added only in
// production so local development over plain HTTP keeps working.
func (h *Handler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.cfg.Auth.TokenDuration.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   h.cfg.App.Environment == config.EnvProduction,
	})
}

// clearSessionCookie expires the session cookie immediately.
func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   h.cfg.App.Environment == config.EnvProduction,
	})
}
