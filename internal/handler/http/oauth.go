// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MoleculeInsight Authors

package http

import (
	"errors"
	"net/http"

	"github.com/molecule-insight/insight-server/internal/logger"
	"github.com/molecule-insight/insight-server/internal/service"
)

// googleAuth starts the Google OAuth flow: it answers a temporary redirect to
// Google's authorize URL with the intent (signup or signin) carried in the
// state parameter.
func (h *Handler) googleAuth(w http.ResponseWriter, r *http.Request) {
	intent := "signin"
	if r.URL.Query().Get("signup") == "true" {
		intent = "signup"
	}

	http.Redirect(w, r, h.services.AuthService.GoogleAuthURL(intent), http.StatusTemporaryRedirect)
}

// googleCallback finishes the Google OAuth flow. Outcomes are communicated to
// the frontend entirely through redirects: success lands on "/" with a marker
// query parameter, failures land on the login or sign-up page with an error
// code the page knows how to display.
func (h *Handler) googleCallback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	query := r.URL.Query()
	code := query.Get("code")
	intent := query.Get("state")

	if errCode := query.Get("error"); errCode != "" || code == "" {
		log.Error().Str("error", errCode).Msg("google callback without authorization code")
		http.Redirect(w, r, "/login?error=oauth_failed", http.StatusTemporaryRedirect)
		return
	}

	user, newUser, err := h.services.AuthService.GoogleCallback(ctx, code, intent)
	if err != nil {
		log.Err(err).Str("intent", intent).Msg("google callback failed")

		switch {
		case errors.Is(err, service.ErrOAuthNoAccount):
			http.Redirect(w, r, "/login?error=no_account", http.StatusTemporaryRedirect)
		case errors.Is(err, service.ErrOAuthAccountExists):
			http.Redirect(w, r, "/login?error=account_exists", http.StatusTemporaryRedirect)
		case errors.Is(err, service.ErrOAuthLocalAccountExists):
			http.Redirect(w, r, "/sign-up?error=local_account_exists", http.StatusTemporaryRedirect)
		case errors.Is(err, service.ErrOAuthUseLocalSignin):
			http.Redirect(w, r, "/login?error=use_local_signin", http.StatusTemporaryRedirect)
		default:
			http.Redirect(w, r, "/login?error=oauth_failed", http.StatusTemporaryRedirect)
		}
		return
	}

	token, err := h.services.AuthService.CreateSessionToken(user)
	if err != nil {
		log.Err(err).Int64("id", user.UserID).Msg("creation of session token failed")
		http.Redirect(w, r, "/login?error=oauth_failed", http.StatusTemporaryRedirect)
		return
	}

	h.setSessionCookie(w, token)

	if newUser {
		http.Redirect(w, r, "/?registered=true", http.StatusTemporaryRedirect)
		return
	}
	http.Redirect(w, r, "/?signin=true", http.StatusTemporaryRedirect)
}
