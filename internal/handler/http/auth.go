package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/molecule-insight/insight-server/internal/logger"
	"github.com/molecule-insight/insight-server/internal/service"
	"github.com/molecule-insight/insight-server/internal/store"
	"github.com/molecule-insight/insight-server/internal/utils"
	"github.com/molecule-insight/insight-server/models"
)

// writeError sends the generic JSON error envelope with the given status.
func writeError(w http.ResponseWriter, message string, statusCode int) {
	utils.WriteJSON(w, models.APIError{Error: message}, statusCode)
}

// authResponse is the body returned by register and signin on success.
type authResponse struct {
	Success bool           `json:"success"`
	User    models.Session `json:"user"`
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.Register(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			writeError(w, "all fields are required", statusFromError(err))
			return
		case errors.Is(err, service.ErrPasswordTooShort):
			writeError(w, "password must be at least 6 characters", statusFromError(err))
			return
		case errors.Is(err, store.ErrEmailAlreadyExists):
			log.Err(err).Msg("email already registered")
			writeError(w, "an account with this email already exists", statusFromError(err))
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	token, err := h.services.AuthService.CreateSessionToken(registeredUser)
	if err != nil {
		log.Err(err).Msg("creation of session token failed")
		writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.setSessionCookie(w, token)
	utils.WriteJSON(w, authResponse{Success: true, User: models.SessionFromUser(registeredUser)}, http.StatusCreated)
}

func (h *Handler) signIn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.SignIn(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			writeError(w, "email and password are required", statusFromError(err))
			return
		case errors.Is(err, service.ErrWrongCredentials):
			log.Err(err).Msg("sign-in with wrong credentials")
			writeError(w, "invalid email or password", statusFromError(err))
			return
		case errors.Is(err, service.ErrGoogleAccount):
			writeError(w, "this account uses Google sign-in", statusFromError(err))
			return
		default:
			log.Err(err).Msg("unexpected error occurred during sign-in")
			writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully signed in")

	token, err := h.services.AuthService.CreateSessionToken(foundUser)
	if err != nil {
		log.Err(err).Msg("creation of session token failed")
		writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.setSessionCookie(w, token)
	utils.WriteJSON(w, authResponse{Success: true, User: models.SessionFromUser(foundUser)}, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.clearSessionCookie(w)
	utils.WriteJSON(w, models.APIMessage{Success: true, Message: "logged out"}, http.StatusOK)
}

// session is the cookie introspection endpoint the frontend polls on load.
// An absent or invalid cookie is not an error: it answers 200 with
// authenticated=false so the shell can render the signed-out state.
func (h *Handler) session(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil || cookie.Value == "" {
		utils.WriteJSON(w, models.SessionInfo{Authenticated: false}, http.StatusOK)
		return
	}

	parsedSession, err := h.services.AuthService.ParseSessionToken(cookie.Value)
	if err != nil {
		h.clearSessionCookie(w)
		utils.WriteJSON(w, models.SessionInfo{Authenticated: false}, http.StatusOK)
		return
	}

	utils.WriteJSON(w, models.SessionInfo{Authenticated: true, User: &parsedSession}, http.StatusOK)
}
