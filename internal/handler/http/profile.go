package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/molecule-insight/insight-server/internal/logger"
	"github.com/molecule-insight/insight-server/internal/service"
	"github.com/molecule-insight/insight-server/internal/store"
	"github.com/molecule-insight/insight-server/internal/utils"
	"github.com/molecule-insight/insight-server/models"
)

// maxAvatarFormSize bounds multipart parsing on the avatar upload; slightly
// above the service-level file cap to leave room for form overhead.
const maxAvatarFormSize = 6 * 1024 * 1024

// reissueSession writes a fresh session cookie for the updated user so the
// identity rendered from the cookie follows the profile edit.
func (h *Handler) reissueSession(w http.ResponseWriter, r *http.Request, user models.User) {
	token, err := h.services.AuthService.CreateSessionToken(user)
	if err != nil {
		logger.FromRequest(r).Err(err).Int64("id", user.UserID).Msg("session reissue failed")
		return
	}
	h.setSessionCookie(w, token)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	currentSession, ok := utils.GetSessionFromContext(ctx)
	if !ok {
		writeError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updatedUser, err := h.services.ProfileService.UpdateName(ctx, currentSession.UserID, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			writeError(w, "name is required", statusFromError(err))
			return
		case errors.Is(err, store.ErrUserNotFound):
			writeError(w, "user not found", statusFromError(err))
			return
		default:
			log.Err(err).Msg("unexpected error occurred during profile update")
			writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	h.reissueSession(w, r, updatedUser)
	utils.WriteJSON(w, authResponse{Success: true, User: models.SessionFromUser(updatedUser)}, http.StatusOK)
}

func (h *Handler) uploadAvatar(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	currentSession, ok := utils.GetSessionFromContext(ctx)
	if !ok {
		writeError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	// cap the request body itself; ParseMultipartForm only bounds what is
	// held in memory, not what gets read off the wire
	r.Body = http.MaxBytesReader(w, r.Body, maxAvatarFormSize)
	if err := r.ParseMultipartForm(maxAvatarFormSize); err != nil {
		log.Err(err).Msg("invalid multipart form")
		writeError(w, "invalid multipart form", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("avatar")
	if err != nil {
		log.Err(err).Msg("missing avatar file")
		writeError(w, "avatar file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		log.Err(err).Msg("reading avatar file failed")
		writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	updatedUser, err := h.services.ProfileService.UploadAvatar(ctx, currentSession.UserID, header.Header.Get("Content-Type"), data)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnsupportedAvatarType):
			writeError(w, service.ErrUnsupportedAvatarType.Error(), statusFromError(err))
			return
		case errors.Is(err, service.ErrAvatarTooLarge):
			writeError(w, service.ErrAvatarTooLarge.Error(), statusFromError(err))
			return
		case errors.Is(err, service.ErrInvalidDataProvided):
			writeError(w, "avatar file is required", statusFromError(err))
			return
		case errors.Is(err, store.ErrUserNotFound):
			writeError(w, "user not found", statusFromError(err))
			return
		default:
			log.Err(err).Msg("unexpected error occurred during avatar upload")
			writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	h.reissueSession(w, r, updatedUser)
	utils.WriteJSON(w, authResponse{Success: true, User: models.SessionFromUser(updatedUser)}, http.StatusOK)
}

func (h *Handler) removeAvatar(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	currentSession, ok := utils.GetSessionFromContext(ctx)
	if !ok {
		writeError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	updatedUser, err := h.services.ProfileService.RemoveAvatar(ctx, currentSession.UserID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			writeError(w, "user not found", statusFromError(err))
			return
		}
		log.Err(err).Msg("unexpected error occurred during avatar removal")
		writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.reissueSession(w, r, updatedUser)
	utils.WriteJSON(w, authResponse{Success: true, User: models.SessionFromUser(updatedUser)}, http.StatusOK)
}

func (h *Handler) deleteAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	currentSession, ok := utils.GetSessionFromContext(ctx)
	if !ok {
		writeError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	if err := h.services.ProfileService.DeleteAccount(ctx, currentSession.UserID); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			writeError(w, "user not found", statusFromError(err))
			return
		}
		log.Err(err).Msg("unexpected error occurred during account deletion")
		writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.clearSessionCookie(w)
	utils.WriteJSON(w, models.APIMessage{Success: true, Message: "account deleted"}, http.StatusOK)
}
