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

func (h *Handler) submitFeedback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	currentSession, ok := utils.GetSessionFromContext(ctx)
	if !ok {
		writeError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	var feedback models.Feedback
	if err := json.NewDecoder(r.Body).Decode(&feedback); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	savedFeedback, err := h.services.FeedbackService.SubmitFeedback(ctx, currentSession.UserID, feedback)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			writeError(w, "feedback text is required", statusFromError(err))
			return
		case errors.Is(err, service.ErrInvalidRating):
			writeError(w, "rating must be between 1 and 5", statusFromError(err))
			return
		case errors.Is(err, store.ErrUserNotFound):
			writeError(w, "user not found", statusFromError(err))
			return
		default:
			log.Err(err).Msg("unexpected error occurred during feedback submission")
			writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, struct {
		Success  bool            `json:"success"`
		Feedback models.Feedback `json:"feedback"`
	}{Success: true, Feedback: savedFeedback}, http.StatusCreated)
}

func (h *Handler) listFeedbacks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	feedbacks, err := h.services.FeedbackService.ListApprovedFeedbacks(ctx)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during feedback listing")
		writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, struct {
		Success   bool              `json:"success"`
		Feedbacks []models.Feedback `json:"feedbacks"`
	}{Success: true, Feedbacks: feedbacks}, http.StatusOK)
}
