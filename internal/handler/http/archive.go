package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/molecule-insight/insight-server/internal/logger"
	"github.com/molecule-insight/insight-server/internal/service"
	"github.com/molecule-insight/insight-server/internal/store"
	"github.com/molecule-insight/insight-server/internal/utils"
	"github.com/molecule-insight/insight-server/models"
)

func (h *Handler) saveArchive(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	currentSession, ok := utils.GetSessionFromContext(ctx)
	if !ok {
		writeError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	var archive models.Archive
	if err := json.NewDecoder(r.Body).Decode(&archive); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	savedArchive, err := h.services.ArchiveService.SaveArchive(ctx, currentSession.UserID, archive)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDataProvided) {
			writeError(w, "reportName, molecule, region, pdfData and results are required", statusFromError(err))
			return
		}
		log.Err(err).Msg("unexpected error occurred during archive save")
		writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, struct {
		Success   bool   `json:"success"`
		Message   string `json:"message"`
		ArchiveID int64  `json:"archiveId"`
	}{
		Success:   true,
		Message:   "report saved",
		ArchiveID: savedArchive.ArchiveID,
	}, http.StatusCreated)
}

func (h *Handler) listArchives(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	currentSession, ok := utils.GetSessionFromContext(ctx)
	if !ok {
		writeError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	summaries, err := h.services.ArchiveService.ListArchives(ctx, currentSession.UserID)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during archive listing")
		writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, struct {
		Success  bool                    `json:"success"`
		Archives []models.ArchiveSummary `json:"archives"`
	}{Success: true, Archives: summaries}, http.StatusOK)
}

// archiveIDParam parses the {id} route parameter.
func archiveIDParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

func (h *Handler) getArchive(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	currentSession, ok := utils.GetSessionFromContext(ctx)
	if !ok {
		writeError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	archiveID, err := archiveIDParam(r)
	if err != nil {
		writeError(w, "invalid archive id", http.StatusBadRequest)
		return
	}

	archive, err := h.services.ArchiveService.GetArchive(ctx, currentSession.UserID, archiveID)
	if err != nil {
		if errors.Is(err, store.ErrArchiveNotFound) {
			writeError(w, "archive not found", statusFromError(err))
			return
		}
		log.Err(err).Int64("archive_id", archiveID).Msg("unexpected error occurred during archive fetch")
		writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, struct {
		Success    bool   `json:"success"`
		PDFData    string `json:"pdfData"`
		ReportName string `json:"reportName"`
	}{Success: true, PDFData: archive.PDFData, ReportName: archive.ReportName}, http.StatusOK)
}

func (h *Handler) deleteArchive(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	currentSession, ok := utils.GetSessionFromContext(ctx)
	if !ok {
		writeError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	archiveID, err := archiveIDParam(r)
	if err != nil {
		writeError(w, "invalid archive id", http.StatusBadRequest)
		return
	}

	if err := h.services.ArchiveService.DeleteArchive(ctx, currentSession.UserID, archiveID); err != nil {
		if errors.Is(err, store.ErrArchiveNotFound) {
			writeError(w, "archive not found", statusFromError(err))
			return
		}
		log.Err(err).Int64("archive_id", archiveID).Msg("unexpected error occurred during archive deletion")
		writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.APIMessage{Success: true, Message: "archive deleted"}, http.StatusOK)
}
