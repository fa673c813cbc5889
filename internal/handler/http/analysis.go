package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/molecule-insight/insight-server/internal/adapter"
	"github.com/molecule-insight/insight-server/internal/logger"
	"github.com/molecule-insight/insight-server/internal/service"
	"github.com/molecule-insight/insight-server/internal/utils"
	"github.com/molecule-insight/insight-server/models"
)

// analysisResponse is the success body of the analysis proxy.
type analysisResponse struct {
	Success  bool                             `json:"success"`
	Molecule string                           `json:"molecule"`
	Results  map[string]models.AnalysisResult `json:"results"`
	Updates  []json.RawMessage                `json:"updates"`
}

// process forwards an analysis request to the agent backend. Upstream
// failures keep their status code and detail where the backend provided one;
// an unreachable backend maps to 502.
func (h *Handler) process(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.AnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	agentResponse, err := h.services.AnalysisService.Analyze(ctx, req)
	if err != nil {
		var requestErr *adapter.AgentRequestError

		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			writeError(w, "query or molecule is required", statusFromError(err))
			return
		case errors.As(err, &requestErr):
			message := requestErr.Detail
			if message == "" {
				message = "analysis request failed"
			}
			writeError(w, message, requestErr.StatusCode)
			return
		case errors.Is(err, adapter.ErrAgentUnavailable):
			log.Err(err).Msg("agent backend unreachable")
			writeError(w, "analysis backend is unavailable", http.StatusBadGateway)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during analysis")
			writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, analysisResponse{
		Success:  true,
		Molecule: agentResponse.Molecule,
		Results:  agentResponse.Results,
		Updates:  agentResponse.Updates,
	}, http.StatusOK)
}

// processStatus reports whether the agent backend answers its health check.
func (h *Handler) processStatus(w http.ResponseWriter, r *http.Request) {
	status := "unreachable"
	if h.services.AnalysisService.AgentHealthy(r.Context()) {
		status = "ok"
	}

	utils.WriteJSON(w, struct {
		Message  string `json:"message"`
		Status   string `json:"status"`
		AgentURL string `json:"agent_url"`
	}{
		Message:  "analysis proxy is running",
		Status:   status,
		AgentURL: h.services.AnalysisService.AgentURL(),
	}, http.StatusOK)
}

func (h *Handler) getMolecule(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	name := chi.URLParam(r, "name")

	properties, err := h.services.AnalysisService.LookupMolecule(ctx, name)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			writeError(w, "molecule name is required", statusFromError(err))
			return
		case errors.Is(err, adapter.ErrMoleculeNotFound):
			writeError(w, "molecule not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Str("molecule", name).Msg("molecule lookup failed")
			writeError(w, "molecule lookup failed", http.StatusBadGateway)
			return
		}
	}

	utils.WriteJSON(w, properties, http.StatusOK)
}
