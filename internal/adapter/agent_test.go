// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MoleculeInsight Authors

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/molecule-insight/insight-server/internal/config"
	"github.com/molecule-insight/insight-server/internal/logger"
	"github.com/molecule-insight/insight-server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAgentAdapter(t *testing.T, serverURL string) AgentAdapter {
	t.Helper()

	a, err := NewAgentAdapter(config.Adapter{
		AgentBaseURL:   serverURL,
		RequestTimeout: 5 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)
	return a
}

func TestAnalyze_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/analyze", r.URL.Path)

		var req models.AnalysisRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "aspirin", req.Molecule)
		assert.Equal(t, "Europe", req.Geography)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.AgentResponse{
			Molecule: "aspirin",
			Results: map[string]models.AnalysisResult{
				"market": {Success: true, Report: "growing"},
			},
		})
	}))
	defer srv.Close()

	a := newTestAgentAdapter(t, srv.URL)
	got, err := a.Analyze(context.Background(), models.AnalysisRequest{Molecule: "aspirin", Geography: "Europe"})

	require.NoError(t, err)
	assert.Equal(t, "aspirin", got.Molecule)
	require.Contains(t, got.Results, "market")
	assert.True(t, got.Results["market"].Success)
}

func TestAnalyze_DefaultsGeography(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req models.AnalysisRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Global", req.Geography)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.AgentResponse{Molecule: req.Molecule})
	}))
	defer srv.Close()

	a := newTestAgentAdapter(t, srv.URL)
	_, err := a.Analyze(context.Background(), models.AnalysisRequest{Query: "market size for aspirin"})

	require.NoError(t, err)
}

func TestAnalyze_UpstreamErrorCarriesDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"detail":"molecule field is required"}`))
	}))
	defer srv.Close()

	a := newTestAgentAdapter(t, srv.URL)
	_, err := a.Analyze(context.Background(), models.AnalysisRequest{Molecule: "aspirin"})

	require.Error(t, err)

	var agentErr *AgentRequestError
	require.ErrorAs(t, err, &agentErr)
	assert.Equal(t, http.StatusUnprocessableEntity, agentErr.StatusCode)
	assert.Equal(t, "molecule field is required", agentErr.Detail)
}

func TestAnalyze_UpstreamErrorWithoutDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	a := newTestAgentAdapter(t, srv.URL)
	_, err := a.Analyze(context.Background(), models.AnalysisRequest{Molecule: "aspirin"})

	var agentErr *AgentRequestError
	require.ErrorAs(t, err, &agentErr)
	assert.Equal(t, http.StatusInternalServerError, agentErr.StatusCode)
	assert.Empty(t, agentErr.Detail)
}

func TestAnalyze_BackendUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // no listener behind the URL anymore

	a := newTestAgentAdapter(t, srv.URL)
	_, err := a.Analyze(context.Background(), models.AnalysisRequest{Molecule: "aspirin"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAgentUnavailable)
}

func TestAnalyze_RetriesBadGateway(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.AgentResponse{Molecule: "aspirin"})
	}))
	defer srv.Close()

	a, err := NewAgentAdapter(config.Adapter{
		AgentBaseURL:   srv.URL,
		RequestTimeout: 5 * time.Second,
		RetryCount:     1,
	}, logger.Nop())
	require.NoError(t, err)

	got, err := a.Analyze(context.Background(), models.AnalysisRequest{Molecule: "aspirin"})
	require.NoError(t, err)
	assert.Equal(t, "aspirin", got.Molecule)
	assert.Equal(t, 2, attempts)
}

func TestHealth_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/health", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAgentAdapter(t, srv.URL)
	require.NoError(t, a.Health(context.Background()))
}

func TestHealth_Unhealthy(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	a := newTestAgentAdapter(t, srv.URL)
	err := a.Health(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAgentUnavailable)
}

func TestNewAgentAdapter_InvalidURL(t *testing.T) {
	_, err := NewAgentAdapter(config.Adapter{AgentBaseURL: ""}, logger.Nop())
	require.Error(t, err)
}

func TestAgentRequestError_Error(t *testing.T) {
	withDetail := &AgentRequestError{StatusCode: 422, Detail: "bad input"}
	assert.Contains(t, withDetail.Error(), "422")
	assert.Contains(t, withDetail.Error(), "bad input")

	noDetail := &AgentRequestError{StatusCode: 500}
	assert.Contains(t, noDetail.Error(), "500")

	assert.False(t, errors.Is(withDetail, ErrAgentUnavailable))
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid http", "http://localhost:8000", "http://localhost:8000", false},
		{"no scheme", "localhost:8000", "http://localhost:8000", false},
		{"trailing slash", "http://localhost:8000/", "http://localhost:8000", false},
		{"empty", "", "", true},
		{"no host", "http://", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.input)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
