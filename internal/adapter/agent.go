package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/molecule-insight/insight-server/internal/config"
	"github.com/molecule-insight/insight-server/internal/logger"
	"github.com/molecule-insight/insight-server/models"
)

type agentAdapter struct {
	client  *resty.Client
	baseURL string

	logger *logger.Logger
}

// NewAgentAdapter constructs a resty-backed [AgentAdapter] for the agent
// backend at adapterCfg.AgentBaseURL. The client carries the configured
// request timeout (analyses run for minutes) and retries transient failures
// adapterCfg.RetryCount times: connection errors and 502/503/504 answers only,
// never an analysis the backend actually started and failed.
//
// Returns an error if adapterCfg.AgentBaseURL is empty or cannot be parsed as
// a valid URL.
func NewAgentAdapter(adapterCfg config.Adapter, logger *logger.Logger) (AgentAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.AgentBaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid agent base url: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout).
		SetRetryCount(adapterCfg.RetryCount).
		AddRetryCondition(func(resp *resty.Response, err error) bool {
			if err != nil {
				return true
			}
			switch resp.StatusCode() {
			case 502, 503, 504:
				return true
			}
			return false
		})

	return &agentAdapter{client: client, baseURL: baseURL, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Analyze implements [AgentAdapter]. It POSTs the request to
// POST /api/analyze and decodes the per-category results map. Geography is
// defaulted to "Global" before the request leaves the process.
func (a *agentAdapter) Analyze(ctx context.Context, req models.AnalysisRequest) (models.AgentResponse, error) {
	if req.Geography == "" {
		req.Geography = "Global"
	}

	var (
		result   models.AgentResponse
		agentErr models.AgentError
	)

	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&result).
		SetError(&agentErr).
		Post("/api/analyze")
	if err != nil {
		return models.AgentResponse{}, fmt.Errorf("%w: analyze request: %v", ErrAgentUnavailable, err)
	}
	if resp.IsError() {
		return models.AgentResponse{}, &AgentRequestError{StatusCode: resp.StatusCode(), Detail: agentErr.Detail}
	}

	return result, nil
}

// Health implements [AgentAdapter]. It GETs the backend's /health endpoint.
func (a *agentAdapter) Health(ctx context.Context) error {
	resp, err := a.client.R().SetContext(ctx).Get("/health")
	if err != nil {
		return fmt.Errorf("%w: health request: %v", ErrAgentUnavailable, err)
	}
	if resp.IsError() {
		return fmt.Errorf("%w: health returned http %d", ErrAgentUnavailable, resp.StatusCode())
	}

	return nil
}

// BaseURL implements [AgentAdapter].
func (a *agentAdapter) BaseURL() string {
	return a.baseURL
}
