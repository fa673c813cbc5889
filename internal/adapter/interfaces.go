// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MoleculeInsight Authors

// Package adapter provides outbound HTTP clients for the external systems the
// insight-server talks to: the agent backend that runs the multi-agent
// analysis pipeline, Google's OAuth 2.0 endpoints, and the PubChem PUG REST
// API for molecule property lookups.
//
// All adapters are built on resty and map transport failures to the sentinel
// errors defined in errors.go so that callers can use [errors.Is] without
// knowing the underlying protocol. Agent backend failures additionally carry
// the upstream status and FastAPI detail string via [*AgentRequestError].
package adapter

import (
	"context"

	"github.com/molecule-insight/insight-server/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// AgentAdapter communicates with the agent backend that executes analysis
// pipelines. Implementations are responsible for serialisation, timeouts,
// retries and error mapping.
type AgentAdapter interface {
	// Analyze forwards an analysis request to the agent backend and returns
	// the decoded per-category results. Geography defaults to "Global" when
	// unset. Returns [ErrAgentUnavailable] (wrapped) when the backend cannot
	// be reached, or [*AgentRequestError] when it responds with a non-2xx
	// status.
	Analyze(ctx context.Context, req models.AnalysisRequest) (models.AgentResponse, error)

	// Health pings the agent backend's liveness endpoint. Returns
	// [ErrAgentUnavailable] (wrapped) when the backend is down or unhealthy.
	Health(ctx context.Context) error

	// BaseURL returns the configured agent backend base URL.
	BaseURL() string
}

// GoogleOAuthAdapter implements the server side of the Google OAuth 2.0
// authorization-code flow.
type GoogleOAuthAdapter interface {
	// AuthURL builds the Google authorization URL the browser is redirected
	// to. The state value round-trips through Google and carries the flow
	// intent ("signup" or "signin").
	AuthURL(state string) string

	// ExchangeCode swaps an authorization code for an access token and
	// fetches the account's userinfo. Returns [ErrOAuthExchange] (wrapped)
	// if either step fails.
	ExchangeCode(ctx context.Context, code string) (models.GoogleUser, error)
}

// PubChemAdapter looks up compound data in the PubChem PUG REST API.
type PubChemAdapter interface {
	// GetProperties resolves a molecule name to its first PubChem CID and
	// returns the compound's basic properties. Returns
	// [ErrMoleculeNotFound] when PubChem knows no compound by that name.
	GetProperties(ctx context.Context, name string) (models.MoleculeProperties, error)
}
