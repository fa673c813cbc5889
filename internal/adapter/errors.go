package adapter

import (
	"errors"
	"fmt"
)

var (
	ErrAgentUnavailable = errors.New("agent backend unavailable")
	ErrOAuthExchange    = errors.New("oauth exchange failed")
	ErrMoleculeNotFound = errors.New("molecule not found")
)

// AgentRequestError is returned when the agent backend answers with a non-2xx
// status. StatusCode is the upstream HTTP status and Detail the FastAPI error
// detail, if the body carried one.
type AgentRequestError struct {
	StatusCode int
	Detail     string
}

func (e *AgentRequestError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("agent request failed: http %d", e.StatusCode)
	}
	return fmt.Sprintf("agent request failed: http %d: %s", e.StatusCode, e.Detail)
}
