package models

// APIMessage is the generic success envelope used by mutation endpoints.
type APIMessage struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// APIError is the generic error envelope. Details is only populated with
// information that is safe to show to clients; internal error detail stays in
// the server log.
type APIError struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
