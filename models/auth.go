package models

// RegisterRequest is the local sign-up payload.
type RegisterRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// SignInRequest is the local sign-in payload.
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SessionInfo is the response body of the session introspection endpoint.
// User is nil when the request carries no valid session cookie.
type SessionInfo struct {
	Authenticated bool     `json:"authenticated"`
	User          *Session `json:"user,omitempty"`
}
