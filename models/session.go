package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims is the claim set embedded in the signed session cookie.
//
// It carries the standard registered claims (sub = user ID, iss, iat, exp)
// plus the denormalized identity fields the UI renders on every page without
// a database round-trip: email, display name, and avatar reference.
//
// The cookie is the sole source of truth for identity on each request; there
// is no server-side session table. A stolen cookie therefore remains valid
// until natural expiry.
type SessionClaims struct {
	jwt.RegisteredClaims

	// Email is the account email at issuance time.
	Email string `json:"email"`

	// Name is the display name at issuance time. Refreshed when the user
	// edits their profile so subsequent requests see the update.
	Name string `json:"name"`

	// Avatar is the avatar reference at issuance time, empty when unset.
	Avatar string `json:"avatar,omitempty"`
}

// Session is the decoded, validated identity extracted from the session
// cookie. Handlers downstream of the session middleware read it from the
// request context.
type Session struct {
	UserID int64  `json:"userId"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}

// GetUserID extracts the user identifier from the claims' "sub" (subject)
// claim, parses it as a base-10 int64, and returns the result.
//
// Returns an error if the subject claim is missing, empty, or cannot be
// converted to int64.
func (c *SessionClaims) GetUserID() (int64, error) {
	sub, err := c.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting UserID from session claims: %w", err)
	}

	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from session claims to int64: %w", err)
	}

	return userID, nil
}

// Session converts the validated claims into the Session value handlers work
// with. Returns an error if the subject claim cannot be parsed.
func (c *SessionClaims) Session() (Session, error) {
	userID, err := c.GetUserID()
	if err != nil {
		return Session{}, err
	}

	return Session{
		UserID: userID,
		Email:  c.Email,
		Name:   c.Name,
		Avatar: c.Avatar,
	}, nil
}

// SessionFromUser builds the session payload issued for a freshly
// authenticated user record.
func SessionFromUser(u User) Session {
	return Session{
		UserID: u.UserID,
		Email:  u.Email,
		Name:   u.Name,
		Avatar: u.Avatar,
	}
}
