package models

import "time"

// Provider values recognised for a user account. The provider decides which
// sign-in flow is allowed to authenticate the account: local accounts carry a
// password hash, Google accounts carry a Google subject identifier.
const (
	ProviderLocal  = "local"
	ProviderGoogle = "google"
)

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Email is the unique, lower-cased address the account is keyed by.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the user's password.
	// Empty for accounts created through Google sign-up.
	// Never serialized.
	PasswordHash string `json:"-"`

	// GoogleID is the stable subject identifier returned by Google's
	// userinfo endpoint. Empty for local accounts.
	GoogleID string `json:"-"`

	// Name is the display name of the user.
	// It is non-sensitive and may be shown in UI.
	Name string `json:"name"`

	// FirstName and LastName are optional split-name fields captured at
	// sign-up. Name is the canonical display value.
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`

	// Avatar is either a server-local path under /uploads/avatars/ or a
	// remote https URL supplied by Google. Empty when the user has no avatar.
	Avatar string `json:"avatar,omitempty"`

	// Provider is the authentication method of the account:
	// ProviderLocal or ProviderGoogle.
	Provider string `json:"provider"`

	// IsActive marks the account as usable. Kept for parity with the
	// persistence schema; no flow currently deactivates accounts.
	IsActive bool `json:"-"`

	// LastLogin is refreshed on every successful sign-in.
	// Nil until the first sign-in after registration.
	LastLogin *time.Time `json:"-"`

	// CreatedAt and UpdatedAt are server-assigned lifecycle timestamps.
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}

// HasLocalAvatar reports whether the user's avatar points at a file stored by
// this server rather than a remote URL. Remote (Google) avatars are never
// deleted from disk.
func (u User) HasLocalAvatar() bool {
	return u.Avatar != "" && !isRemoteURL(u.Avatar)
}

func isRemoteURL(s string) bool {
	return len(s) >= 4 && s[:4] == "http"
}

// UserUpdate describes a partial profile update. Nil fields are left
// untouched; non-nil fields overwrite the stored value.
type UserUpdate struct {
	Name      *string `json:"name,omitempty"`
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Avatar    *string `json:"avatar,omitempty"`
}

// IsEmpty reports whether the update carries no changes.
func (u UserUpdate) IsEmpty() bool {
	return u.Name == nil && u.FirstName == nil && u.LastName == nil && u.Avatar == nil
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
