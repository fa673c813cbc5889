package models

import "strings"

// GoogleUser is the subset of the Google OAuth2 v2 userinfo response the
// application consumes. ID is the stable Google account identifier stored as
// users.google_id.
type GoogleUser struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
	Picture    string `json:"picture"`
}

// SplitName returns first and last name parts. Google populates given_name and
// family_name for most accounts; when absent they are derived from the display
// name.
func (g GoogleUser) SplitName() (first, last string) {
	if g.GivenName != "" {
		return g.GivenName, g.FamilyName
	}

	parts := strings.Fields(g.Name)
	if len(parts) == 0 {
		return g.Name, ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}
