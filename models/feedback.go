package models

import "time"

// Feedback is a testimonial submitted by an authenticated user for the public
// feedback board. The user fields are an explicit point-in-time snapshot taken
// at submission: they do not follow later profile edits, which keeps the board
// stable and avoids a join on every read.
type Feedback struct {
	// FeedbackID is the server-assigned identifier of the entry.
	FeedbackID int64 `json:"id"`

	// UserID references the submitting account.
	UserID int64 `json:"-"`

	// UserName, UserEmail and UserAvatar are the snapshot of the submitting
	// user's profile at submission time.
	UserName   string `json:"userName"`
	UserEmail  string `json:"-"`
	UserAvatar string `json:"userAvatar,omitempty"`

	// UserType is the self-declared role of the submitter
	// (e.g. "Researcher"). Defaults to "User".
	UserType string `json:"userType"`

	// Country is the self-declared country. Defaults to "Unknown".
	Country string `json:"country"`

	// Comment is the free-text feedback body.
	Comment string `json:"feedback"`

	// Rating is an integer in [1,5].
	Rating int `json:"rating"`

	// IsApproved gates the entry's visibility on the public board.
	IsApproved bool `json:"-"`

	// CreatedAt and UpdatedAt are server-assigned lifecycle timestamps.
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the Feedback model.
func (f Feedback) TableName() string {
	return "feedbacks"
}
