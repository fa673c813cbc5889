// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MoleculeInsight Authors

// Package service implements the application's business rules on top of the
// store repositories and outbound adapters: account lifecycle and the Google
// OAuth matching rules, session token issuance, profile and avatar mutation,
// the analysis proxy, the report archive, and the feedback board.
package service

import (
	"context"

	"github.com/molecule-insight/insight-server/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService handles account registration, credential verification, the
// Google OAuth callback matching rules, and session token lifecycle.
type AuthService interface {
	// Register creates a local account from the sign-up payload. Names are
	// trimmed, the email is lower-cased, and the password is hashed before
	// persistence. Returns ErrInvalidDataProvided on missing fields,
	// ErrPasswordTooShort for passwords under 6 characters, or a wrapped
	// store.ErrEmailAlreadyExists when the address is taken.
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// SignIn authenticates a local account by email and password. Unknown
	// emails and wrong passwords both surface as ErrWrongCredentials so the
	// response does not reveal which part failed. Google-only accounts get
	// ErrGoogleAccount directing the user to the OAuth flow. Refreshes
	// last_login on success.
	SignIn(ctx context.Context, email, password string) (models.User, error)

	// GoogleAuthURL returns the Google consent-screen URL for the given
	// intent ("signup" or "signin"); any other value is treated as signin.
	GoogleAuthURL(intent string) string

	// GoogleCallback exchanges the authorization code and applies the
	// account matching rules. newUser reports whether an account was
	// created. Outcomes that must bounce the browser back to an auth page
	// surface as ErrOAuthNoAccount, ErrOAuthAccountExists,
	// ErrOAuthLocalAccountExists or ErrOAuthUseLocalSignin; a failed
	// exchange surfaces adapter.ErrOAuthExchange.
	GoogleCallback(ctx context.Context, code, intent string) (user models.User, newUser bool, err error)

	// CreateSessionToken issues the signed token carried by the
	// user_session cookie for the given user.
	CreateSessionToken(user models.User) (string, error)

	// ParseSessionToken validates a raw session token. Any failure
	// (expired, wrong issuer, malformed, bad signature) is normalised to
	// ErrSessionInvalid.
	ParseSessionToken(tokenString string) (models.Session, error)
}

// ProfileService mutates the authenticated user's profile.
type ProfileService interface {
	// UpdateName persists a trimmed display name and returns the updated
	// user record. Returns ErrInvalidDataProvided when the name is blank.
	UpdateName(ctx context.Context, userID int64, name string) (models.User, error)

	// UploadAvatar validates the image (JPEG/PNG/GIF, at most 5 MiB),
	// stores it under a fresh UUID filename, deletes the previous
	// server-local avatar file, and persists the new public path.
	UploadAvatar(ctx context.Context, userID int64, contentType string, data []byte) (models.User, error)

	// RemoveAvatar deletes the server-local avatar file, if any, and clears
	// the avatar field. Remote (Google) avatar URLs are only cleared.
	RemoveAvatar(ctx context.Context, userID int64) (models.User, error)

	// DeleteAccount removes the user row after a best-effort delete of the
	// local avatar file. Archives and feedback entries are left in place.
	DeleteAccount(ctx context.Context, userID int64) error
}

// AnalysisService fronts the agent backend and the PubChem lookup.
type AnalysisService interface {
	// Analyze validates that at least one of query/molecule is set and
	// forwards the request to the agent backend.
	Analyze(ctx context.Context, req models.AnalysisRequest) (models.AgentResponse, error)

	// LookupMolecule resolves basic compound properties by molecule name.
	LookupMolecule(ctx context.Context, name string) (models.MoleculeProperties, error)

	// AgentURL returns the configured agent backend base URL.
	AgentURL() string

	// AgentHealthy reports whether the agent backend answers its health
	// endpoint.
	AgentHealthy(ctx context.Context) bool
}

// ArchiveService manages a user's saved analysis reports.
type ArchiveService interface {
	// SaveArchive persists a completed report for userID. ReportName,
	// Molecule, Region, PDFData and Results are required.
	SaveArchive(ctx context.Context, userID int64, archive models.Archive) (models.Archive, error)

	// ListArchives returns the user's reports newest first, without the
	// heavy PDF and results payloads.
	ListArchives(ctx context.Context, userID int64) ([]models.ArchiveSummary, error)

	// GetArchive fetches one report by id and owner. A foreign or unknown
	// id surfaces as store.ErrArchiveNotFound.
	GetArchive(ctx context.Context, userID, archiveID int64) (models.Archive, error)

	// DeleteArchive removes one report by id and owner.
	DeleteArchive(ctx context.Context, userID, archiveID int64) error
}

// FeedbackService manages the public feedback board.
type FeedbackService interface {
	// SubmitFeedback stores a testimonial for the session user, snapshotting
	// the current profile (name, email, avatar) from the database. Rating
	// must be an integer in [1,5].
	SubmitFeedback(ctx context.Context, userID int64, feedback models.Feedback) (models.Feedback, error)

	// ListApprovedFeedbacks returns the newest approved entries.
	ListApprovedFeedbacks(ctx context.Context) ([]models.Feedback, error)
}

// AppInfoService exposes build metadata.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
