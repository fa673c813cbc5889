// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MoleculeInsight Authors

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/molecule-insight/insight-server/internal/adapter"
	"github.com/molecule-insight/insight-server/internal/config"
	"github.com/molecule-insight/insight-server/internal/logger"
	"github.com/molecule-insight/insight-server/internal/store"
	"github.com/molecule-insight/insight-server/internal/utils"
	"github.com/molecule-insight/insight-server/models"
)

const minPasswordLength = 6

// authService is the concrete implementation of AuthService. It handles local
// registration and sign-in with bcrypt verification, the Google OAuth matching
// rules, and session token lifecycle.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// google performs the OAuth code exchange and userinfo fetch.
	google adapter.GoogleOAuthAdapter

	// tokenSignKey is the HMAC secret used to sign and verify session tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued session token.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued session remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and Google OAuth adapter, populated with session parameters
// from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, google adapter.GoogleOAuthAdapter, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		google:         google,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Register implements [AuthService].
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	firstName := strings.TrimSpace(req.FirstName)
	lastName := strings.TrimSpace(req.LastName)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if firstName == "" || lastName == "" || email == "" || req.Password == "" {
		log.Error().Str("email", email).Msg("registration with missing fields")
		return models.User{}, ErrInvalidDataProvided
	}
	if len(req.Password) < minPasswordLength {
		return models.User{}, ErrPasswordTooShort
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Email:        email,
		PasswordHash: passwordHash,
		Name:         firstName + " " + lastName,
		FirstName:    firstName,
		LastName:     lastName,
		Provider:     models.ProviderLocal,
		IsActive:     true,
	})
	if err != nil {
		log.Err(err).Str("email", email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// SignIn implements [AuthService].
func (a *authService) SignIn(ctx context.Context, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.User{}, ErrWrongCredentials
		}
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	// Google-only accounts have no password to check against.
	if foundUser.PasswordHash == "" {
		if foundUser.Provider == models.ProviderGoogle {
			return models.User{}, ErrGoogleAccount
		}
		return models.User{}, ErrWrongCredentials
	}

	if !utils.CheckPassword(foundUser.PasswordHash, password) {
		log.Error().Int64("id", foundUser.UserID).Str("email", email).Msg("wrong password")
		return models.User{}, ErrWrongCredentials
	}

	if err := a.userRepository.TouchLastLogin(ctx, foundUser.UserID); err != nil {
		log.Err(err).Int64("id", foundUser.UserID).Msg("last login update failed")
	}

	return foundUser, nil
}

// GoogleAuthURL implements [AuthService].
func (a *authService) GoogleAuthURL(intent string) string {
	if intent != "signup" {
		intent = "signin"
	}
	return a.google.AuthURL(intent)
}

// GoogleCallback implements [AuthService]. The matching rules, in order:
//
//   - no account for the Google id or email: signin fails with
//     ErrOAuthNoAccount; signup creates a Google-provider account.
//   - account exists, signup intent: ErrOAuthLocalAccountExists for local
//     accounts, ErrOAuthAccountExists otherwise.
//   - account exists, signin intent: local accounts get
//     ErrOAuthUseLocalSignin; Google accounts get their google_id and avatar
//     backfilled if missing, last_login refreshed, and sign in.
func (a *authService) GoogleCallback(ctx context.Context, code, intent string) (models.User, bool, error) {
	log := logger.FromContext(ctx)

	googleUser, err := a.google.ExchangeCode(ctx, code)
	if err != nil {
		log.Err(err).Msg("google code exchange failed")
		return models.User{}, false, err
	}

	email := strings.ToLower(googleUser.Email)
	isSignUp := intent == "signup"

	foundUser, err := a.findGoogleUser(ctx, googleUser.ID, email)
	if err != nil {
		if !errors.Is(err, store.ErrUserNotFound) {
			log.Err(err).Str("email", email).Msg("google account lookup failed")
			return models.User{}, false, fmt.Errorf("google account lookup failed: %w", err)
		}

		if !isSignUp {
			return models.User{}, false, ErrOAuthNoAccount
		}

		firstName, lastName := googleUser.SplitName()
		createdUser, err := a.userRepository.CreateUser(ctx, models.User{
			Email:     email,
			GoogleID:  googleUser.ID,
			Name:      googleUser.Name,
			FirstName: firstName,
			LastName:  lastName,
			Avatar:    googleUser.Picture,
			Provider:  models.ProviderGoogle,
			IsActive:  true,
		})
		if err != nil {
			log.Err(err).Str("email", email).Msg("google user creation failed")
			return models.User{}, false, fmt.Errorf("google user creation failed: %w", err)
		}

		return createdUser, true, nil
	}

	if isSignUp {
		if foundUser.Provider == models.ProviderLocal {
			return models.User{}, false, ErrOAuthLocalAccountExists
		}
		return models.User{}, false, ErrOAuthAccountExists
	}

	if foundUser.Provider == models.ProviderLocal {
		return models.User{}, false, ErrOAuthUseLocalSignin
	}

	if foundUser.GoogleID == "" || foundUser.Avatar == "" {
		foundUser, err = a.userRepository.LinkGoogleAccount(ctx, foundUser.UserID, googleUser.ID, googleUser.Picture)
		if err != nil {
			log.Err(err).Int64("id", foundUser.UserID).Msg("google account linking failed")
			return models.User{}, false, fmt.Errorf("google account linking failed: %w", err)
		}
	}

	if err := a.userRepository.TouchLastLogin(ctx, foundUser.UserID); err != nil {
		log.Err(err).Int64("id", foundUser.UserID).Msg("last login update failed")
	}

	return foundUser, false, nil
}

// findGoogleUser looks the account up by the stable Google id first, falling
// back to the lower-cased email so accounts created before linking are found.
func (a *authService) findGoogleUser(ctx context.Context, googleID, email string) (models.User, error) {
	foundUser, err := a.userRepository.FindUserByGoogleID(ctx, googleID)
	if err == nil {
		return foundUser, nil
	}
	if !errors.Is(err, store.ErrUserNotFound) {
		return models.User{}, err
	}

	return a.userRepository.FindUserByEmail(ctx, email)
}

// CreateSessionToken implements [AuthService].
func (a *authService) CreateSessionToken(user models.User) (string, error) {
	token, err := utils.GenerateSessionToken(a.tokenIssuer, models.SessionFromUser(user), a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseSessionToken implements [AuthService]. Any validation failure (expired,
// wrong issuer, malformed) is normalised to ErrSessionInvalid so that callers
// do not need to inspect low-level JWT errors.
func (a *authService) ParseSessionToken(tokenString string) (models.Session, error) {
	session, err := utils.ValidateAndParseSessionToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Session{}, ErrSessionInvalid
	}

	return session, nil
}
