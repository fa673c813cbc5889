package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrPasswordTooShort    = errors.New("password must be at least 6 characters")
	ErrWrongCredentials    = errors.New("invalid email or password")
	ErrGoogleAccount       = errors.New("email is registered with google")

	ErrOAuthNoAccount          = errors.New("no account for google identity")
	ErrOAuthAccountExists      = errors.New("google account already registered")
	ErrOAuthLocalAccountExists = errors.New("email already registered locally")
	ErrOAuthUseLocalSignin     = errors.New("account uses local sign-in")

	ErrSessionInvalid        = errors.New("session is expired or invalid")
	ErrTokenCreationFailed   = errors.New("session token creation failed")
	ErrUnsupportedAvatarType = errors.New("invalid file type, only jpg, png and gif are allowed")
	ErrAvatarTooLarge        = errors.New("file size must be less than 5MB")
	ErrInvalidRating         = errors.New("rating must be between 1 and 5")

	ErrVersionIsNotSpecified = errors.New("application version is not specified")
)
