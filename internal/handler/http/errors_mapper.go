package http

import (
	"errors"
	"net/http"

	"github.com/molecule-insight/insight-server/internal/service"
	"github.com/molecule-insight/insight-server/internal/store"
)

// errorStatusMap pins each service and store sentinel to the HTTP status the
// handlers answer with. Handlers pick the message per endpoint and take the
// status from here via statusFromError so a sentinel cannot map to two
// different codes.
var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:   http.StatusBadRequest,
	service.ErrPasswordTooShort:      http.StatusBadRequest,
	service.ErrInvalidRating:         http.StatusBadRequest,
	service.ErrWrongCredentials:      http.StatusUnauthorized,
	service.ErrGoogleAccount:         http.StatusUnauthorized,
	service.ErrSessionInvalid:        http.StatusUnauthorized,
	service.ErrUnsupportedAvatarType: http.StatusBadRequest,
	service.ErrAvatarTooLarge:        http.StatusBadRequest,

	store.ErrEmailAlreadyExists: http.StatusBadRequest,
	store.ErrUserNotFound:       http.StatusNotFound,
	store.ErrArchiveNotFound:    http.StatusNotFound,
	store.ErrFeedbackNotSaved:   http.StatusInternalServerError,
	store.ErrEmptyUpdate:        http.StatusBadRequest,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
