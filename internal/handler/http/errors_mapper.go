package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-contact-book/internal/service"
	"github.com/MKhiriev/go-contact-book/internal/store"
)

var errorStatusMap = map[error]int{
	errInvalidRequestBody:   http.StatusBadRequest,
	errInvalidPathParameter: http.StatusBadRequest,

	service.ErrInvalidCredentials: http.StatusUnauthorized,

	store.ErrUsernameAlreadyExists: http.StatusBadRequest,
	store.ErrNoUserWasFound:        http.StatusUnauthorized,
	store.ErrContactNotFound:       http.StatusNotFound,
	store.ErrAddressNotFound:       http.StatusNotFound,
	store.ErrStorageUnavailable:    http.StatusServiceUnavailable,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

// statusFromError maps a service or store error onto an HTTP status code and
// a client-safe message. Known sentinels expose their own text; anything
// unrecognized collapses into a generic 500 so internals never leak.
func statusFromError(err error) (int, string) {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			if status == http.StatusInternalServerError {
				return status, http.StatusText(http.StatusInternalServerError)
			}
			return status, target.Error()
		}
	}
	return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
}
