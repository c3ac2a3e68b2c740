// Package http implements the HTTP transport layer of the application.
// It provides middleware, route handlers, and request/response utilities
// for the REST API. Authentication, logging, and tracing concerns are all
// handled at this layer before requests are forwarded to the service layer.
package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-contact-book/internal/logger"
	"github.com/MKhiriev/go-contact-book/internal/store"
	"github.com/MKhiriev/go-contact-book/internal/utils"
	"github.com/MKhiriev/go-contact-book/models"
)

// auth is an HTTP middleware that enforces opaque-token authentication.
//
// It reads the "Authorization" header, resolves the token to an account via
// [service.UserService.FindByToken], and on success stores the resolved
// [models.User] in the request context under [utils.UserCtxKey] before
// delegating to the next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized when the header
// is absent, the token is empty, or the token matches no account. A token
// cleared by logout or replaced by a newer login matches nothing and is
// rejected the same way. A lookup that fails for any other reason is routed
// through the sentinel-to-status map instead, so a storage outage surfaces
// as 503 rather than an invalid session. All rejection events are logged
// using the context-scoped logger obtained via [logger.FromRequest].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			writeUnauthorized(w)
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Err(err).Send()
			writeUnauthorized(w)
			return
		}

		ctx := r.Context()
		user, err := h.services.UserService.FindByToken(ctx, tokenString)
		if err != nil {
			// only a definitive miss means a bad session; a storage
			// failure must not masquerade as a revoked token
			if errors.Is(err, store.ErrNoUserWasFound) {
				log.Err(err).Msg("token matched no account")
				writeUnauthorized(w)
				return
			}

			log.Err(err).Msg("token lookup failed")
			writeError(w, r, err)
			return
		}

		// Store the resolved account in the context so that downstream
		// handlers can retrieve it without a second lookup.
		ctx = context.WithValue(ctx, utils.UserCtxKey, user)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func writeUnauthorized(w http.ResponseWriter) {
	_, _ = utils.WriteJSON(w, models.ErrorResponse{Errors: http.StatusText(http.StatusUnauthorized)}, http.StatusUnauthorized)
}

// getTokenFromAuthHeader extracts the opaque token from a raw
// "Authorization" HTTP header value.
//
// Clients send the token verbatim:
//
//	Authorization: 0198f1c2-1f43-7b6e-8d58-9f6a4b2c7e01
//
// A conventional "Bearer " scheme prefix is tolerated and stripped. It
// returns [ErrEmptyToken] when the remaining token value is empty.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	tokenString := strings.TrimSpace(authHeader)
	if after, found := strings.CutPrefix(tokenString, "Bearer"); found {
		tokenString = strings.TrimSpace(after)
	}

	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
