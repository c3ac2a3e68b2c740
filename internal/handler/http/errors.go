// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrEmptyToken is returned when the "Authorization" header is present
	// but the token value itself is an empty string.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")

	// errInvalidRequestBody is reported when the request body cannot be
	// decoded as JSON of the expected shape.
	errInvalidRequestBody = errors.New("invalid JSON was passed")

	// errInvalidPathParameter is reported when a numeric path segment such
	// as a contact or address id cannot be parsed.
	errInvalidPathParameter = errors.New("invalid path parameter")
)
