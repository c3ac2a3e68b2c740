// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification is the result type returned by
// [PostgresErrorClassifier.Classify]. It indicates whether a failed database
// operation should surface as a storage outage or as an internal fault.
type ErrorClassification int

const (
	// Internal indicates a definitive server-side fault: constraint
	// violations that were not mapped to a domain sentinel, syntax errors,
	// data exceptions, and any unrecognised failure. Surfaces as HTTP 500.
	Internal ErrorClassification = iota

	// Unavailable indicates the database itself could not be reached or
	// dropped the connection. Surfaces as HTTP 503.
	Unavailable
)

// PostgresErrorClassifier inspects the pgconn error code returned by the pgx
// driver and maps it to an [ErrorClassification] value.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify attempts to unwrap err as a *pgconn.PgError and delegates to
// [ClassifyPgError]. If err is nil or is not a PostgreSQL driver error,
// [Internal] is returned.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return Internal
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}

	return Internal
}

// ClassifyPgError maps a *pgconn.PgError to an [ErrorClassification] based on
// the PostgreSQL error code.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html for the
// full list of PostgreSQL error codes.
//
// Unavailable codes:
//   - Class 08 — connection exceptions (08000, 08003, 08006)
//   - Class 57 — cannot connect now (57P03)
//
// Everything else, notably data exceptions (class 22), constraint violations
// (class 23), and syntax errors (class 42), is classified as [Internal].
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	switch pgErr.Code {
	// Class 08 — connection exceptions
	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure:
		return Unavailable

	// Class 57 — operator intervention
	case pgerrcode.CannotConnectNow: // 57P03
		return Unavailable
	}

	return Internal
}
