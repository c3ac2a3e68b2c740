// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators contains the per-operation input validation rules of
// the API. Each operation has one pure function that either returns a
// normalized copy of the request or a *ValidationError listing every field
// rule the input violates. Validation is the single gate in front of the
// persistence layer: no unvalidated field ever reaches storage.
package validators

import (
	"fmt"
	"strings"
)

// FieldViolation describes a single broken rule on a single field.
// The list of violations is serialised directly into the error envelope.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates every field violation found in one request.
// It satisfies the error interface so services can propagate it unchanged;
// the HTTP layer unwraps it with errors.As to render the violation list.
type ValidationError struct {
	Violations []FieldViolation
}

// Error implements the error interface. The message lists all violated
// fields so that log entries remain useful without the structured form.
func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, fmt.Sprintf("%s: %s", v.Field, v.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// violations is the accumulator used by the per-operation validators.
type violations struct {
	list []FieldViolation
}

func (v *violations) add(field, message string) {
	v.list = append(v.list, FieldViolation{Field: field, Message: message})
}

// err returns nil when no rule was broken, otherwise a *ValidationError
// carrying the collected list.
func (v *violations) err() error {
	if len(v.list) == 0 {
		return nil
	}
	return &ValidationError{Violations: v.list}
}
