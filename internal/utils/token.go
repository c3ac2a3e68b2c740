// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "github.com/google/uuid"

// TokenGenerator issues opaque session tokens. Tokens carry no embedded
// claims; the server resolves them by equality against the stored value.
type TokenGenerator struct {
}

func NewTokenGenerator() *TokenGenerator {
	return &TokenGenerator{}
}

// Generate returns a fresh opaque token. UUIDv7 is preferred for its
// time-ordered layout; on the (practically impossible) failure of the
// system clock source it falls back to a random v4 value.
func (g *TokenGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
