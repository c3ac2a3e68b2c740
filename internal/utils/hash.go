package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword derives a salted, one-way bcrypt hash of the given plaintext
// password. The cost parameter controls the work factor; pass 0 (or any value
// below bcrypt.MinCost) to use bcrypt.DefaultCost.
//
// The returned hash embeds its own salt and cost, so no additional state
// needs to be stored alongside it.
func HashPassword(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hashed), nil
}

// CheckPassword reports whether the plaintext password matches the stored
// bcrypt hash. Any comparison failure (including a malformed hash) is
// reported as a mismatch; the caller never learns which.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
