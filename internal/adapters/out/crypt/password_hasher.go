// Package crypt implements the password hashing port with bcrypt.
package crypt

import (
	"golang.org/x/crypto/bcrypt"

	"logistics/internal/pkg/errs"
)

// BcryptPasswordHasher hashes and verifies passwords with bcrypt.
type BcryptPasswordHasher struct {
	cost int
}

// NewBcryptPasswordHasher creates a hasher. A cost outside bcrypt's valid
// range falls back to the library default.
func NewBcryptPasswordHasher(cost int) *BcryptPasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptPasswordHasher{cost: cost}
}

// Hash derives a bcrypt hash from the plain-text password.
func (h *BcryptPasswordHasher) Hash(plain string) (string, error) {
	if plain == "" {
		return "", errs.NewValueIsRequiredError("password")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify reports whether the plain-text password matches the stored hash.
func (h *BcryptPasswordHasher) Verify(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
