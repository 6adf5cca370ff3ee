// Package crypto provides credential-related primitives for the application.
// Currently this is limited to one-way password hashing used by the auth
// service.
package crypto

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=password.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher is a one-way salted hash over user passwords.
//
// Implementations must embed the salt in the produced hash and perform the
// comparison in constant time so that Compare leaks nothing about the stored
// value.
type PasswordHasher interface {
	// Hash derives a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Compare checks a plaintext candidate against a stored hash.
	// Returns nil on match and a non-nil error otherwise.
	Compare(hash, password string) error
}

// BCryptHasher is the bcrypt-backed implementation of [PasswordHasher].
// A fresh random salt is generated for every hashed password.
type BCryptHasher struct {
	cost int
}

// NewBCryptHasher constructs a BCryptHasher with the given work factor.
// Costs outside the range bcrypt supports fall back to the library default.
func NewBCryptHasher(cost int) *BCryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	return &BCryptHasher{cost: cost}
}

// Hash derives a salted bcrypt hash from password.
func (h *BCryptHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hashed), nil
}

// Compare checks password against the stored bcrypt hash.
// bcrypt performs the comparison in constant time.
func (h *BCryptHasher) Compare(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
