// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strings"

	"golang.org/x/crypto/bcrypt"

	domainerrors "ember/internal/domain/errors"
	"ember/internal/domain/service"
)

const minPasswordLength = 8

// bcrypt reads at most 72 bytes of input. Longer passwords are truncated
// so that Hash and Check agree on what was hashed.
const maxBcryptInputBytes = 72

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher is the constructor for bcryptHasher with the default bcrypt cost.
// It returns the implementation as a service.PasswordHasher interface.
func NewBcryptHasher() service.PasswordHasher {
	return NewBcryptHasherWithCost(bcrypt.DefaultCost)
}

// NewBcryptHasherWithCost creates a hasher with an explicit cost factor.
// Costs outside the bcrypt bounds fall back to the default.
func NewBcryptHasherWithCost(cost int) service.PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	return &bcryptHasher{cost: cost}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt handles salt generation, so hashing the same password twice
// yields two different digests. Strength rules live in
// ValidatePasswordStrength; Hash accepts any string.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword(truncateForBcrypt(password), h.cost)

	return string(bytes), err
}

// Check compares a plaintext password with a bcrypt hash.
// The comparison is constant-time; malformed hashes simply report a mismatch.
func (h *bcryptHasher) Check(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), truncateForBcrypt(password))
	// err is nil if the password and hash match.
	return err == nil
}

// ValidatePasswordStrength checks a plaintext password against the strength
// policy: at least 8 characters, containing at least one digit and one letter.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	if len(password) < minPasswordLength {
		return domainerrors.ErrPasswordStrength.WrapMessage("password must be at least 8 characters long")
	}

	if !hasDigit(password) {
		return domainerrors.ErrPasswordStrength.WrapMessage("password must contain at least one digit")
	}

	if !hasLetter(password) {
		return domainerrors.ErrPasswordStrength.WrapMessage("password must contain at least one letter")
	}

	return nil
}

func truncateForBcrypt(password string) []byte {
	raw := []byte(password)
	if len(raw) > maxBcryptInputBytes {
		raw = raw[:maxBcryptInputBytes]
	}

	return raw
}

func hasDigit(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool { return r >= '0' && r <= '9' }) >= 0
}

func hasLetter(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool {
		return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
	}) >= 0
}
