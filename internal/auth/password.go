// Package auth provides password hashing, password strength checks and JWT
// issuance/verification.
package auth

import (
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

// WeakPasswordMessage is the user-visible explanation of the strength rules.
const WeakPasswordMessage = "Password must be at least 8 characters long and include an uppercase letter, a lowercase letter, and a number"

// IsStrongPassword reports whether the password is at least 8 characters long
// and contains an uppercase letter, a lowercase letter and a digit. There is
// no special-character requirement.
func IsStrongPassword(password string) bool {
	if len(password) < 8 {
		return false
	}
	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	return hasUpper && hasLower && hasDigit
}

// HashPassword returns a bcrypt hash of the plaintext.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword compares a plaintext password against a bcrypt hash.
// Returns nil on match.
func CheckPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
