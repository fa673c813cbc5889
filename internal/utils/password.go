package utils

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost is the work factor applied when hashing passwords.
const bcryptCost = 12

// HashPassword hashes the given plain-text password with bcrypt.
//
// Returns an error if the password is empty or exceeds bcrypt's 72-byte
// input limit.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", errors.New("empty password")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// CheckPassword reports whether the plain-text password matches the stored
// bcrypt hash. A false result covers both a wrong password and a malformed
// hash; callers treat both as failed authentication.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
