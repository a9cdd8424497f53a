// SPDX-License-Identifier: MIT
package auth

import (
	"errors"

	"github.com/thatcatcamp/sectioncss/internal/config"
	"golang.org/x/crypto/bcrypt"
)

const defaultBcryptCost = 12

// cost returns auth.bcrypt_cost when it is a usable bcrypt cost
func cost() int {
	c := config.GetInt("auth.bcrypt_cost")
	if c < bcrypt.MinCost || c > bcrypt.MaxCost {
		return defaultBcryptCost
	}
	return c
}

// HashPassword hashes an admin password with bcrypt
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", errors.New("password cannot be empty")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost())
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword verifies a password against a bcrypt hash
func CheckPassword(password, hash string) bool {
	if password == "" || hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
