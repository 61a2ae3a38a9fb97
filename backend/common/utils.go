package common

import (
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

func Password2Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(hash), err
}

// ValidatePasswordAndHash performs a one-way, timing-safe comparison.
func ValidatePasswordAndHash(password string, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// RandomSuffix returns a 9-character token for filename disambiguation.
func RandomSuffix() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:9]
}
