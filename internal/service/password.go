// File: internal/service/password.go
package service

import (
	"sync"

	"golang.org/x/crypto/bcrypt"
)

var (
	bcryptGenerateFromPassword   = bcrypt.GenerateFromPassword
	bcryptCompareHashAndPassword = bcrypt.CompareHashAndPassword
)

// HashPassword returns a salted bcrypt hash of password.
func HashPassword(password string) (string, error) {
	hashBytes, err := bcryptGenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashBytes), nil
}

// ComparePassword returns nil when password matches hash.
func ComparePassword(hash, password string) error {
	return bcryptCompareHashAndPassword([]byte(hash), []byte(password))
}

// VerifyPassword is ComparePassword as a bool. A malformed hash is a mismatch.
func VerifyPassword(password, hash string) bool {
	return ComparePassword(hash, password) == nil
}

var (
	dummyOnce sync.Once
	dummyHash string
)

// burnCompare spends one bcrypt comparison so a login for an unknown user
// takes as long as one with a wrong password.
func burnCompare(password string) {
	dummyOnce.Do(func() {
		h, err := bcrypt.GenerateFromPassword([]byte("not-a-real-password"), bcrypt.DefaultCost)
		if err == nil {
			dummyHash = string(h)
		}
	})
	_ = ComparePassword(dummyHash, password)
}
