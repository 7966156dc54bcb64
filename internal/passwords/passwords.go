// Package passwords hashes and verifies user passwords with bcrypt.
package passwords

import (
	"errors"

	"github.com/sbilibin2017/gw-notes/internal/logger"
	"golang.org/x/crypto/bcrypt"
)

// MaxLength is the longest password, in bytes, that bcrypt accepts.
const MaxLength = 72

// ErrPasswordTooLong is returned by Hash for passwords over MaxLength bytes.
var ErrPasswordTooLong = bcrypt.ErrPasswordTooLong

// Hash returns a salted bcrypt hash of password.
func Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify reports whether plaintext matches hash. A malformed hash is logged
// and treated as a mismatch.
func Verify(plaintext, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext))
	if err == nil {
		return true
	}
	if !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		logger.Log.Warnw("failed to check password", "err", err)
	}
	return false
}
