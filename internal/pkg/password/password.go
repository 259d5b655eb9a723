package password

import (
	"stayfinder/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmptyPassword = errs.New("password must not be empty")
	ErrMismatch      = errs.New("password does not match")
)

// Hash produces a bcrypt hash at the default cost. bcrypt ignores input
// beyond 72 bytes, which is fine for interactive passwords.
func Hash(plain string) (string, error) {
	if plain == "" {
		return "", ErrEmptyPassword
	}
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", errs.Wrap(err, "hashing password")
	}
	return string(b), nil
}

// Verify reports ErrMismatch for a wrong password and passes through any
// other bcrypt failure (e.g. a malformed stored hash).
func Verify(hash, plain string) error {
	if hash == "" || plain == "" {
		return ErrMismatch
	}
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	if err == bcrypt.ErrMismatchedHashAndPassword {
		return ErrMismatch
	}
	return err
}
