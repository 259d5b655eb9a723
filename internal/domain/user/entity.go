package user

import (
	"strings"

	"stayfinder/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrEmptyUsername = errs.New("username must not be empty")
	ErrInvalidEmail  = errs.New("invalid email address")
)

// User is owned by the identity provider; the booking core consumes only
// the id and admin flag.
type User struct {
	id           uuid.UUID
	username     string
	email        string
	passwordHash string
	fullName     *string
	phoneNumber  *string
	isAdmin      bool
}

func New(username, email, passwordHash string, fullName, phoneNumber *string) (*User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrEmptyUsername
	}
	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, ErrInvalidEmail
	}

	return &User{
		id:           uuid.New(),
		username:     username,
		email:        email,
		passwordHash: passwordHash,
		fullName:     fullName,
		phoneNumber:  phoneNumber,
		isAdmin:      false,
	}, nil
}

func Reconstruct(id uuid.UUID, username, email, passwordHash string, fullName, phoneNumber *string, isAdmin bool) *User {
	return &User{
		id:           id,
		username:     username,
		email:        email,
		passwordHash: passwordHash,
		fullName:     fullName,
		phoneNumber:  phoneNumber,
		isAdmin:      isAdmin,
	}
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Username() string     { return u.username }
func (u *User) Email() string        { return u.email }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) FullName() *string    { return u.fullName }
func (u *User) PhoneNumber() *string { return u.phoneNumber }
func (u *User) IsAdmin() bool        { return u.isAdmin }
