package builder

import (
	"stayfinder/internal/domain/user"

	"github.com/google/uuid"
)

type UserBuilder struct {
	id           uuid.UUID
	username     string
	email        string
	passwordHash string
	isAdmin      bool
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		id:           uuid.New(),
		username:     "amira",
		email:        "amira@example.com",
		passwordHash: "$2a$10$fakefakefakefakefakefakefakefakefakefakefakefakefake",
	}
}

func (b *UserBuilder) WithID(id uuid.UUID) *UserBuilder          { b.id = id; return b }
func (b *UserBuilder) WithUsername(username string) *UserBuilder { b.username = username; return b }
func (b *UserBuilder) WithEmail(email string) *UserBuilder       { b.email = email; return b }
func (b *UserBuilder) WithPasswordHash(hash string) *UserBuilder { b.passwordHash = hash; return b }
func (b *UserBuilder) AsAdmin() *UserBuilder                     { b.isAdmin = true; return b }

func (b *UserBuilder) Build() *user.User {
	return user.Reconstruct(b.id, b.username, b.email, b.passwordHash, nil, nil, b.isAdmin)
}
