package response

import (
	"stayfinder/internal/domain/user"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID          uuid.UUID `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	FullName    *string   `json:"fullName,omitempty"`
	PhoneNumber *string   `json:"phoneNumber,omitempty"`
	IsAdmin     bool      `json:"isAdmin"`
}

func FromUser(u *user.User) *UserResponse {
	return &UserResponse{
		ID:          u.ID(),
		Username:    u.Username(),
		Email:       u.Email(),
		FullName:    u.FullName(),
		PhoneNumber: u.PhoneNumber(),
		IsAdmin:     u.IsAdmin(),
	}
}
