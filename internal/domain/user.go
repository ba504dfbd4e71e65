package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleUser      Role = "user"
	RoleModerator Role = "moderator"
)

// User represents a signed-in account. Anonymous submitters have no User.
type User struct {
	ID            uuid.UUID `json:"id"`
	Email         string    `json:"email"`
	Name          string    `json:"name"`
	AvatarURL     *string   `json:"avatarUrl,omitempty"`
	GoogleID      *string   `json:"-"`
	Role          Role      `json:"role"`
	EmailVerified bool      `json:"emailVerified"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// UserResponse is the public representation of a user
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	AvatarURL string    `json:"avatarUrl,omitempty"`
	Role      Role      `json:"role"`
}

// ToResponse converts a User to a UserResponse
func (u *User) ToResponse() *UserResponse {
	r := &UserResponse{ID: u.ID, Name: u.Name, Role: u.Role}
	if u.AvatarURL != nil {
		r.AvatarURL = *u.AvatarURL
	}
	return r
}

// CreateUserParams holds parameters for user creation
type CreateUserParams struct {
	Email         string
	Name          string
	AvatarURL     *string
	GoogleID      string
	Role          Role
	EmailVerified bool
}

type UserRepository interface {
	CreateUser(ctx context.Context, params CreateUserParams) (*User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*User, error)
	GetUserByGoogleID(ctx context.Context, googleID string) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	LinkGoogleAccount(ctx context.Context, userID uuid.UUID, googleID string) (*User, error)
	UpdateUserRole(ctx context.Context, userID uuid.UUID, role Role) (*User, error)
}
