package command

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/cafeorigenes/origenes-api/internal/datasources"
	"github.com/cafeorigenes/origenes-api/internal/domain"
)

type RegisterUserRequest struct {
	Username string
	Email    string
	Password string

	// Role defaults to domain.RoleUser when empty.
	Role domain.Role
}

// RegisterUser creates an account with a bcrypt hashed password.
// Returns domain.ErrDuplicate when the email or username is already taken.
type RegisterUser struct {
	Users interface {
		datasources.UserTakenChecker
		datasources.UserCreator
	}
	HashCost int
}

var _ Command[RegisterUserRequest, int64] = (*RegisterUser)(nil)

func NewRegisterUser(users interface {
	datasources.UserTakenChecker
	datasources.UserCreator
}) *RegisterUser {
	return &RegisterUser{
		Users:    users,
		HashCost: bcrypt.DefaultCost,
	}
}

func (c *RegisterUser) Execute(ctx context.Context, req RegisterUserRequest) (int64, error) {
	if req.Role == "" {
		req.Role = domain.RoleUser
	}
	if !req.Role.Valid() {
		return 0, domain.ErrInvalidRole
	}

	taken, err := c.Users.UserExists(ctx, req.Email, req.Username)
	if err != nil {
		return 0, fmt.Errorf("checking for existing user: %w", err)
	}
	if taken {
		return 0, domain.ErrDuplicate
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), c.HashCost)
	if err != nil {
		return 0, fmt.Errorf("hashing password: %w", err)
	}

	id, err := c.Users.CreateUser(ctx, domain.NewUser{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         req.Role,
	})
	if err != nil {
		return 0, fmt.Errorf("creating user: %w", err)
	}

	return id, nil
}
