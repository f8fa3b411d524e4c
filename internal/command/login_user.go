package command

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/cafeorigenes/origenes-api/internal/datasources"
	"github.com/cafeorigenes/origenes-api/internal/domain"
)

type TokenIssuer interface {
	IssueToken(user domain.User) (string, error)
}

type LoginUserRequest struct {
	Email    string
	Password string
}

type LoginResult struct {
	Token string
	User  domain.User
}

// LoginUser checks credentials and issues a session token.
// Unknown emails and wrong passwords both return domain.ErrInvalidCredentials.
type LoginUser struct {
	Users  datasources.UserByEmailFetcher
	Tokens TokenIssuer
}

var _ Command[LoginUserRequest, LoginResult] = (*LoginUser)(nil)

func (c *LoginUser) Execute(ctx context.Context, req LoginUserRequest) (LoginResult, error) {
	user, err := c.Users.FetchUserByEmail(ctx, req.Email)
	if errors.Is(err, domain.ErrNotFound) {
		return LoginResult{}, domain.ErrInvalidCredentials
	}
	if err != nil {
		return LoginResult{}, fmt.Errorf("fetching user: %w", err)
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return LoginResult{}, domain.ErrInvalidCredentials
	}
	if err != nil {
		return LoginResult{}, fmt.Errorf("comparing password hash: %w", err)
	}

	token, err := c.Tokens.IssueToken(user)
	if err != nil {
		return LoginResult{}, fmt.Errorf("issuing token: %w", err)
	}

	user.PasswordHash = ""
	return LoginResult{Token: token, User: user}, nil
}
