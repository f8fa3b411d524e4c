package datasources

import (
	"context"

	"github.com/cafeorigenes/origenes-api/internal/domain"
)

// UserCreator returns domain.ErrDuplicate when the email or username is taken.
type UserCreator interface {
	CreateUser(ctx context.Context, user domain.NewUser) (int64, error)
}

type UserTakenChecker interface {
	UserExists(ctx context.Context, email, username string) (bool, error)
}

type UserByEmailFetcher interface {
	FetchUserByEmail(ctx context.Context, email string) (domain.User, error)
}

type UserLister interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
}

type UserRoleUpdater interface {
	UpdateUserRole(ctx context.Context, id int64, role domain.Role) error
}

type UserDeleter interface {
	DeleteUser(ctx context.Context, id int64) error
}

type UserRepository interface {
	UserCreator
	UserTakenChecker
	UserByEmailFetcher
	UserLister
	UserRoleUpdater
	UserDeleter
}
