package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/huandu/go-sqlbuilder"

	"github.com/cafeorigenes/origenes-api/internal/domain"
)

func (r *Repository) CreateUser(ctx context.Context, user domain.NewUser) (int64, error) {
	ib := sqlbuilder.InsertInto("users")
	ib.Cols("username", "email", "password", "role")
	ib.Values(user.Username, user.Email, user.PasswordHash, user.Role)

	id, err := r.insert(ctx, ib)
	if err != nil && !errors.Is(err, domain.ErrDuplicate) {
		return 0, fmt.Errorf("inserting user: %w", err)
	}
	return id, err
}

func (r *Repository) UserExists(ctx context.Context, email, username string) (bool, error) {
	sb := sqlbuilder.Select("COUNT(*)")
	sb.From("users")
	sb.Where(sb.Or(
		sb.Equal("email", email),
		sb.Equal("username", username),
	))

	count, err := r.count(ctx, sb)
	if err != nil {
		return false, fmt.Errorf("checking existing user: %w", err)
	}
	return count > 0, nil
}

func (r *Repository) FetchUserByEmail(ctx context.Context, email string) (domain.User, error) {
	sb := sqlbuilder.Select("id", "username", "email", "role", "password")
	sb.From("users")
	sb.Where(sb.Equal("email", email))

	query, args := sb.Build()

	var user domain.User
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&user.ID, &user.Username, &user.Email, &user.Role, &user.PasswordHash,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.User{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("fetching user by email: %w", err)
	}
	return user, nil
}

func (r *Repository) ListUsers(ctx context.Context) ([]domain.User, error) {
	sb := sqlbuilder.Select("id", "username", "email", "role")
	sb.From("users")
	sb.OrderBy("id")

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running users query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	users := []domain.User{}
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.Role); err != nil {
			return nil, fmt.Errorf("scanning users: %w", err)
		}
		users = append(users, u)
	}
	if err := closeRows(rows); err != nil {
		return nil, err
	}

	return users, nil
}

func (r *Repository) UpdateUserRole(ctx context.Context, id int64, role domain.Role) error {
	ub := sqlbuilder.Update("users")
	ub.Set(ub.Assign("role", role))
	ub.Where(ub.Equal("id", id))

	query, args := ub.Build()
	if err := r.execOne(ctx, query, args...); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}
		return fmt.Errorf("updating user role: %w", err)
	}
	return nil
}

func (r *Repository) DeleteUser(ctx context.Context, id int64) error {
	db := sqlbuilder.DeleteFrom("users")
	db.Where(db.Equal("id", id))

	query, args := db.Build()
	if err := r.execOne(ctx, query, args...); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}
		return fmt.Errorf("deleting user: %w", err)
	}
	return nil
}
