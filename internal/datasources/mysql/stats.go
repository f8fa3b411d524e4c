package mysql

import (
	"context"
	"fmt"

	"github.com/huandu/go-sqlbuilder"
)

func (r *Repository) CountComments(ctx context.Context) (int64, error) {
	sb := sqlbuilder.Select("COUNT(*)")
	sb.From("comments")

	count, err := r.count(ctx, sb)
	if err != nil {
		return 0, fmt.Errorf("counting comments: %w", err)
	}
	return count, nil
}

func (r *Repository) CountUsers(ctx context.Context) (int64, error) {
	sb := sqlbuilder.Select("COUNT(*)")
	sb.From("users")

	count, err := r.count(ctx, sb)
	if err != nil {
		return 0, fmt.Errorf("counting users: %w", err)
	}
	return count, nil
}
