package command

import (
	"context"
	"fmt"

	"github.com/cafeorigenes/origenes-api/internal/datasources"
	"github.com/cafeorigenes/origenes-api/internal/domain"
)

// ListDashboardComments lists comments for moderation: every comment for admins, comments on
// their own articles for editors. Other roles get domain.ErrForbidden.
type ListDashboardComments struct {
	Lister datasources.DashboardCommentLister
}

var _ Command[domain.AuthUser, []domain.DashboardComment] = (*ListDashboardComments)(nil)

func (c *ListDashboardComments) Execute(
	ctx context.Context, user domain.AuthUser,
) ([]domain.DashboardComment, error) {
	var authorID *int64
	switch user.Role {
	case domain.RoleAdmin:
	case domain.RoleEditor:
		authorID = &user.ID
	default:
		return nil, domain.ErrForbidden
	}

	comments, err := c.Lister.ListDashboardComments(ctx, authorID)
	if err != nil {
		return nil, fmt.Errorf("listing dashboard comments: %w", err)
	}
	return comments, nil
}
