package command

import (
	"context"
	"fmt"

	"github.com/cafeorigenes/origenes-api/internal/datasources"
	"github.com/cafeorigenes/origenes-api/internal/domain"
)

type ListAuthorArticlesRequest struct {
	User     domain.AuthUser
	AuthorID int64
}

// ListAuthorArticles lists an author's articles in every status. Only the author and admins may see them.
type ListAuthorArticles struct {
	Lister datasources.AuthorArticlesLister
}

var _ Command[ListAuthorArticlesRequest, []domain.ArticleListing] = (*ListAuthorArticles)(nil)

func (c *ListAuthorArticles) Execute(
	ctx context.Context, req ListAuthorArticlesRequest,
) ([]domain.ArticleListing, error) {
	if !req.User.CanManage(req.AuthorID) {
		return nil, domain.ErrForbidden
	}

	articles, err := c.Lister.ListArticlesByAuthor(ctx, req.AuthorID)
	if err != nil {
		return nil, fmt.Errorf("listing author articles: %w", err)
	}
	return articles, nil
}
