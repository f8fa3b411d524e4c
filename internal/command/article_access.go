package command

import (
	"context"
	"fmt"

	"github.com/cafeorigenes/origenes-api/internal/datasources"
	"github.com/cafeorigenes/origenes-api/internal/domain"
)

// authorizeArticle returns domain.ErrNotFound when the article is missing and
// domain.ErrForbidden unless the user is its author or an admin.
func authorizeArticle(
	ctx context.Context, authors datasources.ArticleAuthorFetcher, user domain.AuthUser, articleID int64,
) error {
	authorID, err := authors.FetchArticleAuthorID(ctx, articleID)
	if err != nil {
		return fmt.Errorf("fetching article author: %w", err)
	}
	if !user.CanManage(authorID) {
		return domain.ErrForbidden
	}
	return nil
}
