package command

import (
	"context"
	"fmt"

	"github.com/cafeorigenes/origenes-api/internal/datasources"
	"github.com/cafeorigenes/origenes-api/internal/domain"
)

type GetArticleForEditRequest struct {
	User      domain.AuthUser
	ArticleID int64
}

// GetArticleForEdit loads an article in any status for its author or an admin.
type GetArticleForEdit struct {
	Fetcher datasources.ArticleByIDFetcher
}

var _ Command[GetArticleForEditRequest, domain.Article] = (*GetArticleForEdit)(nil)

func (c *GetArticleForEdit) Execute(ctx context.Context, req GetArticleForEditRequest) (domain.Article, error) {
	article, err := c.Fetcher.FetchArticleByID(ctx, req.ArticleID)
	if err != nil {
		return domain.Article{}, fmt.Errorf("fetching article: %w", err)
	}
	if !req.User.CanManage(article.AuthorID) {
		return domain.Article{}, domain.ErrForbidden
	}
	return article, nil
}
