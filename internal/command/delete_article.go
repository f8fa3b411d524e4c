package command

import (
	"context"
	"fmt"

	"github.com/cafeorigenes/origenes-api/internal/datasources"
	"github.com/cafeorigenes/origenes-api/internal/domain"
)

type DeleteArticleRequest struct {
	User      domain.AuthUser
	ArticleID int64
}

type DeleteArticle struct {
	Authors datasources.ArticleAuthorFetcher
	Deleter datasources.ArticleDeleter
}

var _ Command[DeleteArticleRequest, Empty] = (*DeleteArticle)(nil)

func (c *DeleteArticle) Execute(ctx context.Context, req DeleteArticleRequest) (Empty, error) {
	if err := authorizeArticle(ctx, c.Authors, req.User, req.ArticleID); err != nil {
		return Empty{}, err
	}

	if err := c.Deleter.DeleteArticle(ctx, req.ArticleID); err != nil {
		return Empty{}, fmt.Errorf("deleting article: %w", err)
	}

	return Empty{}, nil
}
