package command

import (
	"context"
	"fmt"

	"github.com/cafeorigenes/origenes-api/internal/datasources"
	"github.com/cafeorigenes/origenes-api/internal/domain"
)

type UpdateArticleRequest struct {
	User      domain.AuthUser
	ArticleID int64
	Update    domain.ArticleUpdate
}

// UpdateArticle applies a partial update for the article's author or an admin.
// A new title also replaces the slug.
type UpdateArticle struct {
	Authors datasources.ArticleAuthorFetcher
	Updater datasources.ArticleUpdater
}

var _ Command[UpdateArticleRequest, Empty] = (*UpdateArticle)(nil)

func (c *UpdateArticle) Execute(ctx context.Context, req UpdateArticleRequest) (Empty, error) {
	if err := authorizeArticle(ctx, c.Authors, req.User, req.ArticleID); err != nil {
		return Empty{}, err
	}

	update := req.Update
	if update.Empty() {
		return Empty{}, domain.ErrEmptyUpdate
	}
	if update.Status != nil && !update.Status.Valid() {
		return Empty{}, domain.ErrInvalidStatus
	}
	if update.Title != nil {
		slug := domain.Slugify(*update.Title)
		update.Slug = &slug
	}
	if update.Content != nil {
		content := domain.SanitizeContent(*update.Content)
		update.Content = &content
	}

	if err := c.Updater.UpdateArticle(ctx, req.ArticleID, update); err != nil {
		return Empty{}, fmt.Errorf("updating article: %w", err)
	}

	return Empty{}, nil
}
