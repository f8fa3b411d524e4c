package command

import (
	"context"
	"fmt"

	"github.com/cafeorigenes/origenes-api/internal/datasources"
	"github.com/cafeorigenes/origenes-api/internal/domain"
)

type CreateArticleRequest struct {
	Author           domain.AuthUser
	Title            string
	Content          string
	Status           domain.ArticleStatus
	FeaturedImageURL *string
}

// CreateArticle stores a new article owned by the requesting user. The slug is derived from the
// title and the content is sanitized; status defaults to draft.
type CreateArticle struct {
	Creator datasources.ArticleCreator
}

var _ Command[CreateArticleRequest, int64] = (*CreateArticle)(nil)

func (c *CreateArticle) Execute(ctx context.Context, req CreateArticleRequest) (int64, error) {
	if req.Status == "" {
		req.Status = domain.ArticleStatusDraft
	}
	if !req.Status.Valid() {
		return 0, domain.ErrInvalidStatus
	}

	id, err := c.Creator.CreateArticle(ctx, domain.NewArticle{
		Title:            req.Title,
		Slug:             domain.Slugify(req.Title),
		Content:          domain.SanitizeContent(req.Content),
		Status:           req.Status,
		FeaturedImageURL: req.FeaturedImageURL,
		AuthorID:         req.Author.ID,
	})
	if err != nil {
		return 0, fmt.Errorf("creating article: %w", err)
	}

	return id, nil
}
