package command

import (
	"context"
	"fmt"

	"github.com/cafeorigenes/origenes-api/internal/datasources"
	"github.com/cafeorigenes/origenes-api/internal/domain"
)

const DefaultCommentLimit = 3

type ListArticleCommentsRequest struct {
	ArticleID int64
	Page      int
	Limit     int
}

// ListArticleComments pages through an article's approved comments, newest first.
type ListArticleComments struct {
	Lister datasources.ApprovedCommentLister
}

var _ Command[ListArticleCommentsRequest, domain.CommentPage] = (*ListArticleComments)(nil)

func (c *ListArticleComments) Execute(
	ctx context.Context, req ListArticleCommentsRequest,
) (domain.CommentPage, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.Limit < 1 {
		req.Limit = DefaultCommentLimit
	}

	total, err := c.Lister.CountApprovedComments(ctx, req.ArticleID)
	if err != nil {
		return domain.CommentPage{}, fmt.Errorf("counting approved comments: %w", err)
	}

	comments := []domain.PublicComment{}
	if offset, ok := domain.PageOffset(req.Page, req.Limit); ok && int64(offset) < total {
		comments, err = c.Lister.ListApprovedComments(ctx, req.ArticleID, req.Limit, offset)
		if err != nil {
			return domain.CommentPage{}, fmt.Errorf("listing approved comments: %w", err)
		}
	}

	return domain.CommentPage{
		Comments:      comments,
		Page:          req.Page,
		Limit:         req.Limit,
		TotalComments: total,
		TotalPages:    domain.TotalPages(total, req.Limit),
	}, nil
}
