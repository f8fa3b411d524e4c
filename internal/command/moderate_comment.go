package command

import (
	"context"
	"fmt"

	"github.com/cafeorigenes/origenes-api/internal/datasources"
	"github.com/cafeorigenes/origenes-api/internal/domain"
)

type CommentAction string

const (
	CommentActionApprove CommentAction = "approve"
	CommentActionDelete  CommentAction = "delete"
)

type ModerateCommentRequest struct {
	User      domain.AuthUser
	CommentID int64
	Action    CommentAction
}

// ModerateComment approves or deletes a comment. Admins may moderate any comment, other users
// only comments on their own articles.
type ModerateComment struct {
	Comments interface {
		datasources.CommentArticleFetcher
		datasources.CommentApprover
		datasources.CommentDeleter
	}
	Authors datasources.ArticleAuthorFetcher
}

var _ Command[ModerateCommentRequest, Empty] = (*ModerateComment)(nil)

func (c *ModerateComment) Execute(ctx context.Context, req ModerateCommentRequest) (Empty, error) {
	articleID, err := c.Comments.FetchCommentArticleID(ctx, req.CommentID)
	if err != nil {
		return Empty{}, fmt.Errorf("fetching comment: %w", err)
	}

	if err := authorizeArticle(ctx, c.Authors, req.User, articleID); err != nil {
		return Empty{}, err
	}

	switch req.Action {
	case CommentActionApprove:
		err = c.Comments.ApproveComment(ctx, req.CommentID)
	case CommentActionDelete:
		err = c.Comments.DeleteComment(ctx, req.CommentID)
	default:
		return Empty{}, fmt.Errorf("unknown comment action [%s]", req.Action)
	}
	if err != nil {
		return Empty{}, fmt.Errorf("applying comment action %s: %w", req.Action, err)
	}

	return Empty{}, nil
}
