package datasources

import (
	"context"

	"github.com/cafeorigenes/origenes-api/internal/domain"
)

type ApprovedCommentLister interface {
	CountApprovedComments(ctx context.Context, articleID int64) (int64, error)
	ListApprovedComments(ctx context.Context, articleID int64, limit, offset int) ([]domain.PublicComment, error)
}

type CommentCreator interface {
	CreateComment(ctx context.Context, comment domain.NewComment) (int64, error)
}

// DashboardCommentLister lists comments for moderation. A nil articleAuthorID lists every comment.
type DashboardCommentLister interface {
	ListDashboardComments(ctx context.Context, articleAuthorID *int64) ([]domain.DashboardComment, error)
}

type CommentArticleFetcher interface {
	FetchCommentArticleID(ctx context.Context, commentID int64) (int64, error)
}

type CommentApprover interface {
	ApproveComment(ctx context.Context, commentID int64) error
}

type CommentDeleter interface {
	DeleteComment(ctx context.Context, commentID int64) error
}

type CommentRepository interface {
	ApprovedCommentLister
	CommentCreator
	DashboardCommentLister
	CommentArticleFetcher
	CommentApprover
	CommentDeleter
}
