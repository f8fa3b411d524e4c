package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/huandu/go-sqlbuilder"

	"github.com/cafeorigenes/origenes-api/internal/domain"
)

// commentAuthorColumn prefers the name left on an anonymous comment, then the account username.
const commentAuthorColumn = "COALESCE(c.author_name, u.username, 'Anonymous')"

func (r *Repository) CountApprovedComments(ctx context.Context, articleID int64) (int64, error) {
	sb := sqlbuilder.Select("COUNT(*)")
	sb.From("comments")
	sb.Where(
		sb.Equal("id_article", articleID),
		sb.Equal("status", domain.CommentStatusApproved),
	)

	count, err := r.count(ctx, sb)
	if err != nil {
		return 0, fmt.Errorf("counting approved comments: %w", err)
	}
	return count, nil
}

func (r *Repository) ListApprovedComments(
	ctx context.Context, articleID int64, limit, offset int,
) ([]domain.PublicComment, error) {
	sb := sqlbuilder.Select("c.id", "c.content", "c.created_at", commentAuthorColumn)
	sb.From("comments c")
	sb.JoinWithOption(sqlbuilder.LeftJoin, "users u", "c.id_user = u.id")
	sb.Where(
		sb.Equal("c.id_article", articleID),
		sb.Equal("c.status", domain.CommentStatusApproved),
	)
	sb.OrderBy("c.created_at DESC")
	sb.Limit(limit)
	sb.Offset(offset)

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running approved comments query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	comments := []domain.PublicComment{}
	for rows.Next() {
		var c domain.PublicComment
		if err := rows.Scan(&c.ID, &c.Content, &c.CreatedAt, &c.AuthorName); err != nil {
			return nil, fmt.Errorf("scanning approved comments: %w", err)
		}
		comments = append(comments, c)
	}
	if err := closeRows(rows); err != nil {
		return nil, err
	}

	return comments, nil
}

func (r *Repository) CreateComment(ctx context.Context, comment domain.NewComment) (int64, error) {
	ib := sqlbuilder.InsertInto("comments")
	ib.Cols("content", "id_article", "id_user", "author_name", "author_email", "status")
	ib.Values(
		comment.Content,
		comment.ArticleID,
		comment.UserID,
		comment.AuthorName,
		comment.AuthorEmail,
		domain.CommentStatusPending,
	)

	id, err := r.insert(ctx, ib)
	if err != nil {
		return 0, fmt.Errorf("inserting comment: %w", err)
	}
	return id, nil
}

func (r *Repository) ListDashboardComments(
	ctx context.Context, articleAuthorID *int64,
) ([]domain.DashboardComment, error) {
	sb := sqlbuilder.Select(
		"c.id", "c.content", "c.status", "c.created_at",
		commentAuthorColumn,
		"a.title", "a.id_author",
	)
	sb.From("comments c")
	sb.Join("articles a", "c.id_article = a.id")
	sb.JoinWithOption(sqlbuilder.LeftJoin, "users u", "c.id_user = u.id")
	if articleAuthorID != nil {
		sb.Where(sb.Equal("a.id_author", *articleAuthorID))
	}
	sb.OrderBy("c.created_at DESC")

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running dashboard comments query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	comments := []domain.DashboardComment{}
	for rows.Next() {
		var c domain.DashboardComment
		if err := rows.Scan(
			&c.ID, &c.Content, &c.Status, &c.CreatedAt, &c.AuthorName, &c.ArticleTitle, &c.ArticleAuthorID,
		); err != nil {
			return nil, fmt.Errorf("scanning dashboard comments: %w", err)
		}
		comments = append(comments, c)
	}
	if err := closeRows(rows); err != nil {
		return nil, err
	}

	return comments, nil
}

func (r *Repository) FetchCommentArticleID(ctx context.Context, commentID int64) (int64, error) {
	sb := sqlbuilder.Select("id_article")
	sb.From("comments")
	sb.Where(sb.Equal("id", commentID))

	query, args := sb.Build()

	var articleID int64
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&articleID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, domain.ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("fetching comment article: %w", err)
	}
	return articleID, nil
}

func (r *Repository) ApproveComment(ctx context.Context, commentID int64) error {
	ub := sqlbuilder.Update("comments")
	ub.Set(ub.Assign("status", domain.CommentStatusApproved))
	ub.Where(ub.Equal("id", commentID))

	query, args := ub.Build()
	if err := r.execOne(ctx, query, args...); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}
		return fmt.Errorf("approving comment: %w", err)
	}
	return nil
}

func (r *Repository) DeleteComment(ctx context.Context, commentID int64) error {
	db := sqlbuilder.DeleteFrom("comments")
	db.Where(db.Equal("id", commentID))

	query, args := db.Build()
	if err := r.execOne(ctx, query, args...); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}
		return fmt.Errorf("deleting comment: %w", err)
	}
	return nil
}
