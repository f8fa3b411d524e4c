package domain

import "time"

type CommentStatus string

const (
	CommentStatusPending  CommentStatus = "pending"
	CommentStatusApproved CommentStatus = "approved"
)

// PublicComment is an approved comment shown under an article.
type PublicComment struct {
	ID         int64     `json:"id"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
	AuthorName string    `json:"author_name"`
}

// DashboardComment is a comment as listed for moderation.
type DashboardComment struct {
	ID              int64         `json:"id"`
	Content         string        `json:"content"`
	Status          CommentStatus `json:"status"`
	CreatedAt       time.Time     `json:"created_at"`
	AuthorName      string        `json:"author_name"`
	ArticleTitle    string        `json:"article_title"`
	ArticleAuthorID int64         `json:"article_author_id"`
}

// NewComment is either from a registered user (UserID set) or anonymous (AuthorName/AuthorEmail set).
type NewComment struct {
	ArticleID   int64
	Content     string
	UserID      *int64
	AuthorName  *string
	AuthorEmail *string
}

type CommentPage struct {
	Comments      []PublicComment
	Page          int
	Limit         int
	TotalComments int64
	TotalPages    int
}
