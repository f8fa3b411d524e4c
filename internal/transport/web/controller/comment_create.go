package controller

import (
	"net/http"

	"github.com/cafeorigenes/origenes-api/internal/datasources"
	"github.com/cafeorigenes/origenes-api/internal/domain"
)

const commentPendingMessage = "Comment submitted. It will be visible once approved."

type CommentCreateRequest struct {
	Content string `json:"content" validate:"required"`
}

type CommentPublicCreateRequest struct {
	Content     string `json:"content" validate:"required"`
	AuthorName  string `json:"author_name" validate:"required,max=100"`
	AuthorEmail string `json:"author_email" validate:"required,email"`
}

// CommentCreate handles POST /api/comments/article/{articleId} for signed in readers.
// Anonymous is set for POST /api/comments/public/article/{articleId}, where the reader leaves a
// name and email instead. Either way the comment waits for moderation.
type CommentCreate struct {
	Creator   datasources.CommentCreator
	Anonymous bool
}

func (c CommentCreate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	articleID, err := pathID(r, "articleId")
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse article ID", "error", err)
		writeMessage(ctx, w, http.StatusBadRequest, "Invalid article ID")
		return
	}

	comment := domain.NewComment{ArticleID: articleID}
	if c.Anonymous {
		var body CommentPublicCreateRequest
		if err := decodeBody(r, &body); err != nil {
			logger.InfoContext(ctx, "unable to parse request body", "error", err)
			writeMessage(ctx, w, http.StatusBadRequest, "Content, name and a valid email are required")
			return
		}
		comment.Content = body.Content
		comment.AuthorName = &body.AuthorName
		comment.AuthorEmail = &body.AuthorEmail
	} else {
		user, ok := requestUser(w, r)
		if !ok {
			return
		}

		var body CommentCreateRequest
		if err := decodeBody(r, &body); err != nil {
			logger.InfoContext(ctx, "unable to parse request body", "error", err)
			writeMessage(ctx, w, http.StatusBadRequest, "Comment content cannot be empty")
			return
		}
		comment.Content = body.Content
		comment.UserID = &user.ID
	}

	if _, err := c.Creator.CreateComment(ctx, comment); err != nil {
		writeError(ctx, w, err, "create comment")
		return
	}

	writeMessage(ctx, w, http.StatusCreated, commentPendingMessage)
}
