package controller

import (
	"net/http"

	"github.com/cafeorigenes/origenes-api/internal/command"
	"github.com/cafeorigenes/origenes-api/internal/domain"
)

// CommentModerate handles PUT /api/comments/{id}/approve and DELETE /api/comments/{id},
// depending on Action.
type CommentModerate struct {
	Command *command.ModerateComment
	Action  command.CommentAction
}

func (c CommentModerate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	user, ok := requestUser(w, r)
	if !ok {
		return
	}

	commentID, err := pathID(r, "id")
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse comment ID", "error", err)
		writeMessage(ctx, w, http.StatusBadRequest, "Invalid comment ID")
		return
	}

	if _, err := c.Command.Execute(ctx, command.ModerateCommentRequest{
		User:      user,
		CommentID: commentID,
		Action:    c.Action,
	}); err != nil {
		writeError(ctx, w, err, "moderate comment")
		return
	}

	message := "Comment approved"
	if c.Action == command.CommentActionDelete {
		message = "Comment deleted"
	}
	writeMessage(ctx, w, http.StatusOK, message)
}
