package controller

import (
	"net/http"

	"github.com/cafeorigenes/origenes-api/internal/command"
)

// CommentsDashboardList handles GET /api/comments for moderation.
type CommentsDashboardList struct {
	Command *command.ListDashboardComments
}

func (c CommentsDashboardList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := requestUser(w, r)
	if !ok {
		return
	}

	comments, err := c.Command.Execute(ctx, user)
	if err != nil {
		writeError(ctx, w, err, "list dashboard comments")
		return
	}

	writeJSON(ctx, w, http.StatusOK, comments)
}
