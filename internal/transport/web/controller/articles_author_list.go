package controller

import (
	"net/http"

	"github.com/cafeorigenes/origenes-api/internal/command"
	"github.com/cafeorigenes/origenes-api/internal/domain"
)

// ArticlesAuthorList handles GET /api/articles/my-articles/{userId}.
type ArticlesAuthorList struct {
	Command *command.ListAuthorArticles
}

func (c ArticlesAuthorList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	user, ok := requestUser(w, r)
	if !ok {
		return
	}

	authorID, err := pathID(r, "userId")
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse author ID", "error", err)
		writeMessage(ctx, w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	articles, err := c.Command.Execute(ctx, command.ListAuthorArticlesRequest{User: user, AuthorID: authorID})
	if err != nil {
		writeError(ctx, w, err, "list author articles")
		return
	}

	writeJSON(ctx, w, http.StatusOK, articles)
}
