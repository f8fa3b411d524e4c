package controller

import (
	"net/http"

	"github.com/cafeorigenes/origenes-api/internal/command"
	"github.com/cafeorigenes/origenes-api/internal/domain"
)

// ArticleDelete handles DELETE /api/articles/{id}.
type ArticleDelete struct {
	Command *command.DeleteArticle
}

func (c ArticleDelete) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	user, ok := requestUser(w, r)
	if !ok {
		return
	}

	articleID, err := pathID(r, "id")
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse article ID", "error", err)
		writeMessage(ctx, w, http.StatusBadRequest, "Invalid article ID")
		return
	}

	if _, err := c.Command.Execute(ctx, command.DeleteArticleRequest{User: user, ArticleID: articleID}); err != nil {
		writeError(ctx, w, err, "delete article")
		return
	}

	writeMessage(ctx, w, http.StatusOK, "Article deleted")
}
