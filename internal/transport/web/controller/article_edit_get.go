package controller

import (
	"net/http"

	"github.com/cafeorigenes/origenes-api/internal/command"
	"github.com/cafeorigenes/origenes-api/internal/domain"
)

// ArticleEditGet handles GET /api/articles/edit/{id}, returning the full row to its author or an admin.
type ArticleEditGet struct {
	Command *command.GetArticleForEdit
}

func (c ArticleEditGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
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

	article, err := c.Command.Execute(ctx, command.GetArticleForEditRequest{User: user, ArticleID: articleID})
	if err != nil {
		writeError(ctx, w, err, "fetch article for editing")
		return
	}

	writeJSON(ctx, w, http.StatusOK, article)
}
