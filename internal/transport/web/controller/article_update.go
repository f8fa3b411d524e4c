package controller

import (
	"net/http"

	"github.com/cafeorigenes/origenes-api/internal/command"
	"github.com/cafeorigenes/origenes-api/internal/domain"
)

// ArticleUpdateRequest is a partial update; omitted fields are left unchanged.
type ArticleUpdateRequest struct {
	Title            *string `json:"title,omitempty" validate:"omitempty,min=1"`
	Content          *string `json:"content,omitempty"`
	Status           *string `json:"status,omitempty"`
	FeaturedImageURL *string `json:"featured_image_url,omitempty"`
}

// ArticleUpdate handles PUT /api/articles/{id}.
type ArticleUpdate struct {
	Command *command.UpdateArticle
}

func (c ArticleUpdate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
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

	var body ArticleUpdateRequest
	if err := decodeBody(r, &body); err != nil {
		logger.InfoContext(ctx, "unable to parse request body", "error", err)
		writeMessage(ctx, w, http.StatusBadRequest, "Invalid request body")
		return
	}

	update := domain.ArticleUpdate{
		Title:            body.Title,
		Content:          body.Content,
		FeaturedImageURL: body.FeaturedImageURL,
	}
	if body.Status != nil {
		status := domain.ArticleStatus(*body.Status)
		update.Status = &status
	}

	if _, err := c.Command.Execute(ctx, command.UpdateArticleRequest{
		User:      user,
		ArticleID: articleID,
		Update:    update,
	}); err != nil {
		writeError(ctx, w, err, "update article")
		return
	}

	writeMessage(ctx, w, http.StatusOK, "Article updated")
}
