package controller

import (
	"net/http"

	"github.com/cafeorigenes/origenes-api/internal/command"
	"github.com/cafeorigenes/origenes-api/internal/domain"
)

type ArticleCreateRequest struct {
	Title            string  `json:"title" validate:"required"`
	Content          string  `json:"content" validate:"required"`
	Status           string  `json:"status,omitempty"`
	FeaturedImageURL *string `json:"featured_image_url,omitempty" validate:"omitempty,url"`
}

type ArticleCreateResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

// ArticleCreate handles POST /api/articles; the caller becomes the author.
type ArticleCreate struct {
	Command *command.CreateArticle
}

func (c ArticleCreate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	user, ok := requestUser(w, r)
	if !ok {
		return
	}

	var body ArticleCreateRequest
	if err := decodeBody(r, &body); err != nil {
		logger.InfoContext(ctx, "unable to parse request body", "error", err)
		writeMessage(ctx, w, http.StatusBadRequest, "Title and content are required")
		return
	}

	id, err := c.Command.Execute(ctx, command.CreateArticleRequest{
		Author:           user,
		Title:            body.Title,
		Content:          body.Content,
		Status:           domain.ArticleStatus(body.Status),
		FeaturedImageURL: body.FeaturedImageURL,
	})
	if err != nil {
		writeError(ctx, w, err, "create article")
		return
	}

	writeJSON(ctx, w, http.StatusCreated, ArticleCreateResponse{ID: id, Message: "Article created"})
}
