package controller

import (
	"net/http"

	"github.com/cafeorigenes/origenes-api/internal/command"
	"github.com/cafeorigenes/origenes-api/internal/domain"
)

type CommentsPagination struct {
	Page          int   `json:"page"`
	Limit         int   `json:"limit"`
	TotalComments int64 `json:"totalComments"`
	TotalPages    int   `json:"totalPages"`
}

type CommentsArticleListResponse struct {
	Comments   []domain.PublicComment `json:"comments"`
	Pagination CommentsPagination     `json:"pagination"`
}

// CommentsArticleList handles GET /api/comments/article/{articleId}.
type CommentsArticleList struct {
	Command *command.ListArticleComments
}

func (c CommentsArticleList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	articleID, err := pathID(r, "articleId")
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse article ID", "error", err)
		writeMessage(ctx, w, http.StatusBadRequest, "Invalid article ID")
		return
	}

	req := command.ListArticleCommentsRequest{ArticleID: articleID}
	req.Page, req.Limit = parsePagination(r.URL.Query(), command.DefaultCommentLimit)

	page, err := c.Command.Execute(ctx, req)
	if err != nil {
		writeError(ctx, w, err, "list article comments")
		return
	}

	comments := page.Comments
	if comments == nil {
		comments = []domain.PublicComment{}
	}

	writeJSON(ctx, w, http.StatusOK, CommentsArticleListResponse{
		Comments: comments,
		Pagination: CommentsPagination{
			Page:          page.Page,
			Limit:         page.Limit,
			TotalComments: page.TotalComments,
			TotalPages:    page.TotalPages,
		},
	})
}
