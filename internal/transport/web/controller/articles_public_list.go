package controller

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cafeorigenes/origenes-api/internal/command"
	"github.com/cafeorigenes/origenes-api/internal/domain"
)

// ArticlesPublicList handles GET /api/articles/public.
type ArticlesPublicList struct {
	Command     *command.ListPublicArticles
	CacheMaxAge time.Duration
}

type ArticlesPublicListResponse struct {
	FeaturedArticle *domain.ArticleSummary  `json:"featuredArticle"`
	Articles        []domain.ArticleSummary `json:"articles"`
	TotalPages      int                     `json:"totalPages"`
	CurrentPage     int                     `json:"currentPage"`
	AllRandomIDs    string                  `json:"allRandomIds,omitempty"`
}

func (c ArticlesPublicList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	page, err := c.Command.Execute(ctx, publicListRequestFromQuery(r.URL.Query()))
	if err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to list public articles", "error", err)

		writeMessage(ctx, w, http.StatusInternalServerError, "Unable to load articles")
		return
	}

	resp := ArticlesPublicListResponse{
		FeaturedArticle: page.Featured,
		Articles:        page.Articles,
		TotalPages:      page.TotalPages,
		CurrentPage:     page.CurrentPage,
		AllRandomIDs:    joinIDs(page.RandomOrder),
	}
	if resp.Articles == nil {
		resp.Articles = []domain.ArticleSummary{}
	}

	// A freshly generated ordering is specific to this response.
	if page.RandomOrder != nil {
		w.Header().Set("Cache-Control", "no-store")
	} else {
		setCacheMaxAge(w, c.CacheMaxAge)
	}

	writeJSON(ctx, w, http.StatusOK, resp)
}

// publicListRequestFromQuery never fails: garbled values fall back to their defaults.
func publicListRequestFromQuery(q url.Values) command.ListPublicArticlesRequest {
	req := command.ListPublicArticlesRequest{Sort: domain.ParseArticleSort(q.Get("sort"))}
	req.Page, req.Limit = parsePagination(q, command.DefaultPublicLimit)

	if seed, err := strconv.ParseInt(q.Get("seed"), 10, 64); err == nil {
		req.Seed = &seed
	}

	if raw := q.Get("orderedIds"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
			if err != nil {
				continue
			}
			req.OrderedIDs = append(req.OrderedIDs, id)
		}
	}

	return req
}

func joinIDs(ids []int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, ",")
}
