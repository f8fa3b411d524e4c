package controller

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/cafeorigenes/origenes-api/internal/datasources"
	"github.com/cafeorigenes/origenes-api/internal/domain"
)

// ArticleGet handles GET /api/articles/{slug}, serving published articles only.
type ArticleGet struct {
	Fetcher     datasources.PublishedArticleBySlugFetcher
	CacheMaxAge time.Duration
}

func (c ArticleGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	logger := domain.LoggerFromContext(r.Context())
	ctx := domain.ContextWithLogger(r.Context(), logger.With("slug", slug))

	article, err := c.Fetcher.FetchPublishedArticleBySlug(ctx, slug)
	if err != nil {
		writeError(ctx, w, err, "fetch article")
		return
	}

	setCacheMaxAge(w, c.CacheMaxAge)
	writeJSON(ctx, w, http.StatusOK, article)
}
