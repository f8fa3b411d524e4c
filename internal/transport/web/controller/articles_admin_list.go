package controller

import (
	"net/http"

	"github.com/cafeorigenes/origenes-api/internal/datasources"
)

// ArticlesAdminList handles GET /api/articles/admin: every article in any status, newest first.
type ArticlesAdminList struct {
	Lister datasources.AllArticlesLister
}

func (c ArticlesAdminList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	articles, err := c.Lister.ListAllArticles(ctx)
	if err != nil {
		writeError(ctx, w, err, "list all articles")
		return
	}

	writeJSON(ctx, w, http.StatusOK, articles)
}
