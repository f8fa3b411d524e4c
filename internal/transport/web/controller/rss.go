package controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/feeds"

	"github.com/cafeorigenes/origenes-api/internal/datasources"
	"github.com/cafeorigenes/origenes-api/internal/domain"
)

const rssFeedSize = 20

// RSS handles GET /api/articles/rss with the latest published articles.
type RSS struct {
	FeedBaseURL     string
	FeedAuthorName  string
	FeedAuthorEmail string
	Lister          datasources.PublishedArticleLister
	CacheMaxAge     time.Duration
}

func (c RSS) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	feed := &feeds.Feed{
		Title:       "Orígenes del Café",
		Link:        &feeds.Link{Href: c.FeedBaseURL},
		Description: "New articles about coffee origins, farms and markets",
		Author:      &feeds.Author{Name: c.FeedAuthorName, Email: c.FeedAuthorEmail},
		Created:     time.Now(),
	}

	articles, err := c.Lister.ListPublishedArticles(ctx, domain.ArticleSortRecent, rssFeedSize, 0)
	if err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to fetch articles for feed", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	for _, a := range articles {
		feed.Items = append(feed.Items, &feeds.Item{
			Id:          strconv.FormatInt(a.ID, 10),
			IsPermaLink: "false",
			Title:       a.Title,
			Link:        &feeds.Link{Href: c.FeedBaseURL + "/articles/" + a.Slug},
			Description: domain.Excerpt(a.Content, domain.FeaturedExcerptLength),
			Author:      &feeds.Author{Name: a.AuthorName},
			Created:     a.CreatedAt,
		})
	}

	rss, err := feed.ToRss()
	if err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to format feed as RSS", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/xml")
	setCacheMaxAge(w, c.CacheMaxAge)

	if _, err := w.Write([]byte(rss)); err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to write feed to response", "error", err)
	}
}
