package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/cafeorigenes/origenes-api/internal/datasources"
	"github.com/cafeorigenes/origenes-api/internal/domain"
)

const (
	DefaultPublicPage  = 1
	DefaultPublicLimit = 6
)

type ListPublicArticlesRequest struct {
	Sort  domain.ArticleSort
	Page  int
	Limit int

	// Seed fixes the random permutation; nil picks a fresh one.
	Seed *int64

	// OrderedIDs is a permutation returned by an earlier random listing. When set, it is paged
	// directly and no new permutation is generated.
	OrderedIDs []int64
}

type ListPublicArticles struct {
	Store datasources.PublicArticleStore

	// NewSeed overrides seed generation, for tests.
	NewSeed func() int64
}

var _ Command[ListPublicArticlesRequest, domain.ArticlePage] = (*ListPublicArticles)(nil)

func NewListPublicArticles(store datasources.PublicArticleStore) *ListPublicArticles {
	return &ListPublicArticles{
		Store:   store,
		NewSeed: domain.NewRandomSeed,
	}
}

func (c *ListPublicArticles) Execute(
	ctx context.Context, req ListPublicArticlesRequest,
) (domain.ArticlePage, error) {
	if req.Page < 1 {
		req.Page = DefaultPublicPage
	}
	if req.Limit < 1 {
		req.Limit = DefaultPublicLimit
	}

	total, err := c.Store.CountPublishedArticles(ctx)
	if err != nil {
		return domain.ArticlePage{}, fmt.Errorf("counting published articles: %w", err)
	}

	page := domain.ArticlePage{
		TotalPages:  domain.TotalPages(total, req.Limit),
		CurrentPage: req.Page,
	}

	if req.Sort == domain.ArticleSortRandom {
		page.Articles, page.RandomOrder, err = c.listRandom(ctx, req)
	} else if offset, ok := domain.PageOffset(req.Page, req.Limit); ok && int64(offset) < total {
		page.Articles, err = c.Store.ListPublishedArticles(ctx, req.Sort, req.Limit, offset)
	} else {
		page.Articles = []domain.ArticleSummary{}
	}
	if err != nil {
		return domain.ArticlePage{}, err
	}

	for i := range page.Articles {
		withExcerpt(&page.Articles[i], domain.ListExcerptLength)
	}

	if req.Page == 1 {
		featured, err := c.Store.FetchLatestPublishedArticle(ctx)
		switch {
		case errors.Is(err, domain.ErrNotFound):
		case err != nil:
			return domain.ArticlePage{}, fmt.Errorf("fetching featured article: %w", err)
		default:
			withExcerpt(&featured, domain.FeaturedExcerptLength)
			page.Featured = &featured
		}
	}

	return page, nil
}

// listRandom returns the requested page of a random ordering, plus the full ordering when it
// was generated by this call.
func (c *ListPublicArticles) listRandom(
	ctx context.Context, req ListPublicArticlesRequest,
) ([]domain.ArticleSummary, []int64, error) {
	order := req.OrderedIDs

	var generated []int64
	if len(order) == 0 {
		ids, err := c.Store.ListPublishedArticleIDs(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("listing published article IDs: %w", err)
		}

		seed := c.newSeed()
		if req.Seed != nil {
			seed = *req.Seed
		}
		generated = domain.ShuffleArticleIDs(ids, seed)
		order = generated
	}

	pageIDs := domain.PageOfIDs(order, req.Page, req.Limit)
	articles, err := c.Store.FetchArticleSummariesByID(ctx, pageIDs)
	if err != nil {
		return nil, nil, fmt.Errorf("fetching randomly ordered articles: %w", err)
	}

	return articles, generated, nil
}

func (c *ListPublicArticles) newSeed() int64 {
	if c.NewSeed == nil {
		return domain.NewRandomSeed()
	}
	return c.NewSeed()
}

func withExcerpt(article *domain.ArticleSummary, maxChars int) {
	article.Excerpt = domain.Excerpt(article.Content, maxChars)
	article.Content = ""
}
