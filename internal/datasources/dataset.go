package datasources

import (
	"context"

	"github.com/cafeorigenes/origenes-api/internal/domain"
)

// DatasetRepository is everything the blog keeps in its relational store.
type DatasetRepository interface {
	ArticleRepository
	CommentRepository
	UserRepository
	LocationRepository
	MarketReportRepository
	StatsCounter
}

type PublishedArticleCounter interface {
	CountPublishedArticles(ctx context.Context) (int64, error)
}

// PublishedArticleIDLister lists the IDs of every published article in ascending ID order.
type PublishedArticleIDLister interface {
	ListPublishedArticleIDs(ctx context.Context) ([]int64, error)
}

// ArticleSummaryFetcher fetches article cards, returned in the same order as the given IDs.
type ArticleSummaryFetcher interface {
	FetchArticleSummariesByID(ctx context.Context, ids []int64) ([]domain.ArticleSummary, error)
}

type PublishedArticleLister interface {
	ListPublishedArticles(
		ctx context.Context, sort domain.ArticleSort, limit, offset int,
	) ([]domain.ArticleSummary, error)
}

// LatestPublishedArticleFetcher returns domain.ErrNotFound when nothing is published.
type LatestPublishedArticleFetcher interface {
	FetchLatestPublishedArticle(ctx context.Context) (domain.ArticleSummary, error)
}

// PublicArticleStore is the read side used by the public listing.
type PublicArticleStore interface {
	PublishedArticleCounter
	PublishedArticleIDLister
	ArticleSummaryFetcher
	PublishedArticleLister
	LatestPublishedArticleFetcher
}

type LatestArticleTitleLister interface {
	ListLatestPublishedTitles(ctx context.Context, limit int) ([]string, error)
}

type PublishedArticleBySlugFetcher interface {
	FetchPublishedArticleBySlug(ctx context.Context, slug string) (domain.Article, error)
}

type ArticleByIDFetcher interface {
	FetchArticleByID(ctx context.Context, id int64) (domain.Article, error)
}

type ArticleAuthorFetcher interface {
	FetchArticleAuthorID(ctx context.Context, articleID int64) (int64, error)
}

type AllArticlesLister interface {
	ListAllArticles(ctx context.Context) ([]domain.ArticleListing, error)
}

type AuthorArticlesLister interface {
	ListArticlesByAuthor(ctx context.Context, authorID int64) ([]domain.ArticleListing, error)
}

type ArticleCreator interface {
	CreateArticle(ctx context.Context, article domain.NewArticle) (int64, error)
}

type ArticleUpdater interface {
	UpdateArticle(ctx context.Context, id int64, update domain.ArticleUpdate) error
}

type ArticleDeleter interface {
	DeleteArticle(ctx context.Context, id int64) error
}

// ArticleReactionChanger applies a reaction change and returns the resulting counts.
type ArticleReactionChanger interface {
	ChangeArticleReactions(ctx context.Context, id int64, change domain.ReactionChange) (domain.Reactions, error)
}

type ArticleRepository interface {
	PublicArticleStore
	LatestArticleTitleLister
	PublishedArticleBySlugFetcher
	ArticleByIDFetcher
	ArticleAuthorFetcher
	AllArticlesLister
	AuthorArticlesLister
	ArticleCreator
	ArticleUpdater
	ArticleDeleter
	ArticleReactionChanger
}

type StatsCounter interface {
	PublishedArticleCounter
	CountComments(ctx context.Context) (int64, error)
	CountUsers(ctx context.Context) (int64, error)
}
