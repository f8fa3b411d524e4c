package domain

import (
	"time"
)

type ArticleStatus string

const (
	ArticleStatusDraft     ArticleStatus = "draft"
	ArticleStatusPublished ArticleStatus = "published"
)

func (s ArticleStatus) Valid() bool {
	return s == ArticleStatusDraft || s == ArticleStatusPublished
}

// Article is a full article row as seen by its author or an admin.
type Article struct {
	ID               int64         `json:"id"`
	Title            string        `json:"title"`
	Slug             string        `json:"slug"`
	Content          string        `json:"content"`
	FeaturedImageURL *string       `json:"featured_image_url"`
	Status           ArticleStatus `json:"status"`
	CreatedAt        time.Time     `json:"created_at"`
	AuthorID         int64         `json:"id_author"`
	AuthorName       string        `json:"author_name,omitempty"`
	Reactions        Reactions     `json:"reactions"`
}

// ArticleSummary is the public card view of a published article.
// Content is only carried to derive the excerpt and never serialised.
type ArticleSummary struct {
	ID               int64     `json:"id"`
	Title            string    `json:"title"`
	Slug             string    `json:"slug"`
	FeaturedImageURL *string   `json:"featured_image_url"`
	CreatedAt        time.Time `json:"created_at"`
	AuthorName       string    `json:"author_name,omitempty"`
	Excerpt          string    `json:"excerpt"`
	Content          string    `json:"-"`
}

// ArticleListing is a dashboard table row.
type ArticleListing struct {
	ID         int64         `json:"id"`
	Title      string        `json:"title"`
	Status     ArticleStatus `json:"status"`
	CreatedAt  time.Time     `json:"created_at"`
	AuthorID   int64         `json:"id_author"`
	AuthorName string        `json:"author_name"`
}

type NewArticle struct {
	Title            string
	Slug             string
	Content          string
	Status           ArticleStatus
	FeaturedImageURL *string
	AuthorID         int64
}

// ArticleUpdate holds the fields to change; nil fields are left untouched.
type ArticleUpdate struct {
	Title            *string
	Slug             *string
	Content          *string
	Status           *ArticleStatus
	FeaturedImageURL *string
}

func (u ArticleUpdate) Empty() bool {
	return u.Title == nil && u.Content == nil && u.Status == nil && u.FeaturedImageURL == nil
}

type ArticleSort string

const (
	ArticleSortRecent ArticleSort = "recent"
	ArticleSortOldest ArticleSort = "oldest"
	ArticleSortRandom ArticleSort = "random"
)

// ParseArticleSort maps a query value to a sort mode. Anything unrecognised is treated as recent.
func ParseArticleSort(s string) ArticleSort {
	switch ArticleSort(s) {
	case ArticleSortOldest:
		return ArticleSortOldest
	case ArticleSortRandom:
		return ArticleSortRandom
	default:
		return ArticleSortRecent
	}
}

// ArticlePage is one page of the public article listing.
type ArticlePage struct {
	Featured    *ArticleSummary
	Articles    []ArticleSummary
	TotalPages  int
	CurrentPage int

	// RandomOrder is the full permutation of published IDs, set only when a new one was generated.
	RandomOrder []int64
}
