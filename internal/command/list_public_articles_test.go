package command

import (
	"context"
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/cafeorigenes/origenes-api/internal/datasources/mocks"
	"github.com/cafeorigenes/origenes-api/internal/domain"
)

// fakePublicStore serves a fixed set of published articles from memory.
type fakePublicStore struct {
	articles []domain.ArticleSummary
}

func newFakePublicStore(n int) *fakePublicStore {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	store := &fakePublicStore{}
	for i := 1; i <= n; i++ {
		store.articles = append(store.articles, domain.ArticleSummary{
			ID:        int64(i),
			Title:     fmt.Sprintf("Article %d", i),
			Slug:      fmt.Sprintf("article-%d", i),
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
			Content: fmt.Sprintf("<p>Coffee from <strong>origin %d</strong></p>", i) +
				strings.Repeat("<em>aroma</em> y sabor ", 20),
		})
	}
	return store
}

func (s *fakePublicStore) CountPublishedArticles(context.Context) (int64, error) {
	return int64(len(s.articles)), nil
}

func (s *fakePublicStore) ListPublishedArticleIDs(context.Context) ([]int64, error) {
	ids := make([]int64, 0, len(s.articles))
	for _, a := range s.articles {
		ids = append(ids, a.ID)
	}
	return ids, nil
}

func (s *fakePublicStore) FetchArticleSummariesByID(_ context.Context, ids []int64) ([]domain.ArticleSummary, error) {
	out := []domain.ArticleSummary{}
	for _, id := range ids {
		for _, a := range s.articles {
			if a.ID == id {
				out = append(out, a)
			}
		}
	}
	return out, nil
}

func (s *fakePublicStore) ListPublishedArticles(
	_ context.Context, sort domain.ArticleSort, limit, offset int,
) ([]domain.ArticleSummary, error) {
	sorted := slices.Clone(s.articles)
	slices.SortFunc(sorted, func(a, b domain.ArticleSummary) int {
		if sort == domain.ArticleSortOldest {
			return a.CreatedAt.Compare(b.CreatedAt)
		}
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	if offset >= len(sorted) {
		return []domain.ArticleSummary{}, nil
	}
	return sorted[offset:min(offset+limit, len(sorted))], nil
}

func (s *fakePublicStore) FetchLatestPublishedArticle(context.Context) (domain.ArticleSummary, error) {
	if len(s.articles) == 0 {
		return domain.ArticleSummary{}, domain.ErrNotFound
	}
	latest := s.articles[0]
	for _, a := range s.articles {
		if a.CreatedAt.After(latest.CreatedAt) {
			latest = a
		}
	}
	return latest, nil
}

func pageIDs(articles []domain.ArticleSummary) []int64 {
	ids := make([]int64, 0, len(articles))
	for _, a := range articles {
		ids = append(ids, a.ID)
	}
	return ids
}

func seed(v int64) *int64 {
	return &v
}

func TestListPublicArticles_RandomPagesPartitionOrdering(t *testing.T) {
	cmd := NewListPublicArticles(newFakePublicStore(14))
	ctx := context.Background()

	first, err := cmd.Execute(ctx, ListPublicArticlesRequest{
		Sort:  domain.ArticleSortRandom,
		Page:  1,
		Limit: 6,
		Seed:  seed(42),
	})
	require.NoError(t, err)

	assert.Equal(t, 3, first.TotalPages)
	assert.Equal(t, 1, first.CurrentPage)
	require.Len(t, first.RandomOrder, 14)
	assert.ElementsMatch(t, []int64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14}, first.RandomOrder)
	assert.Equal(t, first.RandomOrder[:6], pageIDs(first.Articles))

	var seen []int64
	seen = append(seen, pageIDs(first.Articles)...)
	for page := 2; page <= 3; page++ {
		next, err := cmd.Execute(ctx, ListPublicArticlesRequest{
			Sort:       domain.ArticleSortRandom,
			Page:       page,
			Limit:      6,
			OrderedIDs: first.RandomOrder,
		})
		require.NoError(t, err)
		assert.Nil(t, next.RandomOrder, "no new ordering when one is supplied")
		assert.Nil(t, next.Featured)
		seen = append(seen, pageIDs(next.Articles)...)
	}

	assert.Equal(t, first.RandomOrder, seen)
}

func TestListPublicArticles_SeedDeterminism(t *testing.T) {
	cmd := NewListPublicArticles(newFakePublicStore(14))
	ctx := context.Background()

	req := ListPublicArticlesRequest{Sort: domain.ArticleSortRandom, Page: 1, Limit: 6, Seed: seed(42)}

	a, err := cmd.Execute(ctx, req)
	require.NoError(t, err)
	b, err := cmd.Execute(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, a.RandomOrder, b.RandomOrder)
	assert.Equal(t, pageIDs(a.Articles), pageIDs(b.Articles))
	assert.Equal(t, domain.ShuffleArticleIDs([]int64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14}, 42), a.RandomOrder)
}

func TestListPublicArticles_GeneratedSeed(t *testing.T) {
	cmd := NewListPublicArticles(newFakePublicStore(10))
	cmd.NewSeed = func() int64 { return 7 }

	page, err := cmd.Execute(context.Background(), ListPublicArticlesRequest{
		Sort:  domain.ArticleSortRandom,
		Page:  1,
		Limit: 4,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.ShuffleArticleIDs([]int64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, 7), page.RandomOrder)
}

func TestListPublicArticles_OrderedIDsAreTrusted(t *testing.T) {
	cmd := NewListPublicArticles(newFakePublicStore(14))

	page, err := cmd.Execute(context.Background(), ListPublicArticlesRequest{
		Sort:       domain.ArticleSortRandom,
		Page:       2,
		Limit:      2,
		OrderedIDs: []int64{5, 2, 9, 1},
	})
	require.NoError(t, err)

	assert.Equal(t, []int64{9, 1}, pageIDs(page.Articles))
	assert.Nil(t, page.RandomOrder)
	assert.Nil(t, page.Featured)
	assert.Equal(t, 7, page.TotalPages)
}

func TestListPublicArticles_SortedModes(t *testing.T) {
	cases := []struct {
		name     string
		sort     domain.ArticleSort
		page     int
		expected []int64
	}{
		{name: "recent_first_page", sort: domain.ArticleSortRecent, page: 1, expected: []int64{14, 13, 12, 11, 10, 9}},
		{name: "recent_last_page", sort: domain.ArticleSortRecent, page: 3, expected: []int64{2, 1}},
		{name: "oldest_first_page", sort: domain.ArticleSortOldest, page: 1, expected: []int64{1, 2, 3, 4, 5, 6}},
		{name: "past_the_end", sort: domain.ArticleSortOldest, page: 4, expected: []int64{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cmd := NewListPublicArticles(newFakePublicStore(14))

			page, err := cmd.Execute(context.Background(), ListPublicArticlesRequest{
				Sort:  tc.sort,
				Page:  tc.page,
				Limit: 6,
			})
			require.NoError(t, err)

			assert.Equal(t, tc.expected, pageIDs(page.Articles))
			assert.Equal(t, 3, page.TotalPages)
			assert.Equal(t, tc.page, page.CurrentPage)
			assert.Nil(t, page.RandomOrder)
		})
	}
}

func TestListPublicArticles_RandomPastTheEnd(t *testing.T) {
	cmd := NewListPublicArticles(newFakePublicStore(3))

	page, err := cmd.Execute(context.Background(), ListPublicArticlesRequest{
		Sort:  domain.ArticleSortRandom,
		Page:  5,
		Limit: 6,
		Seed:  seed(1),
	})
	require.NoError(t, err)

	assert.Empty(t, page.Articles)
	assert.NotNil(t, page.Articles)
	assert.Len(t, page.RandomOrder, 3)
}

func TestListPublicArticles_FeaturedOnlyOnFirstPage(t *testing.T) {
	for _, sort := range []domain.ArticleSort{domain.ArticleSortRecent, domain.ArticleSortOldest, domain.ArticleSortRandom} {
		t.Run(string(sort), func(t *testing.T) {
			cmd := NewListPublicArticles(newFakePublicStore(14))

			first, err := cmd.Execute(context.Background(), ListPublicArticlesRequest{Sort: sort, Page: 1, Limit: 6})
			require.NoError(t, err)
			require.NotNil(t, first.Featured)
			assert.Equal(t, int64(14), first.Featured.ID)
			assert.Empty(t, first.Featured.Content)
			assert.LessOrEqual(t, utf8.RuneCountInString(first.Featured.Excerpt), domain.FeaturedExcerptLength)
			assert.NotContains(t, first.Featured.Excerpt, "<")

			second, err := cmd.Execute(context.Background(), ListPublicArticlesRequest{Sort: sort, Page: 2, Limit: 6})
			require.NoError(t, err)
			assert.Nil(t, second.Featured)
		})
	}
}

func TestListPublicArticles_ListExcerpts(t *testing.T) {
	cmd := NewListPublicArticles(newFakePublicStore(8))

	page, err := cmd.Execute(context.Background(), ListPublicArticlesRequest{Sort: domain.ArticleSortRecent, Page: 1, Limit: 8})
	require.NoError(t, err)
	require.Len(t, page.Articles, 8)

	for _, a := range page.Articles {
		assert.Empty(t, a.Content)
		assert.NotEmpty(t, a.Excerpt)
		assert.Equal(t, domain.ListExcerptLength, utf8.RuneCountInString(a.Excerpt))
		assert.NotContains(t, a.Excerpt, "<")
		assert.True(t, strings.HasPrefix(a.Excerpt, "Coffee from origin"))
	}
}

func TestListPublicArticles_Defaults(t *testing.T) {
	cmd := NewListPublicArticles(newFakePublicStore(14))

	page, err := cmd.Execute(context.Background(), ListPublicArticlesRequest{Page: -3, Limit: 0})
	require.NoError(t, err)

	assert.Equal(t, DefaultPublicPage, page.CurrentPage)
	assert.Len(t, page.Articles, DefaultPublicLimit)
	assert.Equal(t, 3, page.TotalPages)
}

func TestListPublicArticles_EmptyStore(t *testing.T) {
	cmd := NewListPublicArticles(newFakePublicStore(0))

	page, err := cmd.Execute(context.Background(), ListPublicArticlesRequest{Sort: domain.ArticleSortRandom, Page: 1, Limit: 6})
	require.NoError(t, err)

	assert.Equal(t, 0, page.TotalPages)
	assert.Empty(t, page.Articles)
	assert.Nil(t, page.Featured)
}

func TestListPublicArticles_StoreErrors(t *testing.T) {
	dbErr := errors.New("database error")

	cases := []struct {
		name        string
		req         ListPublicArticlesRequest
		setup       func(store *mocks.MockArticleRepository)
		errContains string
	}{
		{
			name: "count_error",
			req:  ListPublicArticlesRequest{Page: 1, Limit: 6},
			setup: func(store *mocks.MockArticleRepository) {
				store.EXPECT().CountPublishedArticles(mock.Anything).Return(0, dbErr)
			},
			errContains: "counting published articles",
		},
		{
			name: "list_error",
			req:  ListPublicArticlesRequest{Sort: domain.ArticleSortRecent, Page: 2, Limit: 6},
			setup: func(store *mocks.MockArticleRepository) {
				store.EXPECT().CountPublishedArticles(mock.Anything).Return(14, nil)
				store.EXPECT().ListPublishedArticles(mock.Anything, domain.ArticleSortRecent, 6, 6).Return(nil, dbErr)
			},
		},
		{
			name: "ids_error",
			req:  ListPublicArticlesRequest{Sort: domain.ArticleSortRandom, Page: 1, Limit: 6},
			setup: func(store *mocks.MockArticleRepository) {
				store.EXPECT().CountPublishedArticles(mock.Anything).Return(14, nil)
				store.EXPECT().ListPublishedArticleIDs(mock.Anything).Return(nil, dbErr)
			},
			errContains: "listing published article IDs",
		},
		{
			name: "featured_error",
			req:  ListPublicArticlesRequest{Sort: domain.ArticleSortRecent, Page: 1, Limit: 6},
			setup: func(store *mocks.MockArticleRepository) {
				store.EXPECT().CountPublishedArticles(mock.Anything).Return(14, nil)
				store.EXPECT().ListPublishedArticles(mock.Anything, domain.ArticleSortRecent, 6, 0).
					Return([]domain.ArticleSummary{}, nil)
				store.EXPECT().FetchLatestPublishedArticle(mock.Anything).Return(domain.ArticleSummary{}, dbErr)
			},
			errContains: "fetching featured article",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := mocks.NewMockArticleRepository(t)
			tc.setup(store)

			_, err := NewListPublicArticles(store).Execute(context.Background(), tc.req)
			require.Error(t, err)
			assert.ErrorIs(t, err, dbErr)
			if tc.errContains != "" {
				assert.Contains(t, err.Error(), tc.errContains)
			}
		})
	}
}

func TestListPublicArticles_HugePagesAreEmpty(t *testing.T) {
	store := newFakePublicStore(14)
	cmd := NewListPublicArticles(store)

	for _, sort := range []domain.ArticleSort{domain.ArticleSortRecent, domain.ArticleSortOldest, domain.ArticleSortRandom} {
		for _, pageNum := range []int{3, 4, 3074457345618258603, math.MaxInt} {
			t.Run(fmt.Sprintf("%s_page_%d", sort, pageNum), func(t *testing.T) {
				page, err := cmd.Execute(context.Background(), ListPublicArticlesRequest{
					Sort:  sort,
					Page:  pageNum,
					Limit: 6,
					Seed:  seed(7),
				})
				require.NoError(t, err)

				assert.Equal(t, pageNum, page.CurrentPage)
				assert.Equal(t, 3, page.TotalPages)
				assert.Nil(t, page.Featured)
				if pageNum == 3 {
					assert.Len(t, page.Articles, 2)
					return
				}
				assert.NotNil(t, page.Articles)
				assert.Empty(t, page.Articles)
			})
		}
	}
}

func TestListPublicArticles_LargeLimitKeepsTotalPagesExact(t *testing.T) {
	cmd := NewListPublicArticles(newFakePublicStore(14))

	for _, limit := range []int{5, 13, 14, 250, math.MaxInt} {
		page, err := cmd.Execute(context.Background(), ListPublicArticlesRequest{
			Sort:  domain.ArticleSortRecent,
			Page:  1,
			Limit: limit,
		})
		require.NoError(t, err)

		expected := 14 / limit
		if 14%limit != 0 {
			expected++
		}
		assert.Equal(t, expected, page.TotalPages, "limit=%d", limit)
		assert.Len(t, page.Articles, min(limit, 14), "limit=%d", limit)
	}
}

func TestListPublicArticles_ExcerptsNeverCarryTags(t *testing.T) {
	store := &fakePublicStore{articles: []domain.ArticleSummary{{
		ID:        1,
		Title:     "Markup notes",
		Slug:      "markup-notes",
		CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Content:   domain.SanitizeContent("<p>Use the &lt;script&gt; tag sparingly &amp; &lt;b&gt;never&lt;/b&gt; in Huila</p>"),
	}}}

	page, err := NewListPublicArticles(store).Execute(context.Background(), ListPublicArticlesRequest{
		Sort: domain.ArticleSortRecent, Page: 1, Limit: 6,
	})
	require.NoError(t, err)

	require.Len(t, page.Articles, 1)
	require.NotNil(t, page.Featured)
	for _, excerpt := range []string{page.Articles[0].Excerpt, page.Featured.Excerpt} {
		assert.NotContains(t, excerpt, "<")
		assert.True(t, strings.HasPrefix(excerpt, "Use the"), "excerpt: %q", excerpt)
	}
}
