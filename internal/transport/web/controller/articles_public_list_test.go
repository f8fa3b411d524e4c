package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/cafeorigenes/origenes-api/internal/command"
	"github.com/cafeorigenes/origenes-api/internal/datasources/mocks"
	"github.com/cafeorigenes/origenes-api/internal/domain"
)

func summaries(ids ...int64) []domain.ArticleSummary {
	out := make([]domain.ArticleSummary, 0, len(ids))
	for _, id := range ids {
		out = append(out, domain.ArticleSummary{
			ID:      id,
			Title:   "Article",
			Content: "<p>Notes of <b>panela</b> and citrus</p>",
		})
	}
	return out
}

func TestPublicListRequestFromQuery(t *testing.T) {
	seed := int64(42)

	cases := []struct {
		name  string
		query string
		want  command.ListPublicArticlesRequest
	}{
		{
			name:  "defaults",
			query: "",
			want:  command.ListPublicArticlesRequest{Sort: domain.ArticleSortRecent, Page: 1, Limit: 6},
		},
		{
			name:  "garbled_numbers_fall_back",
			query: "page=abc&limit=-3&seed=xyz",
			want:  command.ListPublicArticlesRequest{Sort: domain.ArticleSortRecent, Page: 1, Limit: 6},
		},
		{
			name:  "unknown_sort_is_recent",
			query: "sort=popular&page=3&limit=10",
			want:  command.ListPublicArticlesRequest{Sort: domain.ArticleSortRecent, Page: 3, Limit: 10},
		},
		{
			name:  "large_limit_passed_through",
			query: "sort=oldest&limit=250",
			want:  command.ListPublicArticlesRequest{Sort: domain.ArticleSortOldest, Page: 1, Limit: 250},
		},
		{
			name:  "huge_page_passed_through",
			query: "page=3074457345618258603&limit=6",
			want: command.ListPublicArticlesRequest{
				Sort: domain.ArticleSortRecent, Page: 3074457345618258603, Limit: 6,
			},
		},
		{
			name:  "page_beyond_int_falls_back",
			query: "page=99999999999999999999999",
			want:  command.ListPublicArticlesRequest{Sort: domain.ArticleSortRecent, Page: 1, Limit: 6},
		},
		{
			name:  "random_with_seed",
			query: "sort=random&seed=42",
			want:  command.ListPublicArticlesRequest{Sort: domain.ArticleSortRandom, Page: 1, Limit: 6, Seed: &seed},
		},
		{
			name:  "ordered_ids_skip_garbage",
			query: "sort=random&orderedIds=5,%202,x,,9",
			want: command.ListPublicArticlesRequest{
				Sort: domain.ArticleSortRandom, Page: 1, Limit: 6, OrderedIDs: []int64{5, 2, 9},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/articles/public?"+tc.query, nil)
			assert.Equal(t, tc.want, publicListRequestFromQuery(req.URL.Query()))
		})
	}
}

func TestArticlesPublicList_ServeHTTP_Recent(t *testing.T) {
	store := mocks.NewMockArticleRepository(t)
	store.EXPECT().CountPublishedArticles(mock.Anything).Return(int64(14), nil)
	store.EXPECT().
		ListPublishedArticles(mock.Anything, domain.ArticleSortRecent, 6, 0).
		Return(summaries(14, 13, 12, 11, 10, 9), nil)
	store.EXPECT().FetchLatestPublishedArticle(mock.Anything).Return(summaries(14)[0], nil)

	controller := ArticlesPublicList{
		Command:     command.NewListPublicArticles(store),
		CacheMaxAge: time.Minute,
	}

	rec := httptest.NewRecorder()
	controller.ServeHTTP(rec, newTestRequest(http.MethodGet, "/api/articles/public", "", testContext(), nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "max-age=60", rec.Header().Get("Cache-Control"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.InDelta(t, 3, body["totalPages"], 0)
	assert.InDelta(t, 1, body["currentPage"], 0)
	assert.NotContains(t, body, "allRandomIds")

	featured, ok := body["featuredArticle"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Notes of panela and citrus", featured["excerpt"])
	assert.NotContains(t, featured, "content")

	articles, ok := body["articles"].([]any)
	require.True(t, ok)
	assert.Len(t, articles, 6)
}

func TestArticlesPublicList_ServeHTTP_RandomWithOrderedIDs(t *testing.T) {
	store := mocks.NewMockArticleRepository(t)
	store.EXPECT().CountPublishedArticles(mock.Anything).Return(int64(4), nil)
	store.EXPECT().FetchArticleSummariesByID(mock.Anything, []int64{9, 1}).Return(summaries(9, 1), nil)

	controller := ArticlesPublicList{Command: command.NewListPublicArticles(store)}

	rec := httptest.NewRecorder()
	controller.ServeHTTP(rec, newTestRequest(http.MethodGet,
		"/api/articles/public?sort=random&orderedIds=5,2,9,1&limit=2&page=2", "", testContext(), nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp ArticlesPublicListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Nil(t, resp.FeaturedArticle)
	assert.Empty(t, resp.AllRandomIDs)
	assert.Equal(t, 2, resp.TotalPages)
	require.Len(t, resp.Articles, 2)
	assert.Equal(t, int64(9), resp.Articles[0].ID)
	assert.Equal(t, int64(1), resp.Articles[1].ID)
}

func TestArticlesPublicList_ServeHTTP_RandomWithSeed(t *testing.T) {
	ids := []int64{1, 2, 3, 4, 5, 6, 7, 8}
	permutation := domain.ShuffleArticleIDs(ids, 42)

	store := mocks.NewMockArticleRepository(t)
	store.EXPECT().CountPublishedArticles(mock.Anything).Return(int64(len(ids)), nil)
	store.EXPECT().ListPublishedArticleIDs(mock.Anything).Return(ids, nil)
	store.EXPECT().
		FetchArticleSummariesByID(mock.Anything, permutation[:3]).
		Return(summaries(permutation[:3]...), nil)
	store.EXPECT().FetchLatestPublishedArticle(mock.Anything).Return(summaries(8)[0], nil)

	controller := ArticlesPublicList{Command: command.NewListPublicArticles(store), CacheMaxAge: time.Minute}

	rec := httptest.NewRecorder()
	controller.ServeHTTP(rec, newTestRequest(http.MethodGet,
		"/api/articles/public?sort=random&seed=42&limit=3", "", testContext(), nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))

	var resp ArticlesPublicListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, joinIDs(permutation), resp.AllRandomIDs)
	assert.Equal(t, 3, resp.TotalPages)
	require.Len(t, resp.Articles, 3)
	for i, a := range resp.Articles {
		assert.Equal(t, permutation[i], a.ID)
	}
}

func TestArticlesPublicList_ServeHTTP_EmptyPage(t *testing.T) {
	store := mocks.NewMockArticleRepository(t)
	store.EXPECT().CountPublishedArticles(mock.Anything).Return(int64(2), nil)
	store.EXPECT().FetchArticleSummariesByID(mock.Anything, []int64{}).Return(nil, nil)

	controller := ArticlesPublicList{Command: command.NewListPublicArticles(store)}

	rec := httptest.NewRecorder()
	controller.ServeHTTP(rec, newTestRequest(http.MethodGet,
		"/api/articles/public?sort=random&orderedIds=1,2&page=5", "", testContext(), nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"articles":[]`)
}

func TestArticlesPublicList_ServeHTTP_StoreError(t *testing.T) {
	store := mocks.NewMockArticleRepository(t)
	store.EXPECT().CountPublishedArticles(mock.Anything).Return(int64(0), errors.New("connection refused"))

	controller := ArticlesPublicList{Command: command.NewListPublicArticles(store)}

	rec := httptest.NewRecorder()
	controller.ServeHTTP(rec, newTestRequest(http.MethodGet, "/api/articles/public", "", testContext(), nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"message":"Unable to load articles"}`, rec.Body.String())
	assert.Empty(t, rec.Header().Get("Cache-Control"))
}

func TestArticlesPublicList_ServeHTTP_HugePageIsEmpty(t *testing.T) {
	store := mocks.NewMockArticleRepository(t)
	store.EXPECT().CountPublishedArticles(mock.Anything).Return(int64(14), nil)

	controller := ArticlesPublicList{Command: command.NewListPublicArticles(store), CacheMaxAge: time.Minute}

	rec := httptest.NewRecorder()
	controller.ServeHTTP(rec, newTestRequest(http.MethodGet,
		"/api/articles/public?page=3074457345618258603&limit=6", "", testContext(), nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp ArticlesPublicListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.Articles)
	assert.Nil(t, resp.FeaturedArticle)
	assert.Equal(t, 3, resp.TotalPages)
	assert.Equal(t, 3074457345618258603, resp.CurrentPage)
}

func TestArticlesPublicList_ServeHTTP_LargeLimit(t *testing.T) {
	store := mocks.NewMockArticleRepository(t)
	store.EXPECT().CountPublishedArticles(mock.Anything).Return(int64(260), nil)
	store.EXPECT().
		ListPublishedArticles(mock.Anything, domain.ArticleSortRecent, 250, 250).
		Return(summaries(10, 9, 8, 7, 6, 5, 4, 3, 2, 1), nil)

	controller := ArticlesPublicList{Command: command.NewListPublicArticles(store)}

	rec := httptest.NewRecorder()
	controller.ServeHTTP(rec, newTestRequest(http.MethodGet,
		"/api/articles/public?limit=250&page=2", "", testContext(), nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp ArticlesPublicListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.TotalPages)
	assert.Len(t, resp.Articles, 10)
}

func TestArticlesPublicList_ServeHTTP_ExcerptsWithEscapedMarkup(t *testing.T) {
	article := domain.ArticleSummary{
		ID:      3,
		Title:   "Markup notes",
		Content: domain.SanitizeContent("<p>Use the &lt;script&gt; tag sparingly</p>"),
	}

	store := mocks.NewMockArticleRepository(t)
	store.EXPECT().CountPublishedArticles(mock.Anything).Return(int64(1), nil)
	store.EXPECT().
		ListPublishedArticles(mock.Anything, domain.ArticleSortRecent, 6, 0).
		Return([]domain.ArticleSummary{article}, nil)
	store.EXPECT().FetchLatestPublishedArticle(mock.Anything).Return(article, nil)

	controller := ArticlesPublicList{Command: command.NewListPublicArticles(store)}

	rec := httptest.NewRecorder()
	controller.ServeHTTP(rec, newTestRequest(http.MethodGet, "/api/articles/public", "", testContext(), nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp ArticlesPublicListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Articles, 1)
	require.NotNil(t, resp.FeaturedArticle)
	assert.NotContains(t, resp.Articles[0].Excerpt, "<")
	assert.NotContains(t, resp.FeaturedArticle.Excerpt, "<")
}
