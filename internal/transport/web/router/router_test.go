package router

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/cafeorigenes/origenes-api/internal/auth"
	"github.com/cafeorigenes/origenes-api/internal/datasources"
	"github.com/cafeorigenes/origenes-api/internal/datasources/mocks"
	"github.com/cafeorigenes/origenes-api/internal/domain"
)

var testJWTConfig = auth.JWTConfig{
	Secret:   "router-test-secret",
	Issuer:   "origenes-test",
	Audience: "origenes-web",
	TTL:      time.Hour,
}

// testDataset stitches the per-concern mocks into a DatasetRepository.
type testDataset struct {
	*mocks.MockArticleRepository
	*mocks.MockCommentRepository
	*mocks.MockUserRepository
	*mocks.MockLocationRepository
	*mocks.MockMarketReportRepository
	stats *mocks.MockStatsCounter
}

func (d testDataset) CountComments(ctx context.Context) (int64, error) { return d.stats.CountComments(ctx) }
func (d testDataset) CountUsers(ctx context.Context) (int64, error)    { return d.stats.CountUsers(ctx) }

var _ datasources.DatasetRepository = testDataset{}

func newTestDataset(t *testing.T) testDataset {
	return testDataset{
		MockArticleRepository:      mocks.NewMockArticleRepository(t),
		MockCommentRepository:      mocks.NewMockCommentRepository(t),
		MockUserRepository:         mocks.NewMockUserRepository(t),
		MockLocationRepository:     mocks.NewMockLocationRepository(t),
		MockMarketReportRepository: mocks.NewMockMarketReportRepository(t),
		stats:                      mocks.NewMockStatsCounter(t),
	}
}

func newTestRouter(t *testing.T, dataset testDataset, chatPerMinute int) (http.Handler, *auth.JWTIssuer) {
	t.Helper()

	validator, err := NewJWTValidator(testJWTConfig)
	require.NoError(t, err)

	issuer := auth.NewJWTIssuer(testJWTConfig)
	handler, err := MakeRouter(Config{
		Dataset:           dataset,
		Market:            datasources.NullMarketDataFetcher{},
		Chat:              datasources.NullChatModel{},
		Tokens:            issuer,
		AllowedOrigin:     "https://origenes.example",
		PublicCacheMaxAge: time.Minute,
		ChatRatePerMinute: chatPerMinute,
	}, NewAuthMiddleware([]AuthValidator{validator}), NewMetrics())
	require.NoError(t, err)

	return handler, issuer
}

func serve(handler http.Handler, method, target, body, token string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	req = req.WithContext(domain.ContextWithLogger(req.Context(), slog.New(slog.DiscardHandler)))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func issue(t *testing.T, issuer *auth.JWTIssuer, id int64, role domain.Role) string {
	t.Helper()
	token, err := issuer.IssueToken(domain.User{ID: id, Role: role})
	require.NoError(t, err)
	return token
}

func TestRouter_FixedArticleRoutesWinOverSlug(t *testing.T) {
	dataset := newTestDataset(t)
	dataset.MockArticleRepository.EXPECT().
		FetchPublishedArticleBySlug(mock.Anything, "cafe-de-narino").
		Return(domain.Article{ID: 4, Slug: "cafe-de-narino"}, nil)
	dataset.MockArticleRepository.EXPECT().
		ListPublishedArticles(mock.Anything, domain.ArticleSortRecent, mock.Anything, 0).
		Return([]domain.ArticleSummary{}, nil)

	handler, _ := newTestRouter(t, dataset, 10)

	rec := serve(handler, http.MethodGet, "/api/articles/cafe-de-narino", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	rec = serve(handler, http.MethodGet, "/api/articles/rss", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/xml", rec.Header().Get("Content-Type"))
}

func TestRouter_Authentication(t *testing.T) {
	dataset := newTestDataset(t)
	handler, issuer := newTestRouter(t, dataset, 10)

	t.Run("no_token", func(t *testing.T) {
		rec := serve(handler, http.MethodPost, "/api/articles", `{}`, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage_token", func(t *testing.T) {
		rec := serve(handler, http.MethodPost, "/api/articles", `{}`, "not.a.jwt")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("token_from_another_issuer", func(t *testing.T) {
		other := auth.NewJWTIssuer(auth.JWTConfig{
			Secret: testJWTConfig.Secret, Issuer: "someone-else", Audience: testJWTConfig.Audience, TTL: time.Hour,
		})
		rec := serve(handler, http.MethodPost, "/api/articles", `{}`, issue(t, other, 7, domain.RoleEditor))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid_token_reaches_controller", func(t *testing.T) {
		rec := serve(handler, http.MethodPost, "/api/articles", `{"title":""}`, issue(t, issuer, 7, domain.RoleEditor))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("public_route_ignores_missing_token", func(t *testing.T) {
		rec := serve(handler, http.MethodGet, "/api", "", "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestRouter_AdminRoutes(t *testing.T) {
	dataset := newTestDataset(t)
	dataset.MockUserRepository.EXPECT().ListUsers(mock.Anything).Return([]domain.User{}, nil)

	handler, issuer := newTestRouter(t, dataset, 10)

	rec := serve(handler, http.MethodGet, "/api/users", "", issue(t, issuer, 7, domain.RoleEditor))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = serve(handler, http.MethodGet, "/api/users", "", issue(t, issuer, 1, domain.RoleAdmin))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_DashboardStatsRequireAuth(t *testing.T) {
	dataset := newTestDataset(t)
	dataset.MockArticleRepository.EXPECT().CountPublishedArticles(mock.Anything).Return(int64(3), nil)
	dataset.stats.EXPECT().CountComments(mock.Anything).Return(int64(2), nil)
	dataset.stats.EXPECT().CountUsers(mock.Anything).Return(int64(1), nil)

	handler, issuer := newTestRouter(t, dataset, 10)

	rec := serve(handler, http.MethodGet, "/api/dashboard/stats", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = serve(handler, http.MethodGet, "/api/dashboard/stats", "", issue(t, issuer, 20, domain.RoleUser))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"articles":3,"comments":2,"users":1}`, rec.Body.String())
}

func TestRouter_CORSPreflight(t *testing.T) {
	handler, _ := newTestRouter(t, newTestDataset(t), 10)

	rec := serve(handler, http.MethodOptions, "/api/articles/12", "", "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://origenes.example", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "Authorization")
}

func TestRouter_ChatRateLimited(t *testing.T) {
	handler, _ := newTestRouter(t, newTestDataset(t), 1)

	rec := serve(handler, http.MethodPost, "/api/ai/chat", `{"message":""}`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(handler, http.MethodPost, "/api/ai/chat", `{"message":""}`, "")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
}

func TestRouter_Metrics(t *testing.T) {
	handler, _ := newTestRouter(t, newTestDataset(t), 10)

	serve(handler, http.MethodGet, "/api", "", "")

	rec := serve(handler, http.MethodGet, "/metrics", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `origenes_http_requests_total{method="GET",route="/api",status="200"} 1`)
}
