package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/cafeorigenes/origenes-api/internal/command"
	"github.com/cafeorigenes/origenes-api/internal/datasources/mocks"
	"github.com/cafeorigenes/origenes-api/internal/domain"
)

func TestCommentsArticleList_ServeHTTP(t *testing.T) {
	comments := mocks.NewMockCommentRepository(t)
	comments.EXPECT().CountApprovedComments(mock.Anything, int64(3)).Return(int64(7), nil)
	comments.EXPECT().ListApprovedComments(mock.Anything, int64(3), 3, 3).Return([]domain.PublicComment{
		{ID: 11, Content: "Delicioso", AuthorName: "Anonymous"},
	}, nil)

	controller := CommentsArticleList{Command: &command.ListArticleComments{Lister: comments}}

	rec := httptest.NewRecorder()
	controller.ServeHTTP(rec, newTestRequest(http.MethodGet, "/api/comments/article/3?page=2&limit=zero", "",
		testContext(), map[string]string{"articleId": "3"}))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp CommentsArticleListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, CommentsPagination{Page: 2, Limit: 3, TotalComments: 7, TotalPages: 3}, resp.Pagination)
	require.Len(t, resp.Comments, 1)
	assert.Equal(t, "Anonymous", resp.Comments[0].AuthorName)
}

func TestCommentCreate_ServeHTTP(t *testing.T) {
	cases := []struct {
		name       string
		anonymous  bool
		setup      func(r *http.Request) *http.Request
		body       string
		want       *domain.NewComment
		wantStatus int
	}{
		{
			name:       "registered_reader",
			setup:      testContextWithUser(testReader),
			body:       `{"content":"Gran artículo"}`,
			want:       &domain.NewComment{ArticleID: 3, Content: "Gran artículo", UserID: &testReader.ID},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "registered_reader_empty_content",
			setup:      testContextWithUser(testReader),
			body:       `{"content":""}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "registered_route_without_token",
			setup:      testContext(),
			body:       `{"content":"hola"}`,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:      "anonymous",
			anonymous: true,
			setup:     testContext(),
			body:      `{"content":"Me encantó","author_name":"Lucía","author_email":"lucia@example.com"}`,
			want: &domain.NewComment{
				ArticleID:   3,
				Content:     "Me encantó",
				AuthorName:  ptr("Lucía"),
				AuthorEmail: ptr("lucia@example.com"),
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "anonymous_bad_email",
			anonymous:  true,
			setup:      testContext(),
			body:       `{"content":"x","author_name":"Lucía","author_email":"not-an-email"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "anonymous_missing_name",
			anonymous:  true,
			setup:      testContext(),
			body:       `{"content":"x","author_email":"lucia@example.com"}`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			comments := mocks.NewMockCommentRepository(t)
			if tc.want != nil {
				comments.EXPECT().CreateComment(mock.Anything, *tc.want).Return(int64(40), nil)
			}

			controller := CommentCreate{Creator: comments, Anonymous: tc.anonymous}

			rec := httptest.NewRecorder()
			controller.ServeHTTP(rec, newTestRequest(http.MethodPost, "/api/comments/article/3", tc.body,
				tc.setup, map[string]string{"articleId": "3"}))

			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}

func TestCommentsDashboardList_ServeHTTP(t *testing.T) {
	cases := []struct {
		name       string
		user       domain.AuthUser
		authorID   *int64
		wantStatus int
	}{
		{name: "admin_sees_all", user: testAdmin, wantStatus: http.StatusOK},
		{name: "editor_sees_own", user: testEditor, authorID: &testEditor.ID, wantStatus: http.StatusOK},
		{name: "reader_forbidden", user: testReader, wantStatus: http.StatusForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			comments := mocks.NewMockCommentRepository(t)
			if tc.wantStatus == http.StatusOK {
				comments.EXPECT().ListDashboardComments(mock.Anything, tc.authorID).Return([]domain.DashboardComment{}, nil)
			}

			controller := CommentsDashboardList{Command: &command.ListDashboardComments{Lister: comments}}

			rec := httptest.NewRecorder()
			controller.ServeHTTP(rec, newTestRequest(http.MethodGet, "/api/comments", "", testContextWithUser(tc.user), nil))

			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}

func TestCommentModerate_ServeHTTP(t *testing.T) {
	cases := []struct {
		name       string
		user       domain.AuthUser
		action     command.CommentAction
		expect     func(comments *mocks.MockCommentRepository, articles *mocks.MockArticleRepository)
		wantStatus int
		wantBody   string
	}{
		{
			name:   "article_author_approves",
			user:   testEditor,
			action: command.CommentActionApprove,
			expect: func(comments *mocks.MockCommentRepository, articles *mocks.MockArticleRepository) {
				comments.EXPECT().FetchCommentArticleID(mock.Anything, int64(9)).Return(int64(4), nil)
				articles.EXPECT().FetchArticleAuthorID(mock.Anything, int64(4)).Return(testEditor.ID, nil)
				comments.EXPECT().ApproveComment(mock.Anything, int64(9)).Return(nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"message":"Comment approved"}`,
		},
		{
			name:   "admin_deletes",
			user:   testAdmin,
			action: command.CommentActionDelete,
			expect: func(comments *mocks.MockCommentRepository, articles *mocks.MockArticleRepository) {
				comments.EXPECT().FetchCommentArticleID(mock.Anything, int64(9)).Return(int64(4), nil)
				articles.EXPECT().FetchArticleAuthorID(mock.Anything, int64(4)).Return(testEditor.ID, nil)
				comments.EXPECT().DeleteComment(mock.Anything, int64(9)).Return(nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"message":"Comment deleted"}`,
		},
		{
			name:   "other_editor_forbidden",
			user:   domain.AuthUser{ID: 8, Role: domain.RoleEditor},
			action: command.CommentActionApprove,
			expect: func(comments *mocks.MockCommentRepository, articles *mocks.MockArticleRepository) {
				comments.EXPECT().FetchCommentArticleID(mock.Anything, int64(9)).Return(int64(4), nil)
				articles.EXPECT().FetchArticleAuthorID(mock.Anything, int64(4)).Return(testEditor.ID, nil)
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name:   "missing_comment",
			user:   testAdmin,
			action: command.CommentActionDelete,
			expect: func(comments *mocks.MockCommentRepository, _ *mocks.MockArticleRepository) {
				comments.EXPECT().FetchCommentArticleID(mock.Anything, int64(9)).Return(int64(0), domain.ErrNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:   "missing_article",
			user:   testAdmin,
			action: command.CommentActionApprove,
			expect: func(comments *mocks.MockCommentRepository, articles *mocks.MockArticleRepository) {
				comments.EXPECT().FetchCommentArticleID(mock.Anything, int64(9)).Return(int64(4), nil)
				articles.EXPECT().FetchArticleAuthorID(mock.Anything, int64(4)).Return(int64(0), domain.ErrNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			comments := mocks.NewMockCommentRepository(t)
			articles := mocks.NewMockArticleRepository(t)
			tc.expect(comments, articles)

			controller := CommentModerate{
				Command: &command.ModerateComment{Comments: comments, Authors: articles},
				Action:  tc.action,
			}

			rec := httptest.NewRecorder()
			controller.ServeHTTP(rec, newTestRequest(http.MethodPut, "/api/comments/9/approve", "",
				testContextWithUser(tc.user), map[string]string{"id": "9"}))

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantBody != "" {
				assert.JSONEq(t, tc.wantBody, rec.Body.String())
			}
		})
	}
}
