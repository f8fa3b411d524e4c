package controller

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/cafeorigenes/origenes-api/internal/domain"
)

var (
	testAdmin  = domain.AuthUser{ID: 1, Role: domain.RoleAdmin}
	testEditor = domain.AuthUser{ID: 7, Role: domain.RoleEditor}
	testReader = domain.AuthUser{ID: 20, Role: domain.RoleUser}
)

func testContext() func(r *http.Request) *http.Request {
	return func(r *http.Request) *http.Request {
		ctx := domain.ContextWithLogger(r.Context(), slog.New(slog.DiscardHandler))
		return r.WithContext(ctx)
	}
}

func testContextWithUser(user domain.AuthUser) func(r *http.Request) *http.Request {
	return func(r *http.Request) *http.Request {
		ctx := domain.ContextWithLogger(r.Context(), slog.New(slog.DiscardHandler))
		ctx = domain.ContextWithUser(ctx, user)
		return r.WithContext(ctx)
	}
}

func newTestRequest(
	method, target, body string, setup func(r *http.Request) *http.Request, vars map[string]string,
) *http.Request {
	var req *http.Request
	if body == "" {
		req, _ = http.NewRequest(method, target, nil)
	} else {
		req, _ = http.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	req = setup(req)
	if vars != nil {
		req = mux.SetURLVars(req, vars)
	}
	return req
}

func ptr[T any](v T) *T {
	return &v
}
