package router

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/cafeorigenes/origenes-api/internal/auth"
	"github.com/cafeorigenes/origenes-api/internal/command"
	"github.com/cafeorigenes/origenes-api/internal/datasources"
	"github.com/cafeorigenes/origenes-api/internal/transport/web/controller"
)

type Config struct {
	Dataset datasources.DatasetRepository
	Market  datasources.MarketDataFetcher
	Chat    datasources.ChatModel
	Tokens  *auth.JWTIssuer

	RSSFeedBaseURL     string
	RSSFeedAuthorName  string
	RSSFeedAuthorEmail string

	AllowedOrigin     string
	PublicCacheMaxAge time.Duration
	ChatRatePerMinute int
}

func MakeRouter(
	cfg Config,
	authMiddleware func(http.Handler) http.Handler,
	metrics *Metrics,
) (http.Handler, error) {
	dataset := cfg.Dataset

	r := mux.NewRouter()
	r.Use(requestContextMiddleware)
	r.Use(metrics.Middleware)
	r.Use(newCORSMiddleware(cfg.AllowedOrigin))
	r.Use(authMiddleware)

	r.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()

	api.Handle("", controller.Root{}).Methods(http.MethodGet, http.MethodOptions)
	api.Handle("/", controller.Root{}).Methods(http.MethodGet, http.MethodOptions)

	registerUser := command.NewRegisterUser(dataset)
	stats := controller.DashboardStats{Command: &command.GetDashboardStats{Counter: dataset}}

	// Auth
	api.Handle("/auth/register", controller.AuthRegister{
		Command: registerUser,
	}).Methods(http.MethodPost, http.MethodOptions)

	api.Handle("/auth/login", controller.AuthLogin{
		Command: &command.LoginUser{Users: dataset, Tokens: cfg.Tokens},
	}).Methods(http.MethodPost, http.MethodOptions)

	api.Handle("/auth/stats", requireAuthMiddleware(stats)).Methods(http.MethodGet, http.MethodOptions)
	api.Handle("/dashboard/stats", requireAuthMiddleware(stats)).Methods(http.MethodGet, http.MethodOptions)

	// Articles. The slug route is registered last so the fixed paths win.
	api.Handle("/articles/public", controller.ArticlesPublicList{
		Command:     command.NewListPublicArticles(dataset),
		CacheMaxAge: cfg.PublicCacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	api.Handle("/articles/rss", controller.RSS{
		FeedBaseURL:     cfg.RSSFeedBaseURL,
		FeedAuthorName:  cfg.RSSFeedAuthorName,
		FeedAuthorEmail: cfg.RSSFeedAuthorEmail,
		Lister:          dataset,
		CacheMaxAge:     cfg.PublicCacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	api.Handle("/articles/admin", requireAdminMiddleware(controller.ArticlesAdminList{
		Lister: dataset,
	})).Methods(http.MethodGet, http.MethodOptions)

	api.Handle("/articles/my-articles/{userId:[0-9]+}", requireAuthMiddleware(controller.ArticlesAuthorList{
		Command: &command.ListAuthorArticles{Lister: dataset},
	})).Methods(http.MethodGet, http.MethodOptions)

	api.Handle("/articles/edit/{id:[0-9]+}", requireAuthMiddleware(controller.ArticleEditGet{
		Command: &command.GetArticleForEdit{Fetcher: dataset},
	})).Methods(http.MethodGet, http.MethodOptions)

	api.Handle("/articles", requireAuthMiddleware(controller.ArticleCreate{
		Command: &command.CreateArticle{Creator: dataset},
	})).Methods(http.MethodPost, http.MethodOptions)

	api.Handle("/articles/{id:[0-9]+}", requireAuthMiddleware(controller.ArticleUpdate{
		Command: &command.UpdateArticle{Authors: dataset, Updater: dataset},
	})).Methods(http.MethodPut, http.MethodOptions)

	api.Handle("/articles/{id:[0-9]+}", requireAuthMiddleware(controller.ArticleDelete{
		Command: &command.DeleteArticle{Authors: dataset, Deleter: dataset},
	})).Methods(http.MethodDelete)

	api.Handle("/articles/{id:[0-9]+}/reaction", controller.ArticleReactionSet{
		Command: &command.ChangeArticleReaction{Changer: dataset},
	}).Methods(http.MethodPost, http.MethodOptions)

	// Comments
	moderateComment := &command.ModerateComment{Comments: dataset, Authors: dataset}

	api.Handle("/comments", requireAuthMiddleware(controller.CommentsDashboardList{
		Command: &command.ListDashboardComments{Lister: dataset},
	})).Methods(http.MethodGet, http.MethodOptions)

	api.Handle("/comments/article/{articleId:[0-9]+}", controller.CommentsArticleList{
		Command: &command.ListArticleComments{Lister: dataset},
	}).Methods(http.MethodGet, http.MethodOptions)

	api.Handle("/comments/article/{articleId:[0-9]+}", requireAuthMiddleware(controller.CommentCreate{
		Creator: dataset,
	})).Methods(http.MethodPost)

	api.Handle("/comments/public/article/{articleId:[0-9]+}", controller.CommentCreate{
		Creator:   dataset,
		Anonymous: true,
	}).Methods(http.MethodPost, http.MethodOptions)

	api.Handle("/comments/{id:[0-9]+}/approve", requireAuthMiddleware(controller.CommentModerate{
		Command: moderateComment,
		Action:  command.CommentActionApprove,
	})).Methods(http.MethodPut, http.MethodOptions)

	api.Handle("/comments/{id:[0-9]+}", requireAuthMiddleware(controller.CommentModerate{
		Command: moderateComment,
		Action:  command.CommentActionDelete,
	})).Methods(http.MethodDelete, http.MethodOptions)

	// Users
	api.Handle("/users", requireAdminMiddleware(controller.UsersList{
		Lister: dataset,
	})).Methods(http.MethodGet, http.MethodOptions)

	api.Handle("/users", requireAdminMiddleware(controller.UserCreate{
		Command: registerUser,
	})).Methods(http.MethodPost)

	api.Handle("/users/{id:[0-9]+}", requireAdminMiddleware(controller.UserRoleUpdate{
		Updater: dataset,
	})).Methods(http.MethodPut, http.MethodOptions)

	api.Handle("/users/{id:[0-9]+}", requireAdminMiddleware(controller.UserDelete{
		Deleter: dataset,
	})).Methods(http.MethodDelete)

	// Locations
	api.Handle("/locations", controller.LocationsList{
		Lister:      dataset,
		CacheMaxAge: cfg.PublicCacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	api.Handle("/locations", requireAdminMiddleware(controller.LocationCreate{
		Repository: dataset,
	})).Methods(http.MethodPost)

	api.Handle("/locations/{id:[0-9]+}", requireAdminMiddleware(controller.LocationUpdate{
		Repository: dataset,
	})).Methods(http.MethodPut, http.MethodOptions)

	api.Handle("/locations/{id:[0-9]+}", requireAdminMiddleware(controller.LocationDelete{
		Repository: dataset,
	})).Methods(http.MethodDelete)

	// Market reports
	api.Handle("/reports/latest", controller.ReportLatest{
		Command:     &command.GetMarketSummary{Reports: dataset, Market: cfg.Market},
		CacheMaxAge: cfg.PublicCacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	api.Handle("/reports", requireAdminMiddleware(controller.ReportsList{
		Lister: dataset,
	})).Methods(http.MethodGet, http.MethodOptions)

	api.Handle("/reports", requireAdminMiddleware(controller.ReportCreate{
		Creator: dataset,
	})).Methods(http.MethodPost)

	api.Handle("/reports/{id:[0-9]+}", requireAdminMiddleware(controller.ReportDelete{
		Deleter: dataset,
	})).Methods(http.MethodDelete, http.MethodOptions)

	// AI assistant
	chatLimiter := NewRateLimiter(cfg.ChatRatePerMinute, cfg.ChatRatePerMinute)
	api.Handle("/ai/chat", chatLimiter.Middleware(controller.AIChat{
		Command: &command.ChatWithAssistant{Titles: dataset, Model: cfg.Chat},
	})).Methods(http.MethodPost, http.MethodOptions)

	api.Handle("/articles/{slug}", controller.ArticleGet{
		Fetcher:     dataset,
		CacheMaxAge: cfg.PublicCacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	return r, nil
}
