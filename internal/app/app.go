package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/cafeorigenes/origenes-api/internal/auth"
	"github.com/cafeorigenes/origenes-api/internal/datasources"
	"github.com/cafeorigenes/origenes-api/internal/datasources/gemini"
	"github.com/cafeorigenes/origenes-api/internal/datasources/mysql"
	"github.com/cafeorigenes/origenes-api/internal/datasources/yahoo"
	"github.com/cafeorigenes/origenes-api/internal/domain"
	"github.com/cafeorigenes/origenes-api/internal/transport/web/router"
	"github.com/cafeorigenes/origenes-api/internal/transport/web/server"
)

const (
	defaultJWTTTL      = time.Hour
	defaultGeminiModel = "gemini-2.0-flash"
)

type Component interface {
	Run(ctx context.Context) error
}

func Setup(ctx context.Context) ([]Component, error) {
	db, err := setupDatabase(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up database: %w", err)
	}
	dataset := mysql.New(db)

	jwtConfig := setupJWTConfig(ctx)

	authMiddleware, err := setupAuthMiddleware(ctx, jwtConfig)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("setting up auth middleware: %w", err)
	}

	chat, err := setupChatModel(ctx)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("setting up chat model: %w", err)
	}

	market, err := setupMarketDataFetcher(ctx)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("setting up market data fetcher: %w", err)
	}

	httpRouter, err := router.MakeRouter(router.Config{
		Dataset:            dataset,
		Market:             market,
		Chat:               chat,
		Tokens:             auth.NewJWTIssuer(jwtConfig),
		RSSFeedBaseURL:     MustGetEnvAsString(ctx, "RSS_FEED_BASE_URL"),
		RSSFeedAuthorName:  MustGetEnvAsString(ctx, "RSS_FEED_AUTHOR_NAME"),
		RSSFeedAuthorEmail: MustGetEnvAsString(ctx, "RSS_FEED_AUTHOR_EMAIL"),
		AllowedOrigin:      MustGetEnvAsString(ctx, "CORS_ALLOWED_ORIGIN"),
		PublicCacheMaxAge:  MustGetEnvAsDuration(ctx, "PUBLIC_CACHE_MAX_AGE"),
		ChatRatePerMinute:  MustGetEnvAsInt(ctx, "CHAT_RATE_PER_MINUTE"),
	}, authMiddleware, router.NewMetrics())
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("unable to create HTTP router: %w", err)
	}

	return []Component{
		&closeAfterRun{
			Component: &server.Server{
				TLSDisabled:       MustGetEnvAsBoolean(ctx, "HTTP_TLS_DISABLED"),
				TLSDisabledPort:   MustGetEnvAsInt(ctx, "PORT"),
				AutocertHostnames: MustGetEnvAsStrings(ctx, "HTTP_AUTOCERT_HOSTNAMES"),
				Router:            httpRouter,
			},
			db: db,
		},
	}, nil
}

// closeAfterRun closes the connection pool once the wrapped component has stopped.
type closeAfterRun struct {
	Component
	db *sql.DB
}

func (c *closeAfterRun) Run(ctx context.Context) error {
	runErr := c.Component.Run(ctx)

	if err := c.db.Close(); err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to close database", "error", err)
	}
	return runErr
}

func setupDatabase(ctx context.Context) (*sql.DB, error) {
	db, err := mysql.Connect(ctx, MustGetEnvAsString(ctx, "MYSQL_URI"))
	if err != nil {
		return nil, fmt.Errorf("connecting to MySQL: %w", err)
	}

	if MustGetEnvAsBoolean(ctx, "MIGRATE_ON_START") {
		if err := mysql.Migrate(ctx, db, mysql.MigrateUp); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migrating database: %w", err)
		}
	}

	return db, nil
}

func setupJWTConfig(ctx context.Context) auth.JWTConfig {
	ttl := defaultJWTTTL
	if _, ok := os.LookupEnv("JWT_TTL"); ok {
		ttl = MustGetEnvAsDuration(ctx, "JWT_TTL")
	}

	return auth.JWTConfig{
		Secret:   MustGetEnvAsString(ctx, "JWT_SECRET"),
		Issuer:   MustGetEnvAsString(ctx, "JWT_ISSUER"),
		Audience: MustGetEnvAsString(ctx, "JWT_AUDIENCE"),
		TTL:      ttl,
	}
}

func setupAuthMiddleware(ctx context.Context, jwtConfig auth.JWTConfig) (func(http.Handler) http.Handler, error) {
	var validators []router.AuthValidator

	for _, driver := range MustGetEnvAsStrings(ctx, "AUTH_DRIVERS") {
		switch driver {
		case "jwt":
			v, err := router.NewJWTValidator(jwtConfig)
			if err != nil {
				return nil, fmt.Errorf("creating JWT validator: %w", err)
			}
			validators = append(validators, v)
		default:
			return nil, fmt.Errorf("unknown auth driver [%s]", driver)
		}
	}

	return router.NewAuthMiddleware(validators), nil
}

func setupChatModel(ctx context.Context) (datasources.ChatModel, error) {
	switch driver := MustGetEnvAsString(ctx, "CHAT_DRIVER"); driver {
	case "null":
		return datasources.NullChatModel{}, nil
	case "gemini":
		return gemini.NewClient(
			MustGetEnvAsString(ctx, "GEMINI_API_KEY"),
			GetEnvAsStringOrDefault("GEMINI_MODEL", defaultGeminiModel),
		), nil
	default:
		return nil, fmt.Errorf("unknown chat driver [%s]", driver)
	}
}

func setupMarketDataFetcher(ctx context.Context) (datasources.MarketDataFetcher, error) {
	switch driver := MustGetEnvAsString(ctx, "MARKET_DRIVER"); driver {
	case "null":
		return datasources.NullMarketDataFetcher{}, nil
	case "yahoo":
		return yahoo.NewClient(MustGetEnvAsDuration(ctx, "MARKET_CACHE_TTL")), nil
	default:
		return nil, fmt.Errorf("unknown market driver [%s]", driver)
	}
}
