package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/cafeorigenes/origenes-api/internal/app"
	"github.com/cafeorigenes/origenes-api/internal/datasources/mysql"
	"github.com/cafeorigenes/origenes-api/internal/domain"
)

import _ "github.com/joho/godotenv/autoload"

// Applies the embedded schema migrations. Usage: migrate [up|down]
func main() {
	ctx := context.Background()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)
	ctx = domain.ContextWithLogger(ctx, logger)

	direction := mysql.MigrateUp
	if len(os.Args) > 1 {
		direction = mysql.MigrationDirection(os.Args[1])
	}
	if direction != mysql.MigrateUp && direction != mysql.MigrateDown {
		fmt.Fprintf(os.Stderr, "usage: %s [up|down]\n", os.Args[0])
		os.Exit(2)
	}

	if err := run(ctx, direction); err != nil {
		logger.ErrorContext(ctx, "migration failed", "direction", direction, "error", err)
		os.Exit(1)
	}
	logger.InfoContext(ctx, "migration complete", "direction", direction)
}

func run(ctx context.Context, direction mysql.MigrationDirection) error {
	db, err := mysql.Connect(ctx, app.MustGetEnvAsString(ctx, "MYSQL_URI"))
	if err != nil {
		return fmt.Errorf("connecting to MySQL: %w", err)
	}
	defer func() { _ = db.Close() }()

	return mysql.Migrate(ctx, db, direction)
}
