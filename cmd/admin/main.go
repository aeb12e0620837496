package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tendant/chi-demo/app"
	"github.com/tendant/chi-demo/middleware"
	"github.com/tendant/simple-slug/pkg/slugkit"
	"github.com/tendant/simple-slug/pkg/slugkit/api"
	psqlrepo "github.com/tendant/simple-slug/pkg/slugkit/repo/postgres"
)

type Config struct {
	DB           DbConfig
	ApiKeySHA256 string `env:"API_KEY_SHA256" env-default:"1"`
}

type DbConfig struct {
	Port     uint16 `env:"SLUG_PG_PORT" env-default:"5432"`
	Host     string `env:"SLUG_PG_HOST" env-default:"localhost"`
	Name     string `env:"SLUG_PG_NAME" env-default:"cms_db"`
	User     string `env:"SLUG_PG_USER" env-default:"slug"`
	Password string `env:"SLUG_PG_PASSWORD" env-default:"pwd"`
}

func (c DbConfig) toDatabaseUrl() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.User, c.Password),
		Host:   fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:   c.Name,
	}
	return u.String()
}

func NewDbPool(ctx context.Context, dbConfig DbConfig) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dbConfig.toDatabaseUrl())
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	// Test the connection
	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return pool, nil
}

func main() {
	// Load configuration
	var config Config
	if err := cleanenv.ReadEnv(&config); err != nil {
		slog.Error("Failed to read configuration", "err", err)
		os.Exit(1)
	}
	apiKeyConfig := middleware.ApiKeyConfig{
		APIKeys: map[string]string{
			"key1": config.ApiKeySHA256,
		},
	}

	// Initialize database connection
	ctx := context.Background()
	dbPool, err := NewDbPool(ctx, config.DB)
	if err != nil {
		slog.Error("Failed to connect to database", "err", err)
		os.Exit(1)
	}

	// Initialize repository and service
	repo := psqlrepo.NewWithPool(dbPool)
	svc, err := slugkit.New(
		slugkit.WithRepository(repo),
		slugkit.WithEventSink(slugkit.NewLogEventSink(nil)),
	)
	if err != nil {
		slog.Error("Failed to build slug service", "err", err)
		os.Exit(1)
	}

	server := app.DefaultWithoutRoutes()

	app.RoutesHealthz(server.R)
	app.RoutesHealthzReady(server.R)

	// Initialize API handler
	slugHandler := api.NewSlugHandler(svc, repo)

	apiKeyMiddleware, err := middleware.ApiKeyMiddleware(apiKeyConfig)
	if err != nil {
		slog.Error("Failed initialize API Key middleware", "err", err)
		return
	}
	server.R.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(apiKeyMiddleware)
			r.Mount("/slugs", slugHandler.Routes())
			r.Mount("/admin/slugs", slugHandler.BatchRoutes())
		})
	})

	defer dbPool.Close()

	// Start server
	server.Run()
}
