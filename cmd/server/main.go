package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/jwtauth"
	"github.com/go-chi/render"
	"github.com/tendant/simple-slug/pkg/slugkit/api"
	"github.com/tendant/simple-slug/pkg/slugkit/config"
)

func main() {
	ctx := context.Background()

	// Load configuration from environment
	serverConfig, err := config.Load(config.WithEnv(""))
	if err != nil {
		slog.Error("Failed to load server configuration", "error", err)
		os.Exit(1)
	}

	// Build repository and service from configuration
	repo, err := serverConfig.BuildRepository(ctx)
	if err != nil {
		slog.Error("Failed to build repository", "error", err)
		os.Exit(1)
	}
	svc, err := serverConfig.BuildServiceWith(repo)
	if err != nil {
		slog.Error("Failed to build service", "error", err)
		os.Exit(1)
	}

	handler := api.NewSlugHandler(svc, repo)

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%s", serverConfig.Port),
		Handler: routes(handler, serverConfig),
	}

	go func() {
		slog.Info("Simple Slug Server starting",
			"port", serverConfig.Port,
			"env", serverConfig.Environment,
			"database", serverConfig.DatabaseType)

		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exiting")
}

func routes(handler *api.SlugHandler, cfg *config.ServerConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		render.PlainText(w, r, http.StatusText(http.StatusOK))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Mount("/slugs", handler.Routes())

		// Batch regeneration is privileged. Without a configured secret the
		// guard is disabled, which Validate only allows outside production.
		if cfg.JWTSecret != "" {
			ja := jwtauth.New("HS256", []byte(cfg.JWTSecret), nil)
			r.Group(func(r chi.Router) {
				r.Use(api.AdminOnly(ja))
				r.Mount("/admin/slugs", handler.BatchRoutes())
			})
		} else {
			r.Mount("/admin/slugs", handler.BatchRoutes())
		}
	})

	return r
}
