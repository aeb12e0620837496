package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tendant/simple-slug/pkg/slugkit"
	"github.com/tendant/simple-slug/pkg/slugkit/repo/memory"
	repopg "github.com/tendant/simple-slug/pkg/slugkit/repo/postgres"
)

// Option applies configuration to a ServerConfig instance.
type Option func(*ServerConfig) error

// Load constructs a ServerConfig by applying the supplied options on top of library defaults.
func Load(opts ...Option) (*ServerConfig, error) {
	cfg := defaults()

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func defaults() ServerConfig {
	return ServerConfig{
		Port:               "8080",
		Environment:        "development",
		DatabaseType:       "memory",
		DefaultMethod:      string(slugkit.MethodAuto),
		DefaultSeparator:   slugkit.SeparatorDash,
		EnableEventLogging: true,
	}
}

// ServerConfig represents server configuration for the simple-slug service
type ServerConfig struct {
	Port        string
	Environment string // development, production, testing

	// Database configuration
	DatabaseURL  string
	DatabaseType string // "memory", "postgres"

	// Generation defaults applied when requests omit them
	DefaultMethod    string
	DefaultSeparator string

	// JWTSecret signs/verifies tokens guarding the privileged batch route.
	// Empty means the guard is disabled (development only).
	JWTSecret string

	// Server options
	EnableEventLogging bool
}

// Validate checks the configuration for internal consistency.
func (c *ServerConfig) Validate() error {
	switch c.DatabaseType {
	case "memory":
	case "postgres":
		if c.DatabaseURL == "" {
			return fmt.Errorf("database url is required for postgres")
		}
	default:
		return fmt.Errorf("unsupported database type: %q", c.DatabaseType)
	}

	if !slugkit.GenerateMethod(c.DefaultMethod).Valid() {
		return fmt.Errorf("unsupported default method: %q", c.DefaultMethod)
	}
	if !slugkit.ValidSeparator(c.DefaultSeparator) {
		return fmt.Errorf("unsupported default separator: %q", c.DefaultSeparator)
	}
	if c.Environment == "production" && c.JWTSecret == "" {
		return fmt.Errorf("jwt secret is required in production")
	}

	return nil
}

// BuildRepository constructs the repository named by the configuration.
func (c *ServerConfig) BuildRepository(ctx context.Context) (slugkit.Repository, error) {
	switch c.DatabaseType {
	case "postgres":
		pool, err := pgxpool.New(ctx, c.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to create connection pool: %w", err)
		}
		if err := pool.Ping(ctx); err != nil {
			return nil, fmt.Errorf("failed to ping database: %w", err)
		}
		return repopg.NewWithPool(pool), nil
	default:
		return memory.New(), nil
	}
}

// BuildService wires a slug service from the configuration.
func (c *ServerConfig) BuildService(ctx context.Context) (slugkit.Service, error) {
	repo, err := c.BuildRepository(ctx)
	if err != nil {
		return nil, err
	}
	return c.BuildServiceWith(repo)
}

// BuildServiceWith wires a slug service around an existing repository, for
// callers that also need direct repository access.
func (c *ServerConfig) BuildServiceWith(repo slugkit.Repository) (slugkit.Service, error) {
	opts := []slugkit.Option{
		slugkit.WithRepository(repo),
		slugkit.WithDefaultMethod(slugkit.GenerateMethod(c.DefaultMethod)),
		slugkit.WithDefaultSeparator(c.DefaultSeparator),
	}
	if c.EnableEventLogging {
		opts = append(opts, slugkit.WithEventSink(slugkit.NewLogEventSink(nil)))
	}

	return slugkit.New(opts...)
}

// IsDevelopment reports whether the server runs in a development environment.
func (c *ServerConfig) IsDevelopment() bool {
	return strings.EqualFold(c.Environment, "development")
}
