// Package database opens the PostgreSQL pool used by the database seed
// source. The product store itself never touches PostgreSQL; the pool is
// only needed while seed.NewPostgresLoader imports the catalogue table and
// is closed once seeding finishes.
package database

import (
	"context"
	"fmt"
	"time"

	"product-api/internal/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// seedIdleTimeout bounds idle connections; a seed import is short-lived.
const seedIdleTimeout = 5 * time.Minute

// NewPool connects to the seed database and verifies it answers a ping.
// Pool sizes and connection lifetime come from the DB_* settings.
func NewPool(ctx context.Context, cfg config.DatabaseConfig, logger zerolog.Logger) (*pgxpool.Pool, error) {
	logger = logger.With().Str("component", "seed-database").Logger()

	poolConfig, err := pgxpool.ParseConfig(cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to parse seed database config: %w", err)
	}

	poolConfig.MaxConns = int32(cfg.MaxConnections)
	poolConfig.MinConns = int32(cfg.MinConnections)
	poolConfig.MaxConnLifetime = time.Duration(cfg.MaxConnLifetime) * time.Second
	poolConfig.MaxConnIdleTime = seedIdleTimeout

	logger.Info().
		Str("host", cfg.Host).
		Int("port", cfg.Port).
		Str("database", cfg.Database).
		Str("table", cfg.Table).
		Int("max_connections", cfg.MaxConnections).
		Msg("connecting to seed database")

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info().Msg("seed database reachable")

	return pool, nil
}
