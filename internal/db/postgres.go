package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oguzk/mentorlink/internal/config"
	"github.com/oguzk/mentorlink/internal/pkg/logger"
)

// Store is a connection pool for one credentialed store. The primary and
// mapping stores each get their own Store; no transaction or lock ever spans
// the two.
type Store struct {
	Pool *pgxpool.Pool
	name string
}

// NewStore creates a new PostgreSQL connection pool for a store
func NewStore(name string, cfg config.StoreConfig) (*Store, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	poolConfig, err := pgxpool.ParseConfig(cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s store config: %w", name, err)
	}

	poolConfig.MaxConns = int32(cfg.MaxOpenConns)
	poolConfig.MinConns = int32(cfg.MaxIdleConns)

	if cfg.ConnMaxLifetime != "" {
		maxLifetime, err := time.ParseDuration(cfg.ConnMaxLifetime)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s store connection max lifetime: %w", name, err)
		}
		poolConfig.MaxConnLifetime = maxLifetime
	}

	poolConfig.BeforeAcquire = func(ctx context.Context, conn *pgx.Conn) bool {
		if err := conn.Ping(ctx); err != nil {
			logger.Warn().Err(err).Str("store", name).Msg("Unhealthy connection detected")
			return false
		}
		return true
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s store connection pool: %w", name, err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to establish %s store connection: %w", name, err)
	}

	return &Store{Pool: pool, name: name}, nil
}

// Name returns the store's configured name
func (s *Store) Name() string {
	return s.name
}

// Close closes the pool
func (s *Store) Close() {
	if s.Pool != nil {
		s.Pool.Close()
	}
}
