package app

import (
	"context"
	"fmt"
	"log/slog"

	portsrepo "github.com/SscSPs/bookkeeping_core/internal/core/ports/repositories"
	"github.com/SscSPs/bookkeeping_core/internal/platform/config"
	"github.com/SscSPs/bookkeeping_core/internal/repositories/database/pgsql"
	"github.com/SscSPs/bookkeeping_core/internal/repositories/database/sqlite"
	"github.com/SscSPs/bookkeeping_core/pkg/database"
)

// Store is an opened persistence backend with its repositories.
type Store struct {
	Repos portsrepo.RepositoryProvider
	close func()
}

// Close releases the underlying connections.
func (s *Store) Close() {
	if s.close != nil {
		s.close()
	}
}

// OpenStore connects to the configured backend. When migrate is set the
// schema is brought up to date before the repositories are built.
func OpenStore(ctx context.Context, cfg *config.Config, logger *slog.Logger, migrate bool) (*Store, error) {
	switch cfg.StoreDriver {
	case config.StoreSQLite:
		db, err := database.NewSQLiteDB(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		if migrate {
			logger.Info("Migrating sqlite schema", slog.String("path", cfg.SQLitePath))
			if err := sqlite.Migrate(db); err != nil {
				database.CloseSQLiteDB(db)
				return nil, fmt.Errorf("failed to migrate sqlite schema: %w", err)
			}
		}
		return &Store{
			Repos: sqlite.NewRepositoryProvider(db),
			close: func() { database.CloseSQLiteDB(db) },
		}, nil

	case config.StorePostgres:
		if migrate {
			if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
				return nil, err
			}
		}
		pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
		if err != nil {
			return nil, err
		}
		logger.Info("Database connection pool established.")
		return &Store{
			Repos: pgsql.NewRepositoryProvider(pool),
			close: func() { database.ClosePgxPool(pool) },
		}, nil
	}
	return nil, fmt.Errorf("unsupported store driver %q", cfg.StoreDriver)
}
