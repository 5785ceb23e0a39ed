package cli

import (
	"context"
	"database/sql"
	"log/slog"

	"employeedir/src/core/ports"
	"employeedir/src/infra/config"
	"employeedir/src/infra/db"
	"employeedir/src/infra/logger"
	"employeedir/src/infra/repo"
)

// store bundles the repository for the configured driver with the raw
// handle migrations run against.
type store struct {
	repo    ports.DirectoryRepository
	sqlDB   *sql.DB
	dialect db.Dialect
	close   func()
}

func openStore(ctx context.Context, cfg config.DatabaseConfig, log *slog.Logger) (*store, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		lite, err := db.NewSQLite(ctx, cfg, log)
		if err != nil {
			return nil, err
		}
		return &store{
			repo:    repo.NewSQLiteRepository(lite, logger.WithComponent(log, "sqlite_repository")),
			sqlDB:   lite.DB,
			dialect: db.DialectSQLite,
			close:   lite.Close,
		}, nil
	default:
		pg, err := db.New(ctx, cfg, log)
		if err != nil {
			return nil, err
		}
		sqlDB := pg.SQLDB()
		return &store{
			repo:    repo.NewPostgresRepository(pg, logger.WithComponent(log, "postgres_repository")),
			sqlDB:   sqlDB,
			dialect: db.DialectPostgres,
			close: func() {
				_ = sqlDB.Close()
				pg.Close()
			},
		}, nil
	}
}

func (s *store) migrator(log *slog.Logger) (*db.Migrator, error) {
	return db.NewMigrator(s.sqlDB, s.dialect, logger.WithComponent(log, "migrator"))
}

func (s *store) Close() {
	s.close()
}
