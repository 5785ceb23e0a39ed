package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "modernc.org/sqlite"

	"employeedir/src/infra/config"
)

// SQLite wraps an embedded SQLite database with foreign keys enforced.
type SQLite struct {
	DB  *sql.DB
	log *slog.Logger
}

// NewSQLite opens the database file at cfg.SQLitePath (":memory:" for a
// process-local database) and verifies it with a ping.
func NewSQLite(ctx context.Context, cfg config.DatabaseConfig, log *slog.Logger) (*SQLite, error) {
	conn, err := sql.Open("sqlite", sqliteDSN(cfg.SQLitePath))
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	// SQLite allows one writer at a time, and every connection to ":memory:"
	// would otherwise get its own empty database.
	conn.SetMaxOpenConns(1)
	conn.SetConnMaxLifetime(0)

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping sqlite database: %w", err)
	}

	log.Info("database connection established",
		"driver", config.DriverSQLite,
		"path", cfg.SQLitePath,
	)

	return &SQLite{DB: conn, log: log}, nil
}

func sqliteDSN(path string) string {
	return fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", path)
}

// InTx runs fn inside a transaction, committing when fn returns nil.
func (s *SQLite) InTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Close closes the database.
func (s *SQLite) Close() {
	if s.DB != nil {
		_ = s.DB.Close()
		s.log.Info("database connection closed")
	}
}

// Health checks if the database is reachable.
func (s *SQLite) Health(ctx context.Context) error {
	return s.DB.PingContext(ctx)
}
