// Package db provides database connections and schema management.
//
// This package is responsible for:
//   - PostgreSQL connection pool initialization (pgx)
//   - Embedded SQLite initialization (modernc.org/sqlite)
//   - Connection health checks
//   - Schema and seed migrations (goose), one embedded set per dialect
//
// Example usage:
//
//	pg, err := db.New(ctx, cfg.Database, log)
//	if err != nil {
//	    return err
//	}
//	defer pg.Close()
//
//	m, err := db.NewMigrator(pg.SQLDB(), db.DialectPostgres, log)
//	if err != nil {
//	    return err
//	}
//	err = m.Up(ctx)
package db
